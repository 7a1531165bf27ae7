package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath returns the platform-appropriate settings file location,
// for example ~/.config/meshsend/config.yaml on Linux.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	return filepath.Join(dir, "meshsend", "config.yaml"), nil
}

// Load reads the settings file at path. A missing file is not an
// error: it returns a zero FileSettings and found=false, the explicit
// no-file signal the resolver treats as all fields unset.
func Load(path string) (FileSettings, bool, error) {
	var file FileSettings

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return file, false, nil
	}
	if err != nil {
		return file, false, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &file); err != nil {
		return file, false, fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	return file, true, nil
}

// defaultTemplate is the settings document written for first-time
// users. The broker values point at the public Meshtastic broker; the
// gateway placeholder must be replaced with a real node ID.
const defaultTemplate = `mqtt:
  server: mqtt.meshtastic.org
  port: 1883
  username: meshdev
  password: large4cats
meshtastic:
  gateway_id: "!12345678"
  to_id: "^all"
  channel: LongFast
  region: US
  want_ack: false
  hop_limit: 3
`

// WriteDefault materializes the default settings document at path,
// creating parent directories as needed. The file carries credentials,
// so it is written owner read/write only.
func WriteDefault(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("creating settings directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(defaultTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default settings file %s: %w", path, err)
	}
	return nil
}
