package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	file, found, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error, got %v", err)
	}
	if found {
		t.Error("found = true for a missing file")
	}
	if file.MQTT.Server != "" {
		t.Error("missing file must yield all fields unset")
	}
}

func TestLoad_ParsesDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `mqtt:
  server: broker.example.org
  port: 8883
  username: alice
  password: secret
meshtastic:
  gateway_id: "!deadbeef"
  to_id: "!00000001"
  channel: MediumFast
  region: EU
  want_ack: true
  hop_limit: 5
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	file, found, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatal("found = false for an existing file")
	}

	if file.MQTT.Server != "broker.example.org" || file.MQTT.Port != 8883 {
		t.Errorf("mqtt section misparsed: %+v", file.MQTT)
	}
	if file.Meshtastic.GatewayID != "!deadbeef" || file.Meshtastic.Region != "EU" {
		t.Errorf("meshtastic section misparsed: %+v", file.Meshtastic)
	}
	if file.Meshtastic.HopLimit == nil || *file.Meshtastic.HopLimit != 5 {
		t.Errorf("hop_limit misparsed: %v", file.Meshtastic.HopLimit)
	}
	if !file.Meshtastic.WantAck {
		t.Error("want_ack misparsed")
	}
}

func TestLoad_RejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("mqtt: [unbalanced"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := Load(path); err == nil {
		t.Error("expected parse error for invalid YAML")
	}
}

func TestWriteDefault_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	file, found, err := Load(path)
	if err != nil || !found {
		t.Fatalf("Load after WriteDefault: found=%v err=%v", found, err)
	}

	// Template values match the public broker defaults.
	if file.MQTT.Server != "mqtt.meshtastic.org" {
		t.Errorf("template server = %q", file.MQTT.Server)
	}
	if file.Meshtastic.Channel != "LongFast" {
		t.Errorf("template channel = %q", file.Meshtastic.Channel)
	}

	// The resolved template must pass validation as-is.
	if _, err := Resolve(file, Overrides{}); err != nil {
		t.Errorf("default template does not resolve: %v", err)
	}
}

func TestWriteDefault_RestrictivePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	// Credentials live in this file.
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("file mode = %o, want 600", perm)
	}
}
