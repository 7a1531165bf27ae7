// Package config resolves the settings for one send from a YAML
// settings file merged with explicit overrides.
//
// Precedence, per field: an explicitly supplied override replaces the
// file value; an absent override leaves the file value; a field absent
// from both sources falls back to its documented default. Resolution
// is all-or-nothing: on any failure no Settings record exists.
package config

import "time"

// Documented defaults for fields that have one.
const (
	DefaultPort        = 1883
	DefaultDestination = "^all"
	DefaultChannel     = "LongFast"
	DefaultRegion      = "US"
	DefaultHopLimit    = 3

	DefaultConnectTimeout = 10 * time.Second
	DefaultPublishTimeout = 10 * time.Second
)

// Settings is the resolved, validated configuration for one send.
// Instances only exist fully valid; Resolve never returns a partial
// record.
type Settings struct {
	// Broker connection.
	Server   string
	Port     int
	Username string
	Password string

	// GatewayID is the node that appears to originate the message and
	// that names the publish topic. Kept in string form.
	GatewayID string

	// DestinationID is the recipient node, '^all' for broadcast.
	DestinationID string

	ChannelName string
	RegionCode  string

	WantAck  bool
	HopLimit int
}

// FileSettings is the partial settings document loaded from the YAML
// file. Zero-valued fields are treated as unset; hop_limit uses a
// pointer so an explicit out-of-range zero still fails validation
// instead of silently defaulting.
type FileSettings struct {
	MQTT struct {
		Server   string `yaml:"server"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"mqtt"`
	Meshtastic struct {
		GatewayID   string `yaml:"gateway_id"`
		Destination string `yaml:"to_id"`
		Channel     string `yaml:"channel"`
		Region      string `yaml:"region"`
		WantAck     bool   `yaml:"want_ack"`
		HopLimit    *int   `yaml:"hop_limit"`
	} `yaml:"meshtastic"`
}

// Overrides carries explicitly supplied field values, typically from
// command-line flags. A nil field is absent; a non-nil field was
// explicitly supplied. There is no third state.
type Overrides struct {
	Server      *string
	Port        *int
	Username    *string
	Password    *string
	GatewayID   *string
	Destination *string
	Channel     *string
	Region      *string
	WantAck     *bool
	HopLimit    *int
}
