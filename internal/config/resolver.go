package config

import (
	"github.com/rmacdonaldsmith/meshsend-go/internal/wire"
	"github.com/rmacdonaldsmith/meshsend-go/pkg/failure"
)

// Dotted field names as they appear in the settings file; failures
// report these so the operator can find the offending key.
const (
	fieldServer      = "mqtt.server"
	fieldPort        = "mqtt.port"
	fieldUsername    = "mqtt.username"
	fieldPassword    = "mqtt.password"
	fieldGatewayID   = "meshtastic.gateway_id"
	fieldDestination = "meshtastic.to_id"
	fieldHopLimit    = "meshtastic.hop_limit"
)

// Resolve merges file settings with overrides under strict precedence
// and validates the result. It is a pure function: identical inputs
// always produce an identical record. On failure no Settings record is
// returned.
func Resolve(file FileSettings, ov Overrides) (*Settings, error) {
	s := merge(file, ov)

	var missing []string
	if s.Server == "" {
		missing = append(missing, fieldServer)
	}
	if s.Username == "" {
		missing = append(missing, fieldUsername)
	}
	if s.Password == "" {
		missing = append(missing, fieldPassword)
	}
	if s.GatewayID == "" {
		missing = append(missing, fieldGatewayID)
	}
	if len(missing) > 0 {
		return nil, failure.MissingFields(missing...)
	}

	if s.Port < 1 || s.Port > 65535 {
		return nil, failure.InvalidField(fieldPort, "must be between 1 and 65535")
	}
	if s.HopLimit < 1 || s.HopLimit > 7 {
		return nil, failure.InvalidField(fieldHopLimit, "must be between 1 and 7")
	}
	if _, err := wire.ParseNodeID(s.GatewayID); err != nil {
		return nil, err
	}
	if _, err := wire.ParseNodeID(s.DestinationID); err != nil {
		return nil, err
	}

	return &s, nil
}

func merge(file FileSettings, ov Overrides) Settings {
	s := Settings{
		Server:        file.MQTT.Server,
		Port:          DefaultPort,
		Username:      file.MQTT.Username,
		Password:      file.MQTT.Password,
		GatewayID:     file.Meshtastic.GatewayID,
		DestinationID: DefaultDestination,
		ChannelName:   DefaultChannel,
		RegionCode:    DefaultRegion,
		WantAck:       file.Meshtastic.WantAck,
		HopLimit:      DefaultHopLimit,
	}

	if file.MQTT.Port != 0 {
		s.Port = file.MQTT.Port
	}
	if file.Meshtastic.Destination != "" {
		s.DestinationID = file.Meshtastic.Destination
	}
	if file.Meshtastic.Channel != "" {
		s.ChannelName = file.Meshtastic.Channel
	}
	if file.Meshtastic.Region != "" {
		s.RegionCode = file.Meshtastic.Region
	}
	if file.Meshtastic.HopLimit != nil {
		s.HopLimit = *file.Meshtastic.HopLimit
	}

	if ov.Server != nil {
		s.Server = *ov.Server
	}
	if ov.Port != nil {
		s.Port = *ov.Port
	}
	if ov.Username != nil {
		s.Username = *ov.Username
	}
	if ov.Password != nil {
		s.Password = *ov.Password
	}
	if ov.GatewayID != nil {
		s.GatewayID = *ov.GatewayID
	}
	if ov.Destination != nil {
		s.DestinationID = *ov.Destination
	}
	if ov.Channel != nil {
		s.ChannelName = *ov.Channel
	}
	if ov.Region != nil {
		s.RegionCode = *ov.Region
	}
	if ov.WantAck != nil {
		s.WantAck = *ov.WantAck
	}
	if ov.HopLimit != nil {
		s.HopLimit = *ov.HopLimit
	}

	return s
}
