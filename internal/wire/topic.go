package wire

// Topic derives the MQTT publish destination for an envelope. The
// literal segments are fixed by the Meshtastic broker convention:
// 'msh' identifies Meshtastic traffic, '2' the protocol version, 'e'
// the protobuf envelope format (the JSON format uses 'json' instead).
// The gateway keeps its original string form, '!' prefix included.
func Topic(region, channel, gatewayID string) string {
	return "msh/" + region + "/2/e/" + channel + "/" + gatewayID
}
