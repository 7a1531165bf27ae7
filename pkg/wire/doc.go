// Package wire defines the interface boundary around the Meshtastic
// wire schema.
//
// The serialized envelope is a fixed, versioned protobuf contract owned
// by the Meshtastic project; this package isolates the rest of the
// pipeline from the generated bindings so the schema version can be
// swapped without touching configuration resolution or publish
// orchestration.
//
// The three-layer structure carried on the wire:
//
//	ServiceEnvelope            outer wrapper for MQTT transport
//	  packet (MeshPacket)      addressing, hop control, delivery flags
//	    decoded (Data)         application port + raw message bytes
//	  channel_id               channel name string
//	  gateway_id               gateway node ID in its original string form
//
// Key conventions:
//   - Node addresses travel as 32-bit integers inside the packet but as
//     strings ('!' + 8 hex digits, or the '^all' broadcast sentinel) in
//     the envelope metadata and the MQTT topic.
//   - Once encoded, envelope bytes are immutable and complete; there is
//     no streaming.
//
// Example usage:
//
//	codec := wire.NewCodec()  // from internal/wire
//	data, err := codec.Encode(wire.Message{
//		Text:          "Hello Mesh!",
//		GatewayID:     "!12345678",
//		DestinationID: "^all",
//		ChannelName:   "LongFast",
//		HopLimit:      3,
//	}, wire.GeneratePacketID())
package wire
