package wire

// Message is the fully specified outbound text message, prior to
// encoding. Addresses are carried in their human-readable string form;
// the codec converts them to their 32-bit wire form.
type Message struct {
	// Text is the message body, encoded as UTF-8 on the wire. No
	// length limit is enforced here; payload-size policy is the
	// broker's concern.
	Text string

	// GatewayID names the node that appears to originate the message.
	// It becomes the packet source address and is also carried in its
	// string form in the envelope metadata.
	GatewayID string

	// DestinationID names the recipient node, or '^all' for broadcast.
	DestinationID string

	// ChannelName is the named channel carried in the envelope
	// metadata (for example "LongFast").
	ChannelName string

	// HopLimit is the maximum number of mesh hops, 1 through 7.
	HopLimit uint32

	// WantAck requests an acknowledgment from the recipient.
	WantAck bool
}

// Codec encodes a Message into the canonical binary envelope. The
// output must decode correctly under the published Meshtastic protobuf
// definitions; this is the compatibility contract of the whole system.
type Codec interface {
	// Encode builds the payload/packet/envelope layers for msg and
	// serializes them. packetID must be unique per send with high
	// probability; see GeneratePacketID in the implementing package.
	Encode(msg Message, packetID uint32) ([]byte, error)
}
