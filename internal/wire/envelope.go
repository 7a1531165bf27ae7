package wire

import (
	pb "github.com/meshtastic/go/generated"
	"google.golang.org/protobuf/proto"

	"github.com/rmacdonaldsmith/meshsend-go/pkg/failure"
	"github.com/rmacdonaldsmith/meshsend-go/pkg/wire"
)

// defaultChannelIndex is the numeric channel slot carried in the
// packet. It is always 0 (the primary channel slot) regardless of the
// configured channel name; only the name in the envelope metadata and
// the topic vary. Known constraint carried over from the source
// system's single-channel behavior.
const defaultChannelIndex = 0

// Codec encodes messages against the published Meshtastic protobuf
// definitions. It implements wire.Codec.
type Codec struct{}

// NewCodec returns a Codec bound to the generated Meshtastic bindings.
func NewCodec() *Codec {
	return &Codec{}
}

// Encode builds the Data/MeshPacket/ServiceEnvelope layers for msg and
// serializes them to the canonical binary form.
func (c *Codec) Encode(msg wire.Message, packetID uint32) ([]byte, error) {
	from, err := ParseNodeID(msg.GatewayID)
	if err != nil {
		return nil, err
	}
	to, err := ParseNodeID(msg.DestinationID)
	if err != nil {
		return nil, err
	}

	packet := &pb.MeshPacket{
		From:     from,
		To:       to,
		Id:       packetID,
		Channel:  defaultChannelIndex,
		HopLimit: msg.HopLimit,
		WantAck:  msg.WantAck,
		PayloadVariant: &pb.MeshPacket_Decoded{Decoded: &pb.Data{
			Portnum: pb.PortNum_TEXT_MESSAGE_APP,
			Payload: []byte(msg.Text),
		}},
	}

	// The envelope keeps the gateway in its original string form; the
	// broker-side routing logic matches it against the topic segment.
	envelope := &pb.ServiceEnvelope{
		Packet:    packet,
		ChannelId: msg.ChannelName,
		GatewayId: msg.GatewayID,
	}

	data, err := proto.Marshal(envelope)
	if err != nil {
		return nil, failure.Encoding(err)
	}
	return data, nil
}
