package wire

import (
	"bytes"
	"testing"

	pb "github.com/meshtastic/go/generated"
	"google.golang.org/protobuf/proto"

	"github.com/rmacdonaldsmith/meshsend-go/pkg/failure"
	"github.com/rmacdonaldsmith/meshsend-go/pkg/wire"
)

func testMessage() wire.Message {
	return wire.Message{
		Text:          "Hello",
		GatewayID:     "!12345678",
		DestinationID: "^all",
		ChannelName:   "LongFast",
		HopLimit:      3,
		WantAck:       false,
	}
}

func TestCodec_Encode_DecodesUnderPublishedSchema(t *testing.T) {
	codec := NewCodec()

	data, err := codec.Encode(testMessage(), 42)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var envelope pb.ServiceEnvelope
	if err := proto.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("output does not decode as ServiceEnvelope: %v", err)
	}

	if envelope.ChannelId != "LongFast" {
		t.Errorf("ChannelId = %q, want %q", envelope.ChannelId, "LongFast")
	}
	if envelope.GatewayId != "!12345678" {
		t.Errorf("GatewayId = %q, want %q (original string form)", envelope.GatewayId, "!12345678")
	}

	packet := envelope.Packet
	if packet == nil {
		t.Fatal("envelope carries no packet")
	}
	if packet.From != 0x12345678 {
		t.Errorf("From = %#x, want %#x", packet.From, 0x12345678)
	}
	if packet.To != 0xFFFFFFFF {
		t.Errorf("To = %#x, want broadcast %#x", packet.To, uint32(0xFFFFFFFF))
	}
	if packet.Id != 42 {
		t.Errorf("Id = %d, want 42", packet.Id)
	}
	if packet.Channel != 0 {
		t.Errorf("Channel = %d, want fixed primary slot 0", packet.Channel)
	}
	if packet.HopLimit != 3 {
		t.Errorf("HopLimit = %d, want 3", packet.HopLimit)
	}
	if packet.WantAck {
		t.Error("WantAck = true, want false")
	}

	decoded := packet.GetDecoded()
	if decoded == nil {
		t.Fatal("packet carries no decoded payload")
	}
	if decoded.Portnum != pb.PortNum_TEXT_MESSAGE_APP {
		t.Errorf("Portnum = %v, want TEXT_MESSAGE_APP", decoded.Portnum)
	}
	if string(decoded.Payload) != "Hello" {
		t.Errorf("Payload = %q, want %q", decoded.Payload, "Hello")
	}
}

func TestCodec_Encode_DeterministicExceptPacketID(t *testing.T) {
	codec := NewCodec()
	msg := testMessage()

	a, err := codec.Encode(msg, 7)
	if err != nil {
		t.Fatalf("first Encode: %v", err)
	}
	b, err := codec.Encode(msg, 7)
	if err != nil {
		t.Fatalf("second Encode: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical input and packet ID must produce identical bytes")
	}

	c, err := codec.Encode(msg, 8)
	if err != nil {
		t.Fatalf("third Encode: %v", err)
	}
	if bytes.Equal(a, c) {
		t.Error("differing packet IDs must produce differing bytes")
	}
}

func TestCodec_Encode_UTF8TextAcceptedAsIs(t *testing.T) {
	codec := NewCodec()
	msg := testMessage()
	msg.Text = "héllo — 메시 ✓"

	data, err := codec.Encode(msg, 1)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	var envelope pb.ServiceEnvelope
	if err := proto.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got := string(envelope.Packet.GetDecoded().Payload); got != msg.Text {
		t.Errorf("Payload = %q, want %q", got, msg.Text)
	}
}

func TestCodec_Encode_RejectsBadAddresses(t *testing.T) {
	codec := NewCodec()

	bad := testMessage()
	bad.GatewayID = "not-a-node"
	if _, err := codec.Encode(bad, 1); failure.KindOf(err) != failure.KindInvalidAddressFormat {
		t.Errorf("bad gateway: expected invalid-address failure, got %v", err)
	}

	bad = testMessage()
	bad.DestinationID = "!123"
	if _, err := codec.Encode(bad, 1); failure.KindOf(err) != failure.KindInvalidAddressFormat {
		t.Errorf("bad destination: expected invalid-address failure, got %v", err)
	}
}

func TestGeneratePacketID(t *testing.T) {
	a := GeneratePacketID()
	b := GeneratePacketID()

	if a == 0 || b == 0 {
		t.Error("packet IDs must never be zero")
	}
	if a == b {
		t.Errorf("consecutive packet IDs must differ, both were %d", a)
	}
}

func TestTopic(t *testing.T) {
	tests := []struct {
		region, channel, gateway string
		want                     string
	}{
		{"US", "LongFast", "!12345678", "msh/US/2/e/LongFast/!12345678"},
		{"EU", "ShortSlow", "!abcdef01", "msh/EU/2/e/ShortSlow/!abcdef01"},
	}

	for _, tt := range tests {
		if got := Topic(tt.region, tt.channel, tt.gateway); got != tt.want {
			t.Errorf("Topic(%q, %q, %q) = %q, want %q", tt.region, tt.channel, tt.gateway, got, tt.want)
		}
	}
}
