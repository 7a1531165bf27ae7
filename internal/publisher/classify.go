package publisher

import (
	"errors"
	"net"

	"github.com/eclipse/paho.mqtt.golang/packets"

	"github.com/rmacdonaldsmith/meshsend-go/pkg/failure"
)

// classifyConnect maps a connection error onto the failure taxonomy
// based on the broker's reported cause: CONNACK refusals about
// credentials become authentication failures, transport timeouts
// become connection timeouts, and every other reported cause (refused
// protocol version, server unavailable, no listener, reset) is a
// refused connection.
func classifyConnect(err error, server string, port int) error {
	if errors.Is(err, packets.ErrorRefusedBadUsernameOrPassword) ||
		errors.Is(err, packets.ErrorRefusedNotAuthorised) {
		return failure.AuthenticationFailed(server, port, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return failure.ConnectionTimeout(server, port)
	}

	return failure.ConnectionRefused(server, port, err)
}
