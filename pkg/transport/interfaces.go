package transport

import "time"

// Token tracks an asynchronous broker operation (connect or publish).
type Token interface {
	// WaitTimeout blocks until the operation completes or the timeout
	// elapses. It returns false on timeout.
	WaitTimeout(timeout time.Duration) bool

	// Error returns the outcome of a completed operation, nil on
	// success. Only meaningful after WaitTimeout returned true.
	Error() error
}

// Client is the broker connection owned exclusively by one send. It is
// never shared, pooled, or reused across invocations.
type Client interface {
	// Connect initiates the connection handshake with the broker.
	Connect() Token

	// Publish submits payload to topic at the given QoS level.
	Publish(topic string, qos byte, retained bool, payload []byte) Token

	// Disconnect releases the connection, waiting up to quiesce
	// milliseconds for in-flight work to complete. Safe to call in any
	// state.
	Disconnect(quiesce uint)

	// IsConnected reports whether the client currently holds a live
	// connection.
	IsConnected() bool
}

// Options carries everything needed to build a broker connection for
// one send.
type Options struct {
	Server         string
	Port           int
	Username       string
	Password       string
	ClientID       string
	ConnectTimeout time.Duration
	KeepAlive      time.Duration
}

// Dialer constructs a Client from connection options. The production
// dialer builds an MQTT client; tests substitute a stub.
type Dialer func(opts Options) Client
