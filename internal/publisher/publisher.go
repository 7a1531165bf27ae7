// Package publisher drives one connect/publish/disconnect cycle
// against an MQTT broker and translates the client's asynchronous
// tokens into a synchronous outcome for the caller.
package publisher

import (
	"log/slog"
	"time"

	"github.com/rmacdonaldsmith/meshsend-go/internal/config"
	"github.com/rmacdonaldsmith/meshsend-go/pkg/failure"
	"github.com/rmacdonaldsmith/meshsend-go/pkg/transport"
)

const (
	// qosAtLeastOnce: the broker acknowledges receipt from this
	// client, retransmitting on uncertain delivery. The send path is
	// an interactive one-shot invocation, so the user gets a
	// definitive success/failure; the broker protocol offers no cheap
	// exactly-once alternative.
	qosAtLeastOnce byte = 1

	// disconnectQuiesce is how long Disconnect waits for in-flight
	// work, in milliseconds.
	disconnectQuiesce uint = 250
)

// Request carries everything one send needs. The connection it opens
// is exclusively owned for the duration of the call and never reused.
type Request struct {
	Server   string
	Port     int
	Username string
	Password string
	ClientID string

	Topic   string
	Payload []byte

	// ConnectTimeout and PublishTimeout bound the two broker
	// interactions independently. Zero values take the defaults.
	ConnectTimeout time.Duration
	PublishTimeout time.Duration
}

// Publisher runs the send state machine. One Send per instance at a
// time; the zero value is not usable, construct with New.
type Publisher struct {
	dial   transport.Dialer
	logger *slog.Logger
	state  State
}

// New creates a Publisher that dials brokers with dial. A nil logger
// falls back to slog.Default().
func New(dial transport.Dialer, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{dial: dial, logger: logger, state: StateIdle}
}

// State returns the machine's current state.
func (p *Publisher) State() State {
	return p.state
}

func (p *Publisher) transition(next State) {
	p.logger.Debug("publisher state transition",
		slog.String("from", p.state.String()),
		slog.String("to", next.String()))
	p.state = next
}

// Send blocks through connect, publish at QoS 1, and disconnect, and
// returns nil on success or a classified *failure.Failure. Disconnect
// cleanup runs on every exit path, timeout included, so the network
// resource is always released.
func (p *Publisher) Send(req Request) error {
	if req.ConnectTimeout <= 0 {
		req.ConnectTimeout = config.DefaultConnectTimeout
	}
	if req.PublishTimeout <= 0 {
		req.PublishTimeout = config.DefaultPublishTimeout
	}

	client := p.dial(transport.Options{
		Server:         req.Server,
		Port:           req.Port,
		Username:       req.Username,
		Password:       req.Password,
		ClientID:       req.ClientID,
		ConnectTimeout: req.ConnectTimeout,
	})
	defer func() {
		client.Disconnect(disconnectQuiesce)
		p.transition(StateDisconnected)
		p.logger.Debug("disconnected from broker")
	}()

	p.transition(StateConnecting)
	p.logger.Debug("connecting to broker",
		slog.String("server", req.Server), slog.Int("port", req.Port))

	tok := client.Connect()
	if !tok.WaitTimeout(req.ConnectTimeout) {
		p.transition(StateErrored)
		return failure.ConnectionTimeout(req.Server, req.Port)
	}
	if err := tok.Error(); err != nil {
		p.transition(StateErrored)
		return classifyConnect(err, req.Server, req.Port)
	}

	p.transition(StateConnected)
	p.logger.Info("connected to broker",
		slog.String("server", req.Server), slog.Int("port", req.Port))

	p.transition(StatePublishing)
	p.logger.Debug("publishing message",
		slog.String("topic", req.Topic), slog.Int("bytes", len(req.Payload)))

	pub := client.Publish(req.Topic, qosAtLeastOnce, false, req.Payload)
	if !pub.WaitTimeout(req.PublishTimeout) {
		p.transition(StateErrored)
		return failure.PublishTimeout(req.Topic)
	}
	if err := pub.Error(); err != nil {
		p.transition(StateErrored)
		return failure.PublishFailed(req.Topic, err)
	}

	p.transition(StatePublished)
	p.logger.Info("message published", slog.String("topic", req.Topic))
	return nil
}
