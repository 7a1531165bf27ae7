package publisher

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/rmacdonaldsmith/meshsend-go/pkg/transport"
)

const defaultKeepAlive = 60 * time.Second

// DialMQTT is the production transport.Dialer, wrapping the paho MQTT
// client. Auto-reconnect is off: the connection is a one-shot,
// exclusively owned resource and a definitive failure beats a silent
// retry loop.
func DialMQTT(opts transport.Options) transport.Client {
	keepAlive := opts.KeepAlive
	if keepAlive <= 0 {
		keepAlive = defaultKeepAlive
	}

	clientOpts := mqtt.NewClientOptions().
		AddBroker(BrokerURL(opts.Server, opts.Port)).
		SetClientID(opts.ClientID).
		SetUsername(opts.Username).
		SetPassword(opts.Password).
		SetConnectTimeout(opts.ConnectTimeout).
		SetKeepAlive(keepAlive).
		SetAutoReconnect(false).
		SetCleanSession(true)

	return pahoClient{client: mqtt.NewClient(clientOpts)}
}

// BrokerURL renders the broker address in the scheme://host:port form
// the MQTT client expects.
func BrokerURL(server string, port int) string {
	return fmt.Sprintf("tcp://%s:%d", server, port)
}

// pahoClient narrows the paho client to the transport.Client surface
// the orchestrator consumes.
type pahoClient struct {
	client mqtt.Client
}

func (p pahoClient) Connect() transport.Token {
	return p.client.Connect()
}

func (p pahoClient) Publish(topic string, qos byte, retained bool, payload []byte) transport.Token {
	return p.client.Publish(topic, qos, retained, payload)
}

func (p pahoClient) Disconnect(quiesce uint) {
	if p.client.IsConnectionOpen() || p.client.IsConnected() {
		p.client.Disconnect(quiesce)
	}
}

func (p pahoClient) IsConnected() bool {
	return p.client.IsConnected()
}
