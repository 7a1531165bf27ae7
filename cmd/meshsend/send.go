package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rmacdonaldsmith/meshsend-go/internal/config"
	"github.com/rmacdonaldsmith/meshsend-go/internal/publisher"
	"github.com/rmacdonaldsmith/meshsend-go/internal/wire"
	"github.com/rmacdonaldsmith/meshsend-go/pkg/failure"
	pkgwire "github.com/rmacdonaldsmith/meshsend-go/pkg/wire"
)

// sendFlags holds the raw flag values for one send invocation. Only
// flags the user explicitly set become overrides; cobra's Changed
// state is the explicitly-supplied/absent distinction.
type sendFlags struct {
	message        string
	server         string
	port           int
	username       string
	password       string
	gatewayID      string
	toID           string
	channel        string
	region         string
	wantAck        bool
	hopLimit       int
	connectTimeout time.Duration
	publishTimeout time.Duration
}

func newSendCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Encode and publish a text message",
		Long: `Encode a text message as a Meshtastic ServiceEnvelope and publish it
at QoS 1. Required settings missing from both the configuration file
and the flags abort the send before any connection is made.`,
	}

	f := bindSendFlags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runSend(cmd, *f)
	}

	if err := cmd.MarkFlagRequired("message"); err != nil {
		panic(fmt.Sprintf("Failed to mark message as required: %v", err))
	}

	return cmd
}

// bindSendFlags registers the send flags on cmd and returns the
// struct they bind to.
func bindSendFlags(cmd *cobra.Command) *sendFlags {
	f := &sendFlags{}

	cmd.Flags().StringVarP(&f.message, "message", "m", "", "Message text to send (required)")
	cmd.Flags().StringVar(&f.server, "server", "", "MQTT broker address (overrides config file)")
	cmd.Flags().IntVar(&f.port, "port", config.DefaultPort, "MQTT broker port (overrides config file)")
	cmd.Flags().StringVarP(&f.username, "username", "u", "", "MQTT username (overrides config file)")
	cmd.Flags().StringVarP(&f.password, "password", "p", "", "MQTT password (overrides config file)")
	cmd.Flags().StringVar(&f.gatewayID, "gateway-id", "", `Gateway node ID, e.g. "!12345678" (overrides config file)`)
	cmd.Flags().StringVar(&f.toID, "to-id", "", `Destination node ID, e.g. "!a1b2c3d4" or "^all" (overrides config file)`)
	cmd.Flags().StringVar(&f.channel, "channel", "", "Channel name (overrides config file)")
	cmd.Flags().StringVar(&f.region, "region", "", "Region code, e.g. US or EU (overrides config file)")
	cmd.Flags().BoolVar(&f.wantAck, "want-ack", false, "Request acknowledgment from the recipient (overrides config file)")
	cmd.Flags().IntVar(&f.hopLimit, "hop-limit", config.DefaultHopLimit, "Maximum mesh hops, 1-7 (overrides config file)")
	cmd.Flags().DurationVar(&f.connectTimeout, "connect-timeout", config.DefaultConnectTimeout, "Broker connection timeout")
	cmd.Flags().DurationVar(&f.publishTimeout, "publish-timeout", config.DefaultPublishTimeout, "Publish acknowledgment timeout")

	return f
}

func runSend(cmd *cobra.Command, f sendFlags) error {
	if strings.TrimSpace(f.message) == "" {
		return failure.EmptyMessage()
	}

	path := configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return failure.SettingsFile(err)
		}
	}

	fileSettings, found, err := config.Load(path)
	if err != nil {
		return failure.SettingsFile(err)
	}
	if !found {
		if err := config.WriteDefault(path); err != nil {
			return failure.SettingsFile(err)
		}
		return failure.SettingsFileCreated(path)
	}
	slog.Debug("loaded configuration", slog.String("path", path))

	settings, err := config.Resolve(fileSettings, overridesFrom(cmd, f))
	if err != nil {
		return err
	}

	payload, err := wire.NewCodec().Encode(pkgwire.Message{
		Text:          f.message,
		GatewayID:     settings.GatewayID,
		DestinationID: settings.DestinationID,
		ChannelName:   settings.ChannelName,
		HopLimit:      uint32(settings.HopLimit),
		WantAck:       settings.WantAck,
	}, wire.GeneratePacketID())
	if err != nil {
		return err
	}

	topic := wire.Topic(settings.RegionCode, settings.ChannelName, settings.GatewayID)
	slog.Debug("built envelope",
		slog.String("topic", topic),
		slog.Int("bytes", len(payload)),
		slog.String("hex", hex.EncodeToString(payload)))

	pub := publisher.New(publisher.DialMQTT, slog.Default())
	err = pub.Send(publisher.Request{
		Server:         settings.Server,
		Port:           settings.Port,
		Username:       settings.Username,
		Password:       settings.Password,
		ClientID:       clientID(),
		Topic:          topic,
		Payload:        payload,
		ConnectTimeout: f.connectTimeout,
		PublishTimeout: f.publishTimeout,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Message sent to %s via %s\n", settings.DestinationID, topic)
	return nil
}

// overridesFrom maps explicitly set flags to overrides. Unset flags
// stay nil so file values and defaults apply.
func overridesFrom(cmd *cobra.Command, f sendFlags) config.Overrides {
	var ov config.Overrides
	flags := cmd.Flags()

	if flags.Changed("server") {
		ov.Server = &f.server
	}
	if flags.Changed("port") {
		ov.Port = &f.port
	}
	if flags.Changed("username") {
		ov.Username = &f.username
	}
	if flags.Changed("password") {
		ov.Password = &f.password
	}
	if flags.Changed("gateway-id") {
		ov.GatewayID = &f.gatewayID
	}
	if flags.Changed("to-id") {
		ov.Destination = &f.toID
	}
	if flags.Changed("channel") {
		ov.Channel = &f.channel
	}
	if flags.Changed("region") {
		ov.Region = &f.region
	}
	if flags.Changed("want-ack") {
		ov.WantAck = &f.wantAck
	}
	if flags.Changed("hop-limit") {
		ov.HopLimit = &f.hopLimit
	}

	return ov
}

// clientID returns a fresh broker client identifier. Each invocation
// owns a new session, so a random suffix avoids collisions with other
// senders sharing the broker.
func clientID() string {
	return "meshsend-" + uuid.NewString()[:8]
}
