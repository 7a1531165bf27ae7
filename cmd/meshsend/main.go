package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/rmacdonaldsmith/meshsend-go/pkg/failure"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "meshsend",
		Short: "Send protobuf-encoded text messages to a Meshtastic MQTT broker",
		Long: `meshsend encodes a text message as a Meshtastic ServiceEnvelope and
publishes it to an MQTT broker, from where a gateway node relays it
into the mesh. Connection settings and protocol parameters come from a
YAML configuration file, with command-line flags taking precedence.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file (default: the per-user config directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newSendCommand())
	rootCmd.AddCommand(newConfigCommand())

	// One-shot tool: an interrupt just abandons the send. The broker
	// connection, if any, dies with the process.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		fmt.Fprintln(os.Stderr, "cancelled")
		os.Exit(failure.ExitInterrupted)
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(failure.ExitCode(err))
	}
}

// setupLogging routes structured logs to stderr so stdout stays clean
// for the success confirmation.
func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
