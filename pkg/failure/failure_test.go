package failure

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil chain yields unexpected", errors.New("plain"), KindUnexpected},
		{"direct failure", MissingFields("mqtt.username"), KindMissingRequiredField},
		{"wrapped failure", fmt.Errorf("resolve: %w", InvalidField("hop_limit", "must be 1-7")), KindInvalidFieldValue},
		{"auth failure", AuthenticationFailed("broker.example", 1883, errors.New("bad user name or password")), KindAuthenticationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMissingFields_NamesEveryField(t *testing.T) {
	f := MissingFields("mqtt.username", "meshtastic.gateway_id")

	if len(f.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(f.Fields))
	}
	msg := f.Error()
	if !strings.Contains(msg, "mqtt.username") || !strings.Contains(msg, "meshtastic.gateway_id") {
		t.Errorf("message %q does not name both missing fields", msg)
	}
}

func TestAuthenticationFailed_NeverEchoesPassword(t *testing.T) {
	cause := errors.New("connack code 4")
	f := AuthenticationFailed("mqtt.meshtastic.org", 1883, cause)

	if strings.Contains(f.Error(), "large4cats") {
		t.Fatal("failure message must not contain credentials")
	}
	if !strings.Contains(f.Error(), "mqtt.meshtastic.org:1883") {
		t.Errorf("expected server:port in message, got %q", f.Error())
	}
	if !errors.Is(f, cause) {
		t.Error("expected cause to be reachable via errors.Is")
	}
}

func TestFailure_IsMatchesOnKind(t *testing.T) {
	a := ConnectionTimeout("a.example", 1883)
	b := ConnectionTimeout("b.example", 8883)

	if !errors.Is(a, b) {
		t.Error("failures of the same kind should match via errors.Is")
	}
	if errors.Is(a, PublishTimeout("msh/US/2/e/LongFast/!12345678")) {
		t.Error("failures of different kinds must not match")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil is success", nil, ExitSuccess},
		{"missing field", MissingFields("mqtt.server"), ExitConfig},
		{"invalid field", InvalidField("hop_limit", "must be between 1 and 7"), ExitConfig},
		{"invalid address", InvalidAddress("!xyz"), ExitConfig},
		{"refused", ConnectionRefused("h", 1883, errors.New("refused")), ExitBroker},
		{"auth", AuthenticationFailed("h", 1883, nil), ExitBroker},
		{"connect timeout", ConnectionTimeout("h", 1883), ExitBroker},
		{"publish failed", PublishFailed("t", errors.New("no")), ExitBroker},
		{"publish timeout", PublishTimeout("t"), ExitBroker},
		{"empty message", EmptyMessage(), ExitMessage},
		{"settings file", SettingsFile(errors.New("parse")), ExitConfig},
		{"settings file created", SettingsFileCreated("/tmp/config.yaml"), ExitConfig},
		{"encoding", Encoding(errors.New("marshal")), ExitEncoding},
		{"plain error", errors.New("boom"), ExitUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
