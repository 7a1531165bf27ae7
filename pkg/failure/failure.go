package failure

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a terminal failure of the send pipeline.
type Kind int

const (
	// KindUnexpected is the catch-all for anything not classified below.
	KindUnexpected Kind = iota
	// KindMissingRequiredField reports required settings absent from
	// both the settings file and the overrides.
	KindMissingRequiredField
	// KindInvalidFieldValue reports a setting that is present but
	// violates its constraint.
	KindInvalidFieldValue
	// KindInvalidAddressFormat reports a node address that is neither
	// the broadcast sentinel nor '!' followed by 8 hex digits.
	KindInvalidAddressFormat
	// KindConnectionRefused reports a broker that actively refused the
	// connection.
	KindConnectionRefused
	// KindAuthenticationFailed reports a broker that rejected the
	// supplied credentials.
	KindAuthenticationFailed
	// KindConnectionTimeout reports a connection attempt that produced
	// no outcome within the connect timeout.
	KindConnectionTimeout
	// KindPublishFailure reports a publish the broker rejected or
	// failed after a successful connection.
	KindPublishFailure
	// KindPublishTimeout reports a publish that was not acknowledged
	// within the publish timeout.
	KindPublishTimeout
	// KindEncodingFailure reports a protobuf serialization failure.
	// It should not occur for well-formed input and indicates a defect.
	KindEncodingFailure
	// KindEmptyMessage reports message text rejected before the
	// pipeline ran.
	KindEmptyMessage
	// KindSettingsFile reports a settings file that could not be read,
	// parsed, or created.
	KindSettingsFile
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindMissingRequiredField:
		return "missing required field"
	case KindInvalidFieldValue:
		return "invalid field value"
	case KindInvalidAddressFormat:
		return "invalid address format"
	case KindConnectionRefused:
		return "connection refused"
	case KindAuthenticationFailed:
		return "authentication failed"
	case KindConnectionTimeout:
		return "connection timeout"
	case KindPublishFailure:
		return "publish failure"
	case KindPublishTimeout:
		return "publish timeout"
	case KindEncodingFailure:
		return "encoding failure"
	case KindEmptyMessage:
		return "empty message"
	case KindSettingsFile:
		return "settings file error"
	default:
		return "unexpected failure"
	}
}

// Failure is a classified terminal error from the send pipeline.
type Failure struct {
	// Kind tags the failure; exactly one applies.
	Kind Kind
	// Err is the underlying cause, may be nil for purely local failures.
	Err error
	// Fields names the settings fields involved, for resolution-time
	// failures. Missing-field failures list every missing field.
	Fields []string
	// Server and Port identify the broker, for network-stage failures.
	// The password is never carried here.
	Server string
	Port   int
	// Message is a preformatted human-readable description.
	Message string
}

// Error implements the error interface.
func (f *Failure) Error() string {
	if f.Message != "" {
		return f.Message
	}
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Kind, f.Err)
	}
	return f.Kind.String()
}

// Unwrap returns the underlying cause.
func (f *Failure) Unwrap() error {
	return f.Err
}

// Is lets errors.Is match on another *Failure of the same Kind.
func (f *Failure) Is(target error) bool {
	var other *Failure
	if errors.As(target, &other) {
		return f.Kind == other.Kind
	}
	return false
}

// KindOf extracts the Kind from err, or KindUnexpected if err carries
// no *Failure in its chain.
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindUnexpected
}

// MissingFields reports required fields absent from every source.
func MissingFields(fields ...string) *Failure {
	return &Failure{
		Kind:    KindMissingRequiredField,
		Fields:  fields,
		Message: fmt.Sprintf("missing required configuration: %s", strings.Join(fields, ", ")),
	}
}

// InvalidField reports a field that is present but violates its
// constraint.
func InvalidField(field, constraint string) *Failure {
	return &Failure{
		Kind:    KindInvalidFieldValue,
		Fields:  []string{field},
		Message: fmt.Sprintf("invalid value for %s: %s", field, constraint),
	}
}

// InvalidAddress reports a node address that failed to parse.
func InvalidAddress(text string) *Failure {
	return &Failure{
		Kind:    KindInvalidAddressFormat,
		Message: fmt.Sprintf("invalid node address %q: expected '!' followed by 8 hex digits, or '^all'", text),
	}
}

// ConnectionRefused reports an actively refused broker connection.
func ConnectionRefused(server string, port int, cause error) *Failure {
	return &Failure{
		Kind:    KindConnectionRefused,
		Err:     cause,
		Server:  server,
		Port:    port,
		Message: fmt.Sprintf("connection to %s:%d refused: %v", server, port, cause),
	}
}

// AuthenticationFailed reports rejected credentials. The message hints
// at the credentials but never echoes the password.
func AuthenticationFailed(server string, port int, cause error) *Failure {
	return &Failure{
		Kind:    KindAuthenticationFailed,
		Err:     cause,
		Server:  server,
		Port:    port,
		Message: fmt.Sprintf("authentication with %s:%d failed: check username and password", server, port),
	}
}

// ConnectionTimeout reports a connect attempt with no outcome in time.
func ConnectionTimeout(server string, port int) *Failure {
	return &Failure{
		Kind:    KindConnectionTimeout,
		Server:  server,
		Port:    port,
		Message: fmt.Sprintf("connection to %s:%d timed out", server, port),
	}
}

// PublishFailed reports a publish the broker rejected after a
// successful connection.
func PublishFailed(topic string, cause error) *Failure {
	return &Failure{
		Kind:    KindPublishFailure,
		Err:     cause,
		Message: fmt.Sprintf("publish to %s failed: %v", topic, cause),
	}
}

// PublishTimeout reports a publish not acknowledged in time.
func PublishTimeout(topic string) *Failure {
	return &Failure{
		Kind:    KindPublishTimeout,
		Message: fmt.Sprintf("publish to %s not acknowledged before timeout", topic),
	}
}

// Encoding reports a serialization failure.
func Encoding(cause error) *Failure {
	return &Failure{
		Kind:    KindEncodingFailure,
		Err:     cause,
		Message: fmt.Sprintf("failed to serialize message envelope: %v", cause),
	}
}

// EmptyMessage reports message text rejected before the pipeline ran.
func EmptyMessage() *Failure {
	return &Failure{
		Kind:    KindEmptyMessage,
		Message: "message text cannot be empty",
	}
}

// SettingsFile reports a settings file problem.
func SettingsFile(cause error) *Failure {
	return &Failure{Kind: KindSettingsFile, Err: cause}
}

// SettingsFileCreated reports that a missing settings file was just
// materialized from the default template and needs editing before a
// send can proceed.
func SettingsFileCreated(path string) *Failure {
	return &Failure{
		Kind:    KindSettingsFile,
		Message: fmt.Sprintf("created default configuration at %s; edit it with your broker credentials and gateway ID, then re-run", path),
	}
}

// Unexpected wraps an unclassified error.
func Unexpected(cause error) *Failure {
	return &Failure{Kind: KindUnexpected, Err: cause}
}

// Process exit codes, one per failure category. These match the exit
// contract of the CLI: distinct codes let shell callers branch on the
// failure stage without parsing stderr.
const (
	ExitSuccess     = 0
	ExitConfig      = 1
	ExitBroker      = 2
	ExitMessage     = 3
	ExitEncoding    = 4
	ExitUnexpected  = 99
	ExitInterrupted = 130
)

// ExitCode maps an error to the process exit code for its Kind.
// A nil error maps to ExitSuccess.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	switch KindOf(err) {
	case KindMissingRequiredField, KindInvalidFieldValue, KindInvalidAddressFormat, KindSettingsFile:
		return ExitConfig
	case KindConnectionRefused, KindAuthenticationFailed, KindConnectionTimeout,
		KindPublishFailure, KindPublishTimeout:
		return ExitBroker
	case KindEmptyMessage:
		return ExitMessage
	case KindEncodingFailure:
		return ExitEncoding
	default:
		return ExitUnexpected
	}
}
