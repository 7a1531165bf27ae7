package publisher

// State tracks the orchestrator through one connect/publish/disconnect
// cycle. StateErrored absorbs failures from connecting or publishing;
// every run terminates in StateDisconnected.
type State int

const (
	StateIdle State = iota
	StateConnecting
	StateConnected
	StatePublishing
	StatePublished
	StateErrored
	StateDisconnected
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateConnecting:
		return "Connecting"
	case StateConnected:
		return "Connected"
	case StatePublishing:
		return "Publishing"
	case StatePublished:
		return "Published"
	case StateErrored:
		return "Errored"
	case StateDisconnected:
		return "Disconnected"
	default:
		return "Unknown"
	}
}
