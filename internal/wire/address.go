package wire

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rmacdonaldsmith/meshsend-go/pkg/failure"
)

// BroadcastAddr is the all-ones node address reserved for broadcast.
const BroadcastAddr = ^uint32(0)

// BroadcastSentinel is the human-readable form of the broadcast address.
const BroadcastSentinel = "^all"

// ParseNodeID converts a node address string to its 32-bit wire form.
// Accepted forms are the broadcast sentinel '^all' (case-insensitive)
// and '!' followed by exactly 8 hex digits (either case).
func ParseNodeID(text string) (uint32, error) {
	if strings.EqualFold(text, BroadcastSentinel) {
		return BroadcastAddr, nil
	}

	hexPart, ok := strings.CutPrefix(text, "!")
	if !ok || len(hexPart) != 8 {
		return 0, failure.InvalidAddress(text)
	}
	n, err := strconv.ParseUint(hexPart, 16, 32)
	if err != nil {
		return 0, failure.InvalidAddress(text)
	}
	return uint32(n), nil
}

// FormatNodeID renders a node address for diagnostics. The broadcast
// address renders as the sentinel operators type and expect in logs.
func FormatNodeID(id uint32) string {
	if id == BroadcastAddr {
		return BroadcastSentinel
	}
	return fmt.Sprintf("!%08x", id)
}
