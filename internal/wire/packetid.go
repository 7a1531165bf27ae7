package wire

import (
	"crypto/rand"
	"encoding/binary"
	"sync/atomic"
)

// packetID is seeded once per process from crypto/rand and advanced
// atomically. Uniqueness is best-effort: the mesh de-duplicates on
// (source, id) within a bounded window and tolerates rare collisions.
var packetID atomic.Uint32

func init() {
	var seed [4]byte
	// rand.Read never fails on supported platforms; a zero seed would
	// still produce valid, monotonically advancing IDs.
	_, _ = rand.Read(seed[:])
	packetID.Store(binary.BigEndian.Uint32(seed[:]))
}

// GeneratePacketID returns the next packet identifier. Zero is skipped:
// the mesh firmware treats a zero packet ID as unset.
func GeneratePacketID() uint32 {
	for {
		if id := packetID.Add(1); id != 0 {
			return id
		}
	}
}
