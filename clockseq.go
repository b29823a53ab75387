package uuid

import (
	"math/rand"
	"time"
)

// ClockSequence is the 14-bit clock sequence of a version 1 UUID.
type ClockSequence uint16

const clockSequenceMask = 0x3fff

// newClockSequence picks a clock sequence from a generator seeded with the
// given wall-clock time.
func newClockSequence(seed time.Time) ClockSequence {
	r := rand.New(rand.NewSource(seed.UnixNano()))
	return ClockSequence(r.Uint64() & clockSequenceMask)
}
