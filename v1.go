package uuid

import (
	"log/slog"
	"sync"
	"time"
)

// processState holds the values every version 1 UUID of this process shares:
// the last issued timestamp, the node and the clock sequence. Node and clock
// sequence are computed on first use; concurrent first callers wait for that
// single computation. Node resolution logs through slog.Default.
type processState struct {
	clock    *Clock
	node     func() Node
	clockSeq func() ClockSequence
}

func newProcessState() *processState {
	return &processState{
		clock: NewClock(),
		node: sync.OnceValue(func() Node {
			return newNodeResolver(slog.Default()).resolve()
		}),
		clockSeq: sync.OnceValue(func() ClockSequence {
			return newClockSequence(time.Now())
		}),
	}
}

var process = newProcessState()

// ProcessNode returns the node used by generators that were not given one.
func ProcessNode() Node {
	return process.node()
}

// ProcessClockSequence returns the clock sequence used by generators that were
// not given one.
func ProcessClockSequence() ClockSequence {
	return process.clockSeq()
}

// Generator builds version 1 UUIDs. It is safe for concurrent use and takes
// no locks.
//
// By default every Generator shares the process-wide Clock, node and clock
// sequence, so timestamps are strictly increasing across all of them.
type Generator struct {
	clock    *Clock
	node     func() Node
	clockSeq func() ClockSequence
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock makes the generator draw timestamps from c instead of the
// process-wide Clock.
func WithClock(c *Clock) Option {
	return func(g *Generator) {
		g.clock = c
	}
}

// WithNode fixes the node field.
func WithNode(n Node) Option {
	return func(g *Generator) {
		g.node = func() Node { return n & nodeMask }
	}
}

// WithClockSequence fixes the clock sequence field.
func WithClockSequence(seq ClockSequence) Option {
	return func(g *Generator) {
		g.clockSeq = func() ClockSequence { return seq & clockSequenceMask }
	}
}

// NewGenerator creates a version 1 generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		clock:    process.clock,
		node:     process.node,
		clockSeq: process.clockSeq,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewV1 returns a time-based UUID built from the next timestamp, the clock
// sequence and the node.
func (g *Generator) NewV1() UUID {
	return timeBased(g.clock.Next(), g.clockSeq(), g.node())
}

// timeBased lays out a version 1 UUID:
//
//	time_low (32) | time_mid (16) | version (4) time_hi (12)
//	variant (2) clock_seq (14) | node (48)
func timeBased(ts Timestamp, seq ClockSequence, node Node) UUID {
	t := uint64(ts)
	msb := (t&0xffffffff)<<32 |
		(t>>32&0xffff)<<16 |
		uint64(VersionTimeBased)<<12 |
		t>>48&0x0fff
	lsb := 1<<63 |
		uint64(seq&clockSequenceMask)<<48 |
		uint64(node&nodeMask)
	return FromHalves(msb, lsb)
}

// defaultGenerator is the package-level generator used by NewV1
var defaultGenerator = NewGenerator()

// NewV1 returns a time-based UUID from the default generator.
func NewV1() UUID {
	return defaultGenerator.NewV1()
}

// NewTimeBased is an alias for NewV1
func NewTimeBased() UUID {
	return defaultGenerator.NewV1()
}

// Timestamp returns the 60-bit timestamp of a version 1 UUID.
// It returns ErrNotTimeBased for every other version.
func (u UUID) Timestamp() (Timestamp, error) {
	if u.Version() != VersionTimeBased {
		return 0, ErrNotTimeBased
	}
	msb, _ := u.Halves()
	return Timestamp((msb&0x0fff)<<48 | (msb>>16&0xffff)<<32 | msb>>32), nil
}

// Time returns the creation time of a version 1 UUID.
func (u UUID) Time() (time.Time, error) {
	ts, err := u.Timestamp()
	if err != nil {
		return time.Time{}, err
	}
	return ts.Time(), nil
}

// ClockSequence returns the clock sequence of a version 1 UUID.
func (u UUID) ClockSequence() (ClockSequence, error) {
	if u.Version() != VersionTimeBased {
		return 0, ErrNotTimeBased
	}
	_, lsb := u.Halves()
	return ClockSequence(lsb>>48) & clockSequenceMask, nil
}

// NodeID returns the node of a version 1 UUID.
func (u UUID) NodeID() (Node, error) {
	if u.Version() != VersionTimeBased {
		return 0, ErrNotTimeBased
	}
	_, lsb := u.Halves()
	return Node(lsb) & nodeMask, nil
}
