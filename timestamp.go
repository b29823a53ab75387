package uuid

import (
	"sync/atomic"
	"time"
)

// Timestamp is a version 1 timestamp: a 60-bit count of 100-nanosecond
// intervals since 00:00:00.00, 15 October 1582 (the Gregorian reform).
type Timestamp uint64

const (
	// gregorianToUnix is the number of 100ns ticks between the Gregorian
	// reform and the Unix epoch.
	gregorianToUnix = 0x01b21dd213814000

	ticksPerSecond      = 10_000_000
	ticksPerMillisecond = 10_000

	timestampMask = 1<<60 - 1
)

// TimestampFromTime converts t to a version 1 timestamp.
func TimestampFromTime(t time.Time) Timestamp {
	// UnixNano overflows before 1678, so work from seconds.
	ticks := t.Unix()*ticksPerSecond + int64(t.Nanosecond()/100)
	return Timestamp(uint64(ticks)+gregorianToUnix) & timestampMask
}

// Time returns the UTC instant the timestamp denotes.
func (ts Timestamp) Time() time.Time {
	ticks := int64(ts) - gregorianToUnix
	return time.Unix(ticks/ticksPerSecond, (ticks%ticksPerSecond)*100).UTC()
}

// Milliseconds returns the timestamp truncated to whole milliseconds since
// the Gregorian reform.
func (ts Timestamp) Milliseconds() uint64 {
	return uint64(ts) / ticksPerMillisecond
}

// Clock issues strictly increasing timestamps. It is safe for concurrent use
// and never blocks on a lock: the last issued value is the only state and it
// only moves through compare-and-swap.
//
// At most 10,000 timestamps are issued per millisecond of wall-clock time.
// When that budget is spent, Next spins until the wall clock reaches the next
// millisecond. If the wall clock is set back by a millisecond or more, Next
// keeps counting up from the last issued value instead, which may leave the
// clock running ahead of real time.
type Clock struct {
	last atomic.Uint64
	now  func() time.Time
}

// NewClock returns a Clock that reads the system clock.
func NewClock() *Clock {
	return NewClockWithSource(time.Now)
}

// NewClockWithSource returns a Clock that reads the wall clock from now.
func NewClockWithSource(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Next returns a timestamp greater than every timestamp previously returned
// by this Clock.
func (c *Clock) Next() Timestamp {
	for {
		now := uint64(TimestampFromTime(c.now()))
		last := c.last.Load()

		if now > last {
			if c.last.CompareAndSwap(last, now) {
				return Timestamp(now)
			}
			continue
		}

		lastMillis := last / ticksPerMillisecond
		if now/ticksPerMillisecond < lastMillis {
			// clock was set back
			return Timestamp(c.last.Add(1))
		}

		// Within the current millisecond's budget take the next tick, unless
		// another goroutine got there first. Past the budget, spin until the
		// wall clock catches up.
		candidate := last + 1
		if candidate/ticksPerMillisecond == lastMillis && c.last.CompareAndSwap(last, candidate) {
			return Timestamp(candidate)
		}
	}
}

// Last returns the most recently issued timestamp, or zero if none was issued.
func (c *Clock) Last() Timestamp {
	return Timestamp(c.last.Load())
}
