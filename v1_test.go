package uuid

import (
	"errors"
	"sync"
	"testing"
	"time"

	guuid "github.com/google/uuid"
)

func TestTimeBasedLayout(t *testing.T) {
	u := timeBased(0x123456789abcdef, 0x1234, 0x010203040506)
	want := MustParse("89abcdef-4567-1123-9234-010203040506")
	if u != want {
		t.Fatalf("timeBased() = %v, want %v", u, want)
	}

	ts, err := u.Timestamp()
	if err != nil {
		t.Fatalf("Timestamp() error = %v", err)
	}
	if ts != 0x123456789abcdef {
		t.Errorf("Timestamp() = %#x, want 0x123456789abcdef", uint64(ts))
	}

	seq, err := u.ClockSequence()
	if err != nil || seq != 0x1234 {
		t.Errorf("ClockSequence() = %#x, %v", seq, err)
	}

	node, err := u.NodeID()
	if err != nil || node != 0x010203040506 {
		t.Errorf("NodeID() = %v, %v", node, err)
	}
}

func TestTimeBasedMasksFields(t *testing.T) {
	u := timeBased(1<<60-1, 0xffff, 1<<64-1)
	if u.Version() != VersionTimeBased {
		t.Errorf("Version() = %v, want %v", u.Version(), VersionTimeBased)
	}
	if u.Variant() != VariantRFC4122 {
		t.Errorf("Variant() = %v, want %v", u.Variant(), VariantRFC4122)
	}
	if seq, _ := u.ClockSequence(); seq != 0x3fff {
		t.Errorf("ClockSequence() = %#x, want 0x3fff", seq)
	}
	if node, _ := u.NodeID(); node != nodeMask {
		t.Errorf("NodeID() = %v, want ff:ff:ff:ff:ff:ff", node)
	}
}

func TestGenerator_NewV1(t *testing.T) {
	now := time.Date(2018, time.May, 27, 17, 43, 10, 101_000_000, time.UTC)
	wall := newManualTime(now)
	gen := NewGenerator(
		WithClock(NewClockWithSource(wall.now)),
		WithNode(0x0242ac110002),
		WithClockSequence(0x2a2a),
	)

	u := gen.NewV1()
	if u.String() != "6be6b450-61d5-11e8-aa2a-0242ac110002" {
		t.Errorf("NewV1() = %v", u)
	}

	created, err := u.Time()
	if err != nil {
		t.Fatalf("Time() error = %v", err)
	}
	if !created.Equal(now) {
		t.Errorf("Time() = %v, want %v", created, now)
	}

	next := gen.NewV1()
	ts1, _ := u.Timestamp()
	ts2, _ := next.Timestamp()
	if ts2 != ts1+1 {
		t.Errorf("second timestamp = %d, want %d", ts2, ts1+1)
	}
}

// google/uuid reads the same fields; both must agree on where they live.
func TestNewV1_MatchesGoogleUUID(t *testing.T) {
	for i := 0; i < 10; i++ {
		u := NewV1()
		g := guuid.UUID(u)

		if g.Version() != 1 || g.Variant() != guuid.RFC4122 {
			t.Fatalf("google/uuid sees version %v variant %v", g.Version(), g.Variant())
		}

		ts, err := u.Timestamp()
		if err != nil {
			t.Fatalf("Timestamp() error = %v", err)
		}
		if int64(ts) != int64(g.Time()) {
			t.Errorf("Timestamp() = %d, google/uuid says %d", ts, g.Time())
		}

		seq, _ := u.ClockSequence()
		if int(seq) != g.ClockSequence() {
			t.Errorf("ClockSequence() = %d, google/uuid says %d", seq, g.ClockSequence())
		}

		node, _ := u.NodeID()
		if node.String() != nodeString(g.NodeID()) {
			t.Errorf("NodeID() = %v, google/uuid says %x", node, g.NodeID())
		}
	}
}

func nodeString(b []byte) string {
	n, _ := NodeFromHardwareAddr(b)
	return n.String()
}

func TestNewV1_UsesProcessValues(t *testing.T) {
	u := NewTimeBased()
	seq, _ := u.ClockSequence()
	node, _ := u.NodeID()
	if seq != ProcessClockSequence() {
		t.Errorf("ClockSequence() = %d, want %d", seq, ProcessClockSequence())
	}
	if node != ProcessNode() {
		t.Errorf("NodeID() = %v, want %v", node, ProcessNode())
	}
	if ProcessClockSequence() > clockSequenceMask {
		t.Errorf("ProcessClockSequence() = %#x exceeds 14 bits", ProcessClockSequence())
	}

	created, err := u.Time()
	if err != nil {
		t.Fatalf("Time() error = %v", err)
	}
	if diff := time.Since(created); diff < -time.Second || diff > time.Second {
		t.Errorf("Time() is %v away from now", diff)
	}
}

func TestNewV1_Sequential(t *testing.T) {
	const count = 1000
	var prev Timestamp
	for i := 0; i < count; i++ {
		ts, err := NewV1().Timestamp()
		if err != nil {
			t.Fatalf("Timestamp() error = %v", err)
		}
		if ts <= prev {
			t.Fatalf("timestamp %d not after %d", ts, prev)
		}
		prev = ts
	}
}

func TestGenerators_ShareProcessClock(t *testing.T) {
	g1 := NewGenerator()
	g2 := NewGenerator()

	var prev Timestamp
	for i := 0; i < 100; i++ {
		for _, g := range []*Generator{g1, g2} {
			ts, _ := g.NewV1().Timestamp()
			if ts <= prev {
				t.Fatalf("timestamp %d not after %d", ts, prev)
			}
			prev = ts
		}
	}
}

func TestNewV1_ConcurrentSafety(t *testing.T) {
	const goroutines = 10
	const uuidsPerGoroutine = 1000

	results := make(chan UUID, goroutines*uuidsPerGoroutine)
	var wg sync.WaitGroup

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < uuidsPerGoroutine; j++ {
				results <- NewV1()
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[UUID]bool)
	timestamps := make(map[Timestamp]bool)
	for uuid := range results {
		if seen[uuid] {
			t.Errorf("Duplicate UUID generated in concurrent test: %v", uuid)
		}
		seen[uuid] = true

		ts, err := uuid.Timestamp()
		if err != nil {
			t.Fatalf("Timestamp() error = %v", err)
		}
		if timestamps[ts] {
			t.Errorf("Duplicate timestamp generated in concurrent test: %d", ts)
		}
		timestamps[ts] = true
	}

	if len(seen) != goroutines*uuidsPerGoroutine {
		t.Errorf("Expected %d unique UUIDs, got %d", goroutines*uuidsPerGoroutine, len(seen))
	}
}

func TestTimestamp_NotTimeBased(t *testing.T) {
	tests := []struct {
		name string
		uuid UUID
	}{
		{"nil", Nil},
		{"v3", NewV3(NamespaceURL, "test")},
		{"v4", NewV4()},
		{"v5", NewV5(NamespaceURL, "test")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.uuid.Timestamp(); err != ErrNotTimeBased {
				t.Errorf("Timestamp() error = %v, want %v", err, ErrNotTimeBased)
			}
			if _, err := tt.uuid.Time(); !errors.Is(err, errors.ErrUnsupported) {
				t.Errorf("Time() error = %v, want errors.ErrUnsupported", err)
			}
			if _, err := tt.uuid.ClockSequence(); err != ErrNotTimeBased {
				t.Errorf("ClockSequence() error = %v, want %v", err, ErrNotTimeBased)
			}
			if _, err := tt.uuid.NodeID(); err != ErrNotTimeBased {
				t.Errorf("NodeID() error = %v, want %v", err, ErrNotTimeBased)
			}
		})
	}
}
