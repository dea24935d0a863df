package trace

import (
	"io"
	"sync"
)

// RingTracer keeps the newest events in a fixed circular buffer. Meant
// as a crash ring: cheap while running, dumped on demand when a run
// goes wrong.
type RingTracer struct {
	mu       sync.RWMutex
	events   []Event
	capacity int
	head     int  // следующая позиция записи
	full     bool // кольцо уже обернулось
	level    Level
}

// NewRingTracer builds a ring holding up to capacity events.
func NewRingTracer(capacity int, level Level) *RingTracer {
	if capacity <= 0 {
		capacity = 4096
	}

	return &RingTracer{
		events:   make([]Event, capacity),
		capacity: capacity,
		level:    level,
	}
}

// Emit stores a copy of the event, overwriting the oldest slot once the
// ring is full.
func (t *RingTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) && ev.Kind != KindHeartbeat {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	stored := *ev
	stored.Seq = NextSeq()
	t.events[t.head] = stored
	t.head = (t.head + 1) % t.capacity

	if t.head == 0 {
		t.full = true
	}
}

// Snapshot returns the stored events oldest-first.
func (t *RingTracer) Snapshot() []Event {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if !t.full {
		result := make([]Event, t.head)
		copy(result, t.events[:t.head])
		return result
	}

	// обернулось: хвост [head:] старше головы [:head]
	result := make([]Event, t.capacity)
	copy(result, t.events[t.head:])
	copy(result[t.capacity-t.head:], t.events[:t.head])
	return result
}

// Dump writes the snapshot to w in the given format.
func (t *RingTracer) Dump(w io.Writer, format Format) error {
	for _, ev := range t.Snapshot() {
		if _, err := w.Write(FormatEvent(&ev, format)); err != nil {
			return err
		}
	}
	return nil
}

// Flush is a no-op, the ring lives in memory.
func (t *RingTracer) Flush() error {
	return nil
}

// Close is a no-op.
func (t *RingTracer) Close() error {
	return nil
}

// Level returns the configured level.
func (t *RingTracer) Level() Level {
	return t.level
}

// Enabled reports whether events are accepted at all.
func (t *RingTracer) Enabled() bool {
	return t.level > LevelOff
}
