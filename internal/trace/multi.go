package trace

// MultiTracer fans every event out to a set of tracers, typically a
// stream sink plus a crash ring.
type MultiTracer struct {
	tracers []Tracer
	level   Level
}

// NewMultiTracer combines the given tracers under one level.
func NewMultiTracer(level Level, tracers ...Tracer) *MultiTracer {
	return &MultiTracer{
		tracers: tracers,
		level:   level,
	}
}

// Emit forwards the event to every tracer. Each sink stamps its own
// sequence number.
func (t *MultiTracer) Emit(ev *Event) {
	for _, tr := range t.tracers {
		copied := *ev
		tr.Emit(&copied)
	}
}

// Flush drains every sink, reporting the first failure.
func (t *MultiTracer) Flush() error {
	var firstErr error
	for _, tr := range t.tracers {
		if err := tr.Flush(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Close closes every sink, reporting the first failure.
func (t *MultiTracer) Close() error {
	var firstErr error
	for _, tr := range t.tracers {
		if err := tr.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Level returns the configured level.
func (t *MultiTracer) Level() Level {
	return t.level
}

// Enabled reports whether events are accepted at all.
func (t *MultiTracer) Enabled() bool {
	return t.level > LevelOff
}
