package trace

import (
	"io"
	"sync"
)

// StreamTracer writes every accepted event straight to its writer.
// Writes are best-effort: a broken trace sink must never fail a lex run.
type StreamTracer struct {
	mu     sync.Mutex
	w      io.Writer
	level  Level
	format Format
	first  bool // Chrome array needs commas between elements
}

// NewStreamTracer builds a tracer over w. For FormatChrome the array
// header goes out immediately.
func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	st := &StreamTracer{
		w:      w,
		level:  level,
		format: format,
		first:  true,
	}

	if format == FormatChrome {
		_, _ = w.Write([]byte("{\"traceEvents\":[\n")) //nolint:errcheck // best effort
	}

	return st
}

// Emit writes one event, stamping its sequence number.
func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) && ev.Kind != KindHeartbeat {
		return
	}

	ev.Seq = NextSeq()
	data := FormatEvent(ev, t.format)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.format == FormatChrome {
		if !t.first {
			_, _ = t.w.Write([]byte(",\n")) //nolint:errcheck // best effort
		}
		t.first = false
	}

	_, _ = t.w.Write(data) //nolint:errcheck // best effort
}

// Flush forwards to the writer when it buffers; immediate writes need
// no draining.
func (t *StreamTracer) Flush() error {
	if flusher, ok := t.w.(interface{ Flush() error }); ok {
		return flusher.Flush()
	}
	return nil
}

// Close terminates the Chrome array when needed and closes the writer
// if it owns a handle.
func (t *StreamTracer) Close() error {
	t.mu.Lock()
	if t.format == FormatChrome {
		_, _ = t.w.Write([]byte("\n]}\n")) //nolint:errcheck // best effort
	}
	t.mu.Unlock()

	if err := t.Flush(); err != nil {
		return err
	}
	if closer, ok := t.w.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Level returns the configured level.
func (t *StreamTracer) Level() Level {
	return t.level
}

// Enabled reports whether events are accepted at all.
func (t *StreamTracer) Enabled() bool {
	return t.level > LevelOff
}
