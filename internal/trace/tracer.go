package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Tracer accepts trace events. Implementations must be goroutine-safe.
type Tracer interface {
	// Emit records one event.
	Emit(ev *Event)

	// Flush drains buffered events.
	Flush() error

	// Close flushes and releases resources.
	Close() error

	// Level returns the configured tracing level.
	Level() Level

	// Enabled reports whether any events are accepted.
	Enabled() bool
}

// StorageMode determines where accepted events go.
type StorageMode uint8

const (
	ModeStream StorageMode = iota + 1 // immediate write
	ModeRing                          // circular buffer
	ModeBoth                          // stream + ring
)

func (m StorageMode) String() string {
	switch m {
	case ModeStream:
		return "stream"
	case ModeRing:
		return "ring"
	case ModeBoth:
		return "both"
	default:
		return "unknown"
	}
}

// ParseMode converts a flag value to a StorageMode.
func ParseMode(s string) (StorageMode, error) {
	switch strings.ToLower(s) {
	case "stream":
		return ModeStream, nil
	case "ring":
		return ModeRing, nil
	case "both":
		return ModeBoth, nil
	default:
		return ModeRing, fmt.Errorf("invalid storage mode: %q (expected: stream|ring|both)", s)
	}
}

// Config holds tracer configuration.
type Config struct {
	Level      Level         // tracing level
	Mode       StorageMode   // storage mode
	Format     Format        // output format, FormatAuto to detect from path
	Output     io.Writer     // stream sink; when nil OutputPath is opened
	OutputPath string        // file path, "-" for stderr
	RingSize   int           // ring capacity, default 4096
	Heartbeat  time.Duration // heartbeat interval, 0 disables
}

// New builds a tracer from the config. A LevelOff config yields the
// shared Nop tracer.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return nopTracer{}, nil
	}

	if cfg.RingSize <= 0 {
		cfg.RingSize = 4096
	}

	format := cfg.Format
	if format == FormatAuto {
		format = FormatText
		if cfg.OutputPath != "" && cfg.OutputPath != "-" {
			switch {
			case strings.HasSuffix(cfg.OutputPath, ".ndjson"):
				format = FormatNDJSON
			case strings.HasSuffix(cfg.OutputPath, ".json"):
				format = FormatChrome
			}
		}
	}

	switch cfg.Mode {
	case ModeStream:
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		return NewStreamTracer(w, cfg.Level, format), nil

	case ModeRing:
		return NewRingTracer(cfg.RingSize, cfg.Level), nil

	case ModeBoth:
		w, err := openOutput(cfg)
		if err != nil {
			return nil, err
		}
		stream := NewStreamTracer(w, cfg.Level, format)
		ring := NewRingTracer(cfg.RingSize, cfg.Level)
		return NewMultiTracer(cfg.Level, stream, ring), nil

	default:
		return nil, fmt.Errorf("unknown storage mode: %v", cfg.Mode)
	}
}

// openOutput resolves the stream sink: explicit writer, stderr for "-",
// otherwise a freshly created file.
func openOutput(cfg Config) (io.Writer, error) {
	if cfg.Output != nil {
		return cfg.Output, nil
	}
	switch cfg.OutputPath {
	case "", "-":
		return os.Stderr, nil
	default:
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open trace output: %w", err)
		}
		return f, nil
	}
}
