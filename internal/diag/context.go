package diag

import (
	"hash/fnv"
	"sort"
	"sync"
)

// Config tunes how a Context filters and counts diagnostics.
type Config struct {
	// Deduplicate drops diagnostics whose message, code and primary
	// position were already seen.
	Deduplicate bool
	// MaxErrors caps how many errors reach the emitter; zero means
	// unlimited. Errors beyond the cap still count.
	MaxErrors int
	// TreatWarningsAsErrors promotes every warning to an error (-Werror).
	TreatWarningsAsErrors bool
	// ColorOutput requests ANSI colors from emitters that support them.
	ColorOutput bool
}

// DefaultConfig returns the settings used when no flags override them:
// deduplication on, no error cap, warnings stay warnings, colors on.
func DefaultConfig() Config {
	return Config{Deduplicate: true, ColorOutput: true}
}

// Stats is a snapshot of a Context's counters.
type Stats struct {
	Errors   int
	Warnings int
	Notes    int
	// UniqueCodes lists the distinct error codes seen, ordered by
	// category and number.
	UniqueCodes []ErrorCode
}

// HasErrors reports whether any error was counted.
func (s Stats) HasErrors() bool {
	return s.Errors > 0
}

// Total returns the combined diagnostic count.
func (s Stats) Total() int {
	return s.Errors + s.Warnings + s.Notes
}

// Emitter renders diagnostics into some concrete output format. The
// diagfmt package provides the human-readable and JSON implementations.
type Emitter interface {
	// Emit renders one diagnostic. locator may be nil, in which case the
	// emitter prints what it can without resolved positions.
	Emit(d *Diagnostic, locator SourceLocator)
	// EmitSummary renders the closing totals line or object.
	EmitSummary(stats Stats)
	// Flush drains buffered output.
	Flush() error
}

// Context is the single sink every phase reports into. It owns the dedup
// set, the counters and the emitter, all behind one mutex, so concurrent
// phases may emit freely; ordering between goroutines stays unspecified
// beyond "each emit is atomic".
type Context struct {
	mu       sync.Mutex
	emitter  Emitter
	locator  SourceLocator
	config   Config
	errors   int
	warnings int
	notes    int
	hadFatal bool
	codes    map[ErrorCode]struct{}
	seen     map[uint64]struct{}
}

// NewContext wires a context to an emitter. The locator starts unset;
// producers attach one via SetLocator before emitting span diagnostics.
func NewContext(emitter Emitter, config Config) *Context {
	return &Context{
		emitter: emitter,
		config:  config,
		codes:   make(map[ErrorCode]struct{}),
		seen:    make(map[uint64]struct{}),
	}
}

// Emit runs the full pipeline on one diagnostic: -Werror promotion, then
// deduplication, then counting, then the max-error gate, then the emitter.
// A diagnostic suppressed by the gate is still counted.
func (c *Context) Emit(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.config.TreatWarningsAsErrors && d.Level == LevelWarning {
		d.Level = LevelError
	}

	if c.config.Deduplicate {
		h := diagnosticHash(&d)
		if _, dup := c.seen[h]; dup {
			return
		}
		c.seen[h] = struct{}{}
	}

	switch d.Level {
	case LevelError, LevelBug:
		c.errors++
		if d.Code.IsValid() {
			c.codes[d.Code] = struct{}{}
		}
	case LevelFatal:
		c.errors++
		c.hadFatal = true
		if d.Code.IsValid() {
			c.codes[d.Code] = struct{}{}
		}
	case LevelWarning:
		c.warnings++
	case LevelNote, LevelHelp:
		c.notes++
	}

	if c.config.MaxErrors > 0 && c.errors > c.config.MaxErrors {
		return
	}

	if c.emitter != nil {
		c.emitter.Emit(&d, c.locator)
	}
}

// EmitError emits the diagnostic at no less than LevelError and returns
// the guarantee that an error is now on record.
func (c *Context) EmitError(d Diagnostic) ErrorGuaranteed {
	if d.Level < LevelError {
		d.Level = LevelError
	}
	c.Emit(d)
	return ErrorGuaranteed{}
}

// EmitWarning emits the diagnostic forced to LevelWarning.
func (c *Context) EmitWarning(d Diagnostic) {
	d.Level = LevelWarning
	c.Emit(d)
}

// EmitNote emits the diagnostic forced to LevelNote.
func (c *Context) EmitNote(d Diagnostic) {
	d.Level = LevelNote
	c.Emit(d)
}

// Error emits a bare error message.
func (c *Context) Error(message string) ErrorGuaranteed {
	return c.EmitError(NewDiagnostic(LevelError, message))
}

// ErrorAt emits a coded error pointing at a span.
func (c *Context) ErrorAt(code ErrorCode, message string, span Span) ErrorGuaranteed {
	d := Diagnostic{Level: LevelError, Message: message, Code: code}
	d.Spans.AddPrimary(span, "")
	return c.EmitError(d)
}

// Warning emits a bare warning message.
func (c *Context) Warning(message string) {
	c.EmitWarning(NewDiagnostic(LevelWarning, message))
}

// Note emits a bare note.
func (c *Context) Note(message string) {
	c.EmitNote(NewDiagnostic(LevelNote, message))
}

// ErrorCount returns how many errors were counted so far.
func (c *Context) ErrorCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors
}

// WarningCount returns how many warnings were counted so far.
func (c *Context) WarningCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.warnings
}

// HasErrors reports whether any error was counted.
func (c *Context) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors > 0
}

// ShouldAbort reports whether compilation must stop: a fatal diagnostic
// was seen, or the configured error cap is reached. Poll at phase
// boundaries, not inside scan loops.
func (c *Context) ShouldAbort() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hadFatal {
		return true
	}
	return c.config.MaxErrors > 0 && c.errors >= c.config.MaxErrors
}

// Stats snapshots the counters.
func (c *Context) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.statsLocked()
}

func (c *Context) statsLocked() Stats {
	s := Stats{Errors: c.errors, Warnings: c.warnings, Notes: c.notes}
	if len(c.codes) > 0 {
		s.UniqueCodes = make([]ErrorCode, 0, len(c.codes))
		for code := range c.codes {
			s.UniqueCodes = append(s.UniqueCodes, code)
		}
		sort.Slice(s.UniqueCodes, func(i, j int) bool {
			return s.UniqueCodes[i].Less(s.UniqueCodes[j])
		})
	}
	return s
}

// EmitSummary asks the emitter to render the closing totals.
func (c *Context) EmitSummary() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.emitter != nil {
		c.emitter.EmitSummary(c.statsLocked())
	}
}

// SetLocator installs the resolver used to turn spans into positions.
func (c *Context) SetLocator(locator SourceLocator) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locator = locator
}

// Locator returns the currently installed resolver, possibly nil.
func (c *Context) Locator() SourceLocator {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.locator
}

// Config returns a copy of the active configuration.
func (c *Context) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.config
}

// Flush drains the emitter.
func (c *Context) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.emitter == nil {
		return nil
	}
	return c.emitter.Flush()
}

// diagnosticHash keys the dedup set on message text, error code and the
// primary span's file and start offset. Labels, children and suggestions
// do not participate: two reports of the same condition at the same place
// are duplicates even if their trimmings differ.
func diagnosticHash(d *Diagnostic) uint64 {
	var h uint64
	combine := func(v uint64) {
		h ^= v + 0x9e3779b9 + (h << 6) + (h >> 2)
	}
	fh := fnv.New64a()
	fh.Write([]byte(d.Message)) //nolint:errcheck // fnv never fails
	combine(fh.Sum64())
	if d.Code.IsValid() {
		combine(d.Code.key())
	}
	if span, ok := d.PrimarySpan(); ok {
		combine(uint64(span.File))
		combine(uint64(span.Start))
	}
	return h
}
