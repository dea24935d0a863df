package diag

// Applicability grades how safely a suggestion can be applied without a
// human double-checking it.
type Applicability uint8

const (
	// MachineApplicable suggestions can be applied automatically.
	MachineApplicable Applicability = iota
	// HasPlaceholders suggestions contain holes the user must fill in.
	HasPlaceholders
	// MaybeIncorrect suggestions are plausible but unverified.
	MaybeIncorrect
	// Unspecified is the default when the producer made no claim.
	Unspecified
)

// Suggestion is a structured fix: replace the span with the replacement
// text. Formatters show the message and the replacement; tooling may apply
// MachineApplicable edits directly.
type Suggestion struct {
	Span          Span
	Replacement   string
	Message       string
	Applicability Applicability
}

// SubDiagnostic is an attached note or help line. Only LevelNote and
// LevelHelp belong here; anything stronger deserves its own Diagnostic.
type SubDiagnostic struct {
	Level   Level
	Message string
	Span    Span // optional, zero-File means no location
}

// Diagnostic is the central record every pipeline phase produces and every
// emitter consumes. Message text may use the inline Markdown subset that
// the diagfmt renderers understand (bold, italics, `code`, links). Treat
// values as immutable once emitted.
type Diagnostic struct {
	Level       Level
	Message     string
	Code        ErrorCode // zero value means no code attached
	Spans       MultiSpan
	Children    []SubDiagnostic
	Suggestions []Suggestion
}

// NewDiagnostic builds a bare diagnostic without a code.
func NewDiagnostic(level Level, message string) Diagnostic {
	return Diagnostic{Level: level, Message: message}
}

// HasCode reports whether an error code is attached.
func (d *Diagnostic) HasCode() bool {
	return d.Code.IsValid()
}

// IsError reports whether the diagnostic counts toward the error total.
func (d *Diagnostic) IsError() bool {
	return d.Level.IsError()
}

// IsWarning reports whether the diagnostic is exactly a warning.
func (d *Diagnostic) IsWarning() bool {
	return d.Level == LevelWarning
}

// PrimarySpan returns the primary location, if one was attached.
func (d *Diagnostic) PrimarySpan() (Span, bool) {
	ls, ok := d.Spans.Primary()
	if !ok {
		return Span{}, false
	}
	return ls.Span, true
}

// ErrorGuaranteed witnesses that at least one error-level diagnostic
// reached a Context. Context.EmitError is the only constructor that means
// anything; pass the value upward instead of a bare error when the failure
// has already been reported to the user.
type ErrorGuaranteed struct {
	_ struct{}
}
