package diag

// Level ranks a diagnostic from informational notes up to internal failures.
// The order is significant: everything at LevelError or above counts as an
// error for exit codes and abort checks.
type Level uint8

const (
	// LevelNote attaches extra context, either standalone or under a parent.
	LevelNote Level = iota
	// LevelHelp suggests a concrete way to address the problem.
	LevelHelp
	// LevelWarning flags suspicious but acceptable input.
	LevelWarning
	// LevelError flags input that cannot be accepted.
	LevelError
	// LevelFatal flags an error after which the session cannot continue.
	LevelFatal
	// LevelBug flags a violated internal invariant.
	LevelBug
)

// String returns the display name used by the human-readable emitters.
func (l Level) String() string {
	switch l {
	case LevelNote:
		return "note"
	case LevelHelp:
		return "help"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal error"
	case LevelBug:
		return "internal compiler error"
	}
	return "unknown"
}

// IsError reports whether the level terminates compilation.
func (l Level) IsError() bool {
	return l >= LevelError
}
