package diag

import (
	"sort"
	"sync"
)

// ErrorEntry describes one registered error code.
type ErrorEntry struct {
	Code ErrorCode
	// Brief is a short English description, shown by `flint explain` and
	// never translated.
	Brief string
	// ExplanationKey is the catalog key of the long-form explanation.
	ExplanationKey string
}

// Registry maps error codes to their descriptions. Producing packages
// register their codes at init time; the explain command and the emitters
// query at runtime. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[ErrorCode]ErrorEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[ErrorCode]ErrorEntry)}
}

// Register records a code. Re-registering the same code overwrites the
// previous entry, so duplicate init paths stay harmless.
func (r *Registry) Register(code ErrorCode, brief, explanationKey string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[code] = ErrorEntry{Code: code, Brief: brief, ExplanationKey: explanationKey}
}

// Lookup returns the entry for a code.
func (r *Registry) Lookup(code ErrorCode) (ErrorEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[code]
	return entry, ok
}

// AllCodes returns every registered code ordered by category, then number.
func (r *Registry) AllCodes() []ErrorCode {
	r.mu.RLock()
	codes := make([]ErrorCode, 0, len(r.entries))
	for code := range r.entries {
		codes = append(codes, code)
	}
	r.mu.RUnlock()
	sort.Slice(codes, func(i, j int) bool { return codes[i].Less(codes[j]) })
	return codes
}

// IsRegistered reports whether the code is known.
func (r *Registry) IsRegistered(code ErrorCode) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[code]
	return ok
}

// globalRegistry собирает коды всех фаз процесса.
var globalRegistry = NewRegistry()

// GlobalRegistry returns the process-wide registry.
func GlobalRegistry() *Registry {
	return globalRegistry
}

// RegisterError records a code in the process-wide registry.
func RegisterError(code ErrorCode, brief, explanationKey string) {
	globalRegistry.Register(code, brief, explanationKey)
}

// LookupError queries the process-wide registry.
func LookupError(code ErrorCode) (ErrorEntry, bool) {
	return globalRegistry.Lookup(code)
}
