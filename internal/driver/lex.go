package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"flint/internal/diag"
	"flint/internal/diag/i18n"
	"flint/internal/lexer"
	"flint/internal/source"
	"flint/internal/token"
	"flint/internal/trace"
)

// Driver failure codes, category D. These cover failures that make no
// token stream possible at all; anything the scanners can recover from
// surfaces as an in-band lexer error instead.
const (
	codeFileNotFound uint16 = 1
	codeFileTooLarge uint16 = 2
	codeOpenFailed   uint16 = 3
)

// Typed failures of the lexer phase. Callers branch with errors.Is; the
// wrapped message carries the concrete path and limit.
var (
	// ErrFileNotFound: the input path does not exist (D0001).
	ErrFileNotFound = errors.New("file not found")
	// ErrFileTooLarge: the input exceeds Options.MaxFileSize (D0002).
	ErrFileTooLarge = errors.New("file too large")
	// ErrOpenFailed: the file exists but could not be read (D0003).
	ErrOpenFailed = errors.New("failed to open file")
)

func init() {
	diag.RegisterError(diag.NewErrorCode(diag.CatDriver, codeFileNotFound),
		"input file not found", "driver.file_not_found.explanation")
	diag.RegisterError(diag.NewErrorCode(diag.CatDriver, codeFileTooLarge),
		"input file exceeds the size limit", "driver.file_too_large.explanation")
	diag.RegisterError(diag.NewErrorCode(diag.CatDriver, codeOpenFailed),
		"input file could not be opened", "driver.open_failed.explanation")
}

// DefaultMaxFileSize bounds input files to 16 MiB. Token offsets are
// 32-bit, so the hard ceiling is 4 GiB; the default stays far below it
// to keep accidental binary inputs from tying up the scanner.
const DefaultMaxFileSize = 16 << 20

// StdinName is the display name used when lexing source that did not
// come from a file.
const StdinName = "<stdin>"

// Options tunes one lexer-phase run.
type Options struct {
	// PreserveTrivia selects the trivia-preserving scan mode.
	PreserveTrivia bool
	// MaxFileSize caps the input size in bytes; zero means
	// DefaultMaxFileSize.
	MaxFileSize int64
	// Cache, when set, short-circuits re-lexing of unchanged clean files.
	Cache *TokenCache
}

func (o Options) maxFileSize() int64 {
	if o.MaxFileSize <= 0 {
		return DefaultMaxFileSize
	}
	return o.MaxFileSize
}

// LexResult is everything one lexed buffer produces. Tokens stay valid
// for as long as Manager lives.
type LexResult struct {
	Manager   *source.Manager
	Buffer    source.BufferID
	Path      string
	Tokens    []token.Token
	Errors    []lexer.Error
	HasErrors bool
	// FromCache marks results rebuilt from the token cache.
	FromCache bool
}

// RunOnFile loads path into a fresh arena and lexes it. The returned
// error is one of the typed driver failures; in-band lexer errors land
// in the result instead.
func RunOnFile(ctx context.Context, path string, opts Options) (*LexResult, error) {
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeBuffer, "buffer:"+path, trace.CurrentSpan(ctx).SpanID)
	defer span.End("")

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenFailed, path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrOpenFailed, path)
	}
	if info.Size() > opts.maxFileSize() {
		return nil, fmt.Errorf("%w: %s (%d bytes, max %d bytes)",
			ErrFileTooLarge, path, info.Size(), opts.maxFileSize())
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenFailed, path, err)
	}

	if opts.Cache != nil {
		if res, ok := opts.Cache.Lookup(content, path, opts.PreserveTrivia); ok {
			span.WithExtra("cache", "hit")
			return res, nil
		}
	}

	res := runLexer(content, path, opts)
	if opts.Cache != nil {
		opts.Cache.Store(content, opts.PreserveTrivia, res)
	}
	return res, nil
}

// RunOnSource lexes in-memory text under a virtual name, StdinName when
// empty. The size limit applies the same as for files.
func RunOnSource(ctx context.Context, text, virtualName string, opts Options) (*LexResult, error) {
	if virtualName == "" {
		virtualName = StdinName
	}
	tr := trace.FromContext(ctx)
	span := trace.Begin(tr, trace.ScopeBuffer, "buffer:"+virtualName, trace.CurrentSpan(ctx).SpanID)
	defer span.End("")

	if int64(len(text)) > opts.maxFileSize() {
		return nil, fmt.Errorf("%w: %s (%d bytes, max %d bytes)",
			ErrFileTooLarge, virtualName, len(text), opts.maxFileSize())
	}
	return runLexer([]byte(text), virtualName, opts), nil
}

func runLexer(content []byte, name string, opts Options) *LexResult {
	m := source.NewManager()
	id := m.AddBuffer(content, name)

	lx := lexer.New(m, id)
	var tokens []token.Token
	if opts.PreserveTrivia {
		tokens = lx.TokenizeWithTrivia()
	} else {
		tokens = lx.Tokenize()
	}

	return &LexResult{
		Manager:   m,
		Buffer:    id,
		Path:      name,
		Tokens:    tokens,
		Errors:    lx.Errors(),
		HasErrors: lx.HasErrors(),
	}
}

// Report pushes the result's lexer errors into the diagnostics context
// with translated labels, installing the arena-backed locator.
func (r *LexResult) Report(dcx *diag.Context, tr *i18n.Translator) {
	if len(r.Errors) == 0 {
		return
	}
	lexer.EmitErrors(dcx, r.Errors, r.Manager, tr)
}
