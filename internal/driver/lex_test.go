package driver_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"flint/internal/diag"
	"flint/internal/diag/i18n"
	"flint/internal/driver"
	"flint/internal/lexer"
	"flint/internal/token"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunOnSourceDefaults(t *testing.T) {
	res, err := driver.RunOnSource(context.Background(), "let x = 1;", "", driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Path != "<stdin>" {
		t.Errorf("path = %q, want <stdin>", res.Path)
	}
	if res.Manager.Filename(res.Buffer) != "<stdin>" {
		t.Errorf("arena filename = %q, want <stdin>", res.Manager.Filename(res.Buffer))
	}
	kinds := []token.Kind{token.KwLet, token.Ident, token.OpAssign, token.LitInt, token.DelimSemicolon, token.EOF}
	if len(res.Tokens) != len(kinds) {
		t.Fatalf("got %d tokens, want %d", len(res.Tokens), len(kinds))
	}
	for i, want := range kinds {
		if res.Tokens[i].Kind != want {
			t.Errorf("token %d = %v, want %v", i, res.Tokens[i].Kind, want)
		}
	}
	if res.HasErrors {
		t.Errorf("unexpected errors %+v", res.Errors)
	}
}

func TestRunOnSourceTooLarge(t *testing.T) {
	opts := driver.Options{MaxFileSize: 4}
	_, err := driver.RunOnSource(context.Background(), "let x = 1;", "big.fl", opts)
	if !errors.Is(err, driver.ErrFileTooLarge) {
		t.Fatalf("err = %v, want ErrFileTooLarge", err)
	}
}

func TestRunOnFileNotFound(t *testing.T) {
	_, err := driver.RunOnFile(context.Background(), filepath.Join(t.TempDir(), "missing.fl"), driver.Options{})
	if !errors.Is(err, driver.ErrFileNotFound) {
		t.Fatalf("err = %v, want ErrFileNotFound", err)
	}
}

func TestRunOnFileTooLarge(t *testing.T) {
	path := writeTestFile(t, "big.fl", "let x = 1;")
	_, err := driver.RunOnFile(context.Background(), path, driver.Options{MaxFileSize: 4})
	if !errors.Is(err, driver.ErrFileTooLarge) {
		t.Fatalf("err = %v, want ErrFileTooLarge", err)
	}
}

func TestRunOnFileDirectory(t *testing.T) {
	_, err := driver.RunOnFile(context.Background(), t.TempDir(), driver.Options{})
	if !errors.Is(err, driver.ErrOpenFailed) {
		t.Fatalf("err = %v, want ErrOpenFailed", err)
	}
}

func TestRunOnFileLexesContent(t *testing.T) {
	path := writeTestFile(t, "main.fl", "fn main() {}\n")
	res, err := driver.RunOnFile(context.Background(), path, driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if res.Path != path {
		t.Errorf("path = %q, want %q", res.Path, path)
	}
	if res.HasErrors {
		t.Errorf("unexpected errors %+v", res.Errors)
	}
	if res.Tokens[0].Kind != token.KwFn {
		t.Errorf("first token = %v, want KwFn", res.Tokens[0].Kind)
	}
}

func TestRunOnFilePreservesTrivia(t *testing.T) {
	path := writeTestFile(t, "t.fl", "  let x // c\n")
	res, err := driver.RunOnFile(context.Background(), path, driver.Options{PreserveTrivia: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tokens[0].Leading) == 0 {
		t.Error("trivia mode must attach leading trivia")
	}
}

func TestLexResultCarriesErrors(t *testing.T) {
	res, err := driver.RunOnSource(context.Background(), "let s = \"oops", "bad.fl", driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.HasErrors {
		t.Fatal("expected in-band lexer errors")
	}
	if len(res.Errors) != 1 || res.Errors[0].Code != lexer.UnterminatedString {
		t.Fatalf("errors = %+v, want one UnterminatedString", res.Errors)
	}
}

type countingEmitter struct {
	emitted int
}

func (e *countingEmitter) Emit(*diag.Diagnostic, diag.SourceLocator) { e.emitted++ }
func (e *countingEmitter) EmitSummary(diag.Stats)                    {}
func (e *countingEmitter) Flush() error                              { return nil }

func TestReportBridgesToDiagnostics(t *testing.T) {
	res, err := driver.RunOnSource(context.Background(), "0x 0b", "bad.fl", driver.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Errors) != 2 {
		t.Fatalf("errors = %+v, want two", res.Errors)
	}

	emitter := &countingEmitter{}
	dcx := diag.NewContext(emitter, diag.DefaultConfig())
	res.Report(dcx, i18n.NewTranslator())

	if dcx.ErrorCount() != 2 || emitter.emitted != 2 {
		t.Errorf("counted %d, emitted %d, want 2/2", dcx.ErrorCount(), emitter.emitted)
	}
	if dcx.Locator() == nil {
		t.Error("Report must install the arena locator")
	}
}

func TestDriverCodesRegistered(t *testing.T) {
	for _, code := range []uint16{1, 2, 3} {
		ec := diag.NewErrorCode(diag.CatDriver, code)
		entry, ok := diag.LookupError(ec)
		if !ok {
			t.Errorf("%s not registered", ec)
			continue
		}
		if entry.Brief == "" || entry.ExplanationKey == "" {
			t.Errorf("%s entry incomplete: %+v", ec, entry)
		}
	}
}
