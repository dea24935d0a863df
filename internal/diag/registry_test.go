package diag

import "testing"

func TestErrorCodeString(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{NewErrorCode(CatLexer, 1001), "L1001"},
		{NewErrorCode(CatLexer, 1041), "L1041"},
		{NewErrorCode(CatParser, 2001), "P2001"},
		{NewErrorCode(CatSema, 3015), "S3015"},
		{NewErrorCode(CatCodegen, 4001), "C4001"},
		{NewErrorCode(CatDriver, 1), "D0001"},
		{NewErrorCode(Category(9), 7), "?0007"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestErrorCodeValidity(t *testing.T) {
	if (ErrorCode{}).IsValid() {
		t.Error("zero ErrorCode reports valid")
	}
	if !NewErrorCode(CatLexer, 1).IsValid() {
		t.Error("L0001 reports invalid")
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	code := NewErrorCode(CatLexer, 1012)

	if r.IsRegistered(code) {
		t.Fatal("fresh registry claims the code is registered")
	}
	r.Register(code, "unterminated string literal", "lexer.unterminated_string")

	entry, ok := r.Lookup(code)
	if !ok {
		t.Fatal("Lookup() missed a registered code")
	}
	if entry.Brief != "unterminated string literal" {
		t.Errorf("Brief = %q", entry.Brief)
	}
	if entry.ExplanationKey != "lexer.unterminated_string" {
		t.Errorf("ExplanationKey = %q", entry.ExplanationKey)
	}

	// повторная регистрация просто перезаписывает
	r.Register(code, "updated brief", "lexer.unterminated_string")
	entry, _ = r.Lookup(code)
	if entry.Brief != "updated brief" {
		t.Errorf("re-register kept old brief %q", entry.Brief)
	}
	if got := len(r.AllCodes()); got != 1 {
		t.Errorf("AllCodes() has %d entries after re-register, want 1", got)
	}
}

func TestRegistryAllCodesSorted(t *testing.T) {
	r := NewRegistry()
	r.Register(NewErrorCode(CatDriver, 2), "", "")
	r.Register(NewErrorCode(CatLexer, 1021), "", "")
	r.Register(NewErrorCode(CatLexer, 1001), "", "")
	r.Register(NewErrorCode(CatDriver, 1), "", "")

	want := []string{"L1001", "L1021", "D0001", "D0002"}
	codes := r.AllCodes()
	if len(codes) != len(want) {
		t.Fatalf("AllCodes() = %v, want %d entries", codes, len(want))
	}
	for i, code := range codes {
		if code.String() != want[i] {
			t.Errorf("AllCodes()[%d] = %s, want %s", i, code, want[i])
		}
	}
}
