package main

import (
	"testing"

	"flint/internal/diag"
)

func TestParseErrorCode(t *testing.T) {
	tests := []struct {
		input   string
		want    diag.ErrorCode
		wantErr bool
	}{
		{"L1012", diag.NewErrorCode(diag.CatLexer, 1012), false},
		{"l1012", diag.NewErrorCode(diag.CatLexer, 1012), false},
		{"D0001", diag.NewErrorCode(diag.CatDriver, 1), false},
		{" L1021 ", diag.NewErrorCode(diag.CatLexer, 1021), false},
		{"X1000", diag.ErrorCode{}, true},
		{"L", diag.ErrorCode{}, true},
		{"L0", diag.ErrorCode{}, true},
		{"1012", diag.ErrorCode{}, true},
		{"Labc", diag.ErrorCode{}, true},
		{"", diag.ErrorCode{}, true},
	}
	for _, tt := range tests {
		got, err := parseErrorCode(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseErrorCode(%q) expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseErrorCode(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseErrorCode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNearestCodeSuggestsTypo(t *testing.T) {
	if got := nearestCode("L1013"); got == "" {
		t.Error("one-digit typo of a registered code should produce a suggestion")
	}
	if got := nearestCode("Q77"); got != "" {
		t.Errorf("nothing near %q, got suggestion %q", "Q77", got)
	}
}

func TestReadUIMode(t *testing.T) {
	for _, ok := range []string{"", "auto", "on", "off", " ON "} {
		if _, err := readUIMode(ok); err != nil {
			t.Errorf("readUIMode(%q): %v", ok, err)
		}
	}
	if _, err := readUIMode("sometimes"); err == nil {
		t.Error("readUIMode should reject unknown values")
	}
}
