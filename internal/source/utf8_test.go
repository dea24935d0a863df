package source

import "testing"

func TestCharLen(t *testing.T) {
	tests := []struct {
		lead byte
		want int
	}{
		{'a', 1},
		{0x7F, 1},
		{0xC2, 2},
		{0xDF, 2},
		{0xE0, 3},
		{0xEF, 3},
		{0xF0, 4},
		{0xF4, 4},
		{0x80, 0}, // continuation byte
		{0xC0, 0}, // overlong lead
		{0xC1, 0},
		{0xF5, 0}, // за пределами Unicode
		{0xFF, 0},
	}
	for _, tt := range tests {
		if got := CharLen(tt.lead); got != tt.want {
			t.Errorf("CharLen(%#x) = %d, want %d", tt.lead, got, tt.want)
		}
	}
}

func TestIdentByteClasses(t *testing.T) {
	for _, b := range []byte{'a', 'z', 'A', 'Z', '_'} {
		if !IsASCIIIdentStart(b) {
			t.Errorf("IsASCIIIdentStart(%q) = false", b)
		}
	}
	for _, b := range []byte{'0', '9', ' ', '-', 0xC2} {
		if IsASCIIIdentStart(b) {
			t.Errorf("IsASCIIIdentStart(%#x) = true", b)
		}
	}
	for _, b := range []byte{'a', '_', '0', '9'} {
		if !IsASCIIIdentContinue(b) {
			t.Errorf("IsASCIIIdentContinue(%q) = false", b)
		}
	}

	if !IsUTF8LeadByte(0xC2) || !IsUTF8LeadByte(0xF4) {
		t.Error("0xC2 and 0xF4 are valid lead bytes")
	}
	if IsUTF8LeadByte(0xC1) || IsUTF8LeadByte(0xF5) || IsUTF8LeadByte('a') {
		t.Error("0xC1, 0xF5 and ASCII are not lead bytes")
	}

	if !IsContinuationByte(0x80) || !IsContinuationByte(0xBF) {
		t.Error("0x80..0xBF are continuation bytes")
	}
	if IsContinuationByte(0x7F) || IsContinuationByte(0xC0) {
		t.Error("0x7F and 0xC0 are not continuation bytes")
	}
}
