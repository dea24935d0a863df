package source

// Byte-level UTF-8 classification shared by the Reader and the scanners.
// The lexer works on raw bytes and only needs to know sequence shapes,
// never code-point values.

// IsASCIIIdentStart reports whether b can start an ASCII identifier.
func IsASCIIIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsASCIIIdentContinue reports whether b can continue an ASCII identifier.
func IsASCIIIdentContinue(b byte) bool {
	return IsASCIIIdentStart(b) || (b >= '0' && b <= '9')
}

// IsUTF8LeadByte reports whether b starts a well-formed multi-byte
// sequence. 0xC0/0xC1 (overlong) and 0xF5+ (out of range) are excluded.
func IsUTF8LeadByte(b byte) bool {
	return b >= 0xC2 && b <= 0xF4
}

// IsContinuationByte reports whether b is a UTF-8 continuation byte.
func IsContinuationByte(b byte) bool {
	return b&0xC0 == 0x80
}

// CharLen returns the byte length of the sequence started by lead,
// or 0 when lead cannot start a sequence.
func CharLen(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead >= 0xC2 && lead <= 0xDF:
		return 2
	case lead >= 0xE0 && lead <= 0xEF:
		return 3
	case lead >= 0xF0 && lead <= 0xF4:
		return 4
	default:
		return 0
	}
}
