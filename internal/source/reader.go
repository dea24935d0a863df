package source

import (
	"fmt"

	"fortio.org/safecast"
)

// Reader is a byte cursor over one arena buffer with incremental
// line/column tracking. Scanners drive it forward; Location captures an
// immutable position for tokens and errors. A Reader never mutates the
// buffer and never reads past its end.
type Reader struct {
	mgr  *Manager
	id   BufferID
	src  []byte
	off  int
	line uint32
	col  uint32
}

// NewReader positions a cursor at the start of the buffer. Buffers
// larger than 4 GiB cannot be addressed by uint32 offsets and panic
// here; the driver's file-size limit rejects them long before this.
func NewReader(m *Manager, id BufferID) *Reader {
	src := m.Source(id)
	if _, err := safecast.Conv[uint32](len(src)); err != nil {
		panic(fmt.Errorf("buffer %d too large: %w", id, err))
	}
	return &Reader{mgr: m, id: id, src: src, line: 1, col: 1}
}

// Current returns the byte under the cursor.
func (r *Reader) Current() (byte, bool) {
	if r.off >= len(r.src) {
		return 0, false
	}
	return r.src[r.off], true
}

// Peek returns the byte ahead positions past the cursor without moving it.
func (r *Reader) Peek(ahead int) (byte, bool) {
	pos := r.off + ahead
	if pos >= len(r.src) {
		return 0, false
	}
	return r.src[pos], true
}

// IsAtEnd reports whether every byte has been consumed.
func (r *Reader) IsAtEnd() bool { return r.off >= len(r.src) }

// Advance consumes one byte and updates the position. "\r\n" counts as
// a single newline, tracked when the '\n' is consumed; a lone '\r'
// (old Mac endings) is a newline of its own. Columns advance once per
// UTF-8 character: continuation bytes do not move the column.
func (r *Reader) Advance() {
	if r.off >= len(r.src) {
		return
	}
	b := r.src[r.off]
	switch {
	case b == '\n':
		r.line++
		r.col = 1
	case b == '\r':
		if r.off+1 >= len(r.src) || r.src[r.off+1] != '\n' {
			r.line++
			r.col = 1
		}
		// иначе ждём \n — пара учитывается один раз
	case !IsContinuationByte(b):
		r.col++
	}
	r.off++
}

// AdvanceN consumes up to n bytes.
func (r *Reader) AdvanceN(n int) {
	for i := 0; i < n && r.off < len(r.src); i++ {
		r.Advance()
	}
}

// Match consumes the current byte when it equals b.
func (r *Reader) Match(b byte) bool {
	if cur, ok := r.Current(); ok && cur == b {
		r.Advance()
		return true
	}
	return false
}

// MatchSeq consumes seq when every byte matches in order; on any
// mismatch nothing is consumed.
func (r *Reader) MatchSeq(seq string) bool {
	for i := 0; i < len(seq); i++ {
		if b, ok := r.Peek(i); !ok || b != seq[i] {
			return false
		}
	}
	r.AdvanceN(len(seq))
	return true
}

// Offset returns the 0-based byte offset of the cursor.
func (r *Reader) Offset() int { return r.off }

// Buffer returns the handle of the buffer being read.
func (r *Reader) Buffer() BufferID { return r.id }

// Manager returns the arena the buffer lives in.
func (r *Reader) Manager() *Manager { return r.mgr }

// Location captures the current position as an immutable value.
func (r *Reader) Location() Location {
	return Location{
		Buffer: r.id,
		Line:   r.line,
		Column: r.col,
		Offset: uint32(r.off),
	}
}

// SliceFrom converts a start offset into the (offset, length) pair a
// token stores. Lengths beyond 65535 clamp to the uint16 maximum; the
// scanner reports the overlong token separately.
func (r *Reader) SliceFrom(start int) (offset uint32, length uint16) {
	offset = uint32(start)
	if r.off <= start {
		return offset, 0
	}
	n := r.off - start
	if n > 0xFFFF {
		n = 0xFFFF
	}
	return offset, uint16(n)
}

// TextFrom returns the bytes between start and the cursor as a string.
func (r *Reader) TextFrom(start int) string {
	if start >= len(r.src) || start > r.off {
		return ""
	}
	return string(r.src[start:r.off])
}
