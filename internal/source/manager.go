package source

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// buffer is one arena entry. The Manager owns the content; everything
// else in the compiler refers to it through a BufferID.
type buffer struct {
	content   []byte
	filename  string
	synthetic bool
	parent    BufferID // 0 — нет родителя
	lineIdx   []uint32 // offsets of '\n' bytes, built lazily
	lineBuilt bool
}

// Manager is the source arena: an append-only store of every buffer
// involved in one compilation. Buffers are never removed, so handles
// stay valid for the life of the process. A Manager is not safe for
// concurrent mutation; lex each file with its own Manager.
//
// Every accessor follows a silent-failure contract: an invalid or
// out-of-range handle yields an empty result, never a panic. Callers
// render "nothing" instead of crashing on stale handles.
type Manager struct {
	buffers    []buffer
	expansions []ExpansionInfo
}

// NewManager creates an empty arena.
func NewManager() *Manager {
	return &Manager{buffers: make([]buffer, 0, 4)}
}

// AddBuffer stores content under the given display name and returns a
// fresh handle. The name is usually a file path but the arena does not
// touch the file system.
func (m *Manager) AddBuffer(content []byte, filename string) BufferID {
	return m.add(buffer{content: content, filename: filename})
}

// AddBufferString is AddBuffer for string input.
func (m *Manager) AddBufferString(content, filename string) BufferID {
	return m.AddBuffer([]byte(content), filename)
}

// AddSyntheticBuffer stores derived text (macro output, generated code)
// under a synthetic name and remembers the buffer it was derived from.
func (m *Manager) AddSyntheticBuffer(content []byte, name string, parent BufferID) BufferID {
	return m.add(buffer{content: content, filename: name, synthetic: true, parent: parent})
}

func (m *Manager) add(buf buffer) BufferID {
	m.buffers = append(m.buffers, buf)
	n, err := safecast.Conv[uint32](len(m.buffers))
	if err != nil {
		panic(fmt.Errorf("buffer count overflow: %w", err))
	}
	return BufferID(n)
}

// lookup resolves a handle to its entry, nil when invalid.
func (m *Manager) lookup(id BufferID) *buffer {
	if !id.Valid() || int(id) > len(m.buffers) {
		return nil
	}
	return &m.buffers[id-1]
}

// Source returns the complete content of a buffer, nil for invalid handles.
// The returned slice aliases arena memory and must not be mutated.
func (m *Manager) Source(id BufferID) []byte {
	buf := m.lookup(id)
	if buf == nil {
		return nil
	}
	return buf.content
}

// Slice returns up to length bytes of a buffer starting at offset.
// Out-of-range offsets yield "", overlong lengths are clamped to the
// buffer end.
func (m *Manager) Slice(id BufferID, offset, length uint32) string {
	buf := m.lookup(id)
	if buf == nil {
		return ""
	}
	n := uint32(len(buf.content))
	if offset >= n {
		return ""
	}
	end := offset + length
	if end > n || end < offset {
		end = n
	}
	return string(buf.content[offset:end])
}

// Filename returns the display name of a buffer, "" for invalid handles.
func (m *Manager) Filename(id BufferID) string {
	buf := m.lookup(id)
	if buf == nil {
		return ""
	}
	return buf.filename
}

// LineContent returns one 1-based line without its terminator ("\n" or
// "\r\n"). Unknown lines yield "".
func (m *Manager) LineContent(id BufferID, line uint32) string {
	buf := m.lookup(id)
	if buf == nil || line == 0 {
		return ""
	}
	buf.buildLineIndex()

	start, end, ok := lineBounds(buf.lineIdx, buf.content, line)
	if !ok {
		return ""
	}
	// без \r\n на конце
	if end > start && buf.content[end-1] == '\r' {
		end--
	}
	return string(buf.content[start:end])
}

// Resolve converts a byte offset into a 1-based line/column pair.
// Columns count UTF-8 characters from the line start. Offsets past the
// end of the buffer resolve to the end position.
func (m *Manager) Resolve(id BufferID, offset uint32) LineCol {
	buf := m.lookup(id)
	if buf == nil {
		return LineCol{}
	}
	buf.buildLineIndex()
	return toLineCol(buf.lineIdx, buf.content, offset)
}

// BufferCount reports how many buffers the arena holds.
func (m *Manager) BufferCount() int { return len(m.buffers) }

// IsSynthetic reports whether the buffer holds derived text.
func (m *Manager) IsSynthetic(id BufferID) bool {
	buf := m.lookup(id)
	return buf != nil && buf.synthetic
}

// ParentBuffer returns the buffer this synthetic buffer was derived
// from. ok is false for real files and invalid handles.
func (m *Manager) ParentBuffer(id BufferID) (BufferID, bool) {
	buf := m.lookup(id)
	if buf == nil || !buf.parent.Valid() {
		return 0, false
	}
	return buf.parent, true
}

// FileChain walks parent links and returns the buffer names from the
// innermost buffer outwards. A real file yields a one-element chain.
func (m *Manager) FileChain(id BufferID) []string {
	var chain []string
	seen := make(map[BufferID]bool)
	for cur := id; cur.Valid() && !seen[cur]; {
		buf := m.lookup(cur)
		if buf == nil {
			break
		}
		seen[cur] = true
		chain = append(chain, buf.filename)
		cur = buf.parent
	}
	return chain
}

// AddExpansion records a macro expansion and returns its handle.
func (m *Manager) AddExpansion(info ExpansionInfo) ExpansionID {
	m.expansions = append(m.expansions, info)
	n, err := safecast.Conv[uint32](len(m.expansions))
	if err != nil {
		panic(fmt.Errorf("expansion count overflow: %w", err))
	}
	return ExpansionID(n)
}

// Expansion returns the recorded expansion info for a handle.
func (m *Manager) Expansion(id ExpansionID) (ExpansionInfo, bool) {
	if !id.Valid() || int(id) > len(m.expansions) {
		return ExpansionInfo{}, false
	}
	return m.expansions[id-1], true
}

// String summarizes the arena for debug output.
func (m *Manager) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "source.Manager{%d buffers", len(m.buffers))
	if len(m.expansions) > 0 {
		fmt.Fprintf(&sb, ", %d expansions", len(m.expansions))
	}
	sb.WriteByte('}')
	return sb.String()
}

func (b *buffer) buildLineIndex() {
	if b.lineBuilt {
		return
	}
	b.lineIdx = buildLineIndex(b.content)
	b.lineBuilt = true
}
