package source

import "testing"

func TestAddBufferAssignsSequentialHandles(t *testing.T) {
	m := NewManager()

	a := m.AddBufferString("let x = 1;", "a.fl")
	b := m.AddBufferString("fn main() {}", "b.fl")

	if a != 1 || b != 2 {
		t.Fatalf("expected handles 1 and 2, got %d and %d", a, b)
	}
	if m.BufferCount() != 2 {
		t.Fatalf("expected 2 buffers, got %d", m.BufferCount())
	}
	if got := string(m.Source(a)); got != "let x = 1;" {
		t.Errorf("Source(a) = %q", got)
	}
	if got := m.Filename(b); got != "b.fl" {
		t.Errorf("Filename(b) = %q", got)
	}
}

func TestInvalidHandlesYieldEmptyResults(t *testing.T) {
	m := NewManager()
	m.AddBufferString("hello", "h.fl")

	for _, id := range []BufferID{0, 2, 99} {
		if src := m.Source(id); src != nil {
			t.Errorf("Source(%d) = %q, want nil", id, src)
		}
		if s := m.Slice(id, 0, 5); s != "" {
			t.Errorf("Slice(%d) = %q, want empty", id, s)
		}
		if name := m.Filename(id); name != "" {
			t.Errorf("Filename(%d) = %q, want empty", id, name)
		}
		if line := m.LineContent(id, 1); line != "" {
			t.Errorf("LineContent(%d) = %q, want empty", id, line)
		}
	}
}

func TestSliceClampsToBufferEnd(t *testing.T) {
	m := NewManager()
	id := m.AddBufferString("abcdef", "s.fl")

	tests := []struct {
		offset, length uint32
		want           string
	}{
		{0, 3, "abc"},
		{3, 3, "def"},
		{4, 100, "ef"},
		{6, 1, ""},
		{100, 1, ""},
	}
	for _, tt := range tests {
		if got := m.Slice(id, tt.offset, tt.length); got != tt.want {
			t.Errorf("Slice(%d, %d) = %q, want %q", tt.offset, tt.length, got, tt.want)
		}
	}
}

func TestLineContentStripsTerminators(t *testing.T) {
	m := NewManager()
	id := m.AddBufferString("first\nsecond\r\nthird", "l.fl")

	tests := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
		{0, ""},
	}
	for _, tt := range tests {
		if got := m.LineContent(id, tt.line); got != tt.want {
			t.Errorf("LineContent(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestLineContentLastLineWithoutNewline(t *testing.T) {
	m := NewManager()
	id := m.AddBufferString("only line", "o.fl")

	if got := m.LineContent(id, 1); got != "only line" {
		t.Errorf("LineContent(1) = %q", got)
	}
	if got := m.LineContent(id, 2); got != "" {
		t.Errorf("LineContent(2) = %q, want empty", got)
	}
}

func TestResolveCountsUTF8Columns(t *testing.T) {
	m := NewManager()
	// "привет" — 6 рун, 12 байт
	id := m.AddBufferString("привет x\nsecond", "u.fl")

	tests := []struct {
		offset uint32
		want   LineCol
	}{
		{0, LineCol{1, 1}},
		{12, LineCol{1, 7}},  // пробел после "привет"
		{13, LineCol{1, 8}},  // 'x'
		{15, LineCol{2, 1}},  // 's'
		{999, LineCol{2, 7}}, // конец файла
	}
	for _, tt := range tests {
		if got := m.Resolve(id, tt.offset); got != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.offset, got, tt.want)
		}
	}
}

func TestSyntheticBufferParentChain(t *testing.T) {
	m := NewManager()
	root := m.AddBufferString("macro_call!()", "main.fl")
	mid := m.AddSyntheticBuffer([]byte("expanded once"), "<expansion:1>", root)
	leaf := m.AddSyntheticBuffer([]byte("expanded twice"), "<expansion:2>", mid)

	if m.IsSynthetic(root) {
		t.Error("root buffer must not be synthetic")
	}
	if !m.IsSynthetic(leaf) {
		t.Error("leaf buffer must be synthetic")
	}

	if parent, ok := m.ParentBuffer(leaf); !ok || parent != mid {
		t.Errorf("ParentBuffer(leaf) = %d, %v", parent, ok)
	}
	if _, ok := m.ParentBuffer(root); ok {
		t.Error("root buffer must not report a parent")
	}

	chain := m.FileChain(leaf)
	want := []string{"<expansion:2>", "<expansion:1>", "main.fl"}
	if len(chain) != len(want) {
		t.Fatalf("FileChain = %v, want %v", chain, want)
	}
	for i := range want {
		if chain[i] != want[i] {
			t.Errorf("chain[%d] = %q, want %q", i, chain[i], want[i])
		}
	}
}

func TestFileChainOnInvalidHandle(t *testing.T) {
	m := NewManager()
	if chain := m.FileChain(0); len(chain) != 0 {
		t.Errorf("FileChain(0) = %v, want empty", chain)
	}
}

func TestExpansionRegistry(t *testing.T) {
	m := NewManager()
	buf := m.AddBufferString("x", "e.fl")

	if _, ok := m.Expansion(0); ok {
		t.Error("Expansion(0) must report not found")
	}
	if _, ok := m.Expansion(1); ok {
		t.Error("Expansion on empty registry must report not found")
	}

	id := m.AddExpansion(ExpansionInfo{
		CallSiteBuffer: buf,
		CallSiteOffset: 0,
		CallSiteLine:   1,
		CallSiteColumn: 1,
		MacroDefBuffer: buf,
	})
	if !id.Valid() {
		t.Fatal("AddExpansion returned invalid handle")
	}

	info, ok := m.Expansion(id)
	if !ok {
		t.Fatal("Expansion lookup failed")
	}
	if info.CallSiteBuffer != buf || info.CallSiteLine != 1 {
		t.Errorf("unexpected expansion info: %+v", info)
	}
	if info.Parent.Valid() {
		t.Error("outermost expansion must have invalid parent")
	}
}
