package source

import "unicode/utf8"

// buildLineIndex collects the offsets of every '\n' in content. Line N
// (1-based) spans from just past the (N-1)-th entry to the N-th entry.
func buildLineIndex(content []byte) []uint32 {
	var out []uint32
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

// lineBounds returns the [start, end) byte range of a 1-based line,
// end excluding the '\n' itself. ok is false when the line does not exist.
func lineBounds(lineIdx []uint32, content []byte, line uint32) (start, end uint32, ok bool) {
	nLines := uint32(len(lineIdx)) + 1
	if line > nLines {
		return 0, 0, false
	}
	if line > 1 {
		start = lineIdx[line-2] + 1
	}
	if int(line-1) < len(lineIdx) {
		end = lineIdx[line-1]
	} else {
		end = uint32(len(content))
	}
	if start > end {
		return 0, 0, false
	}
	return start, end, true
}

// toLineCol converts a byte offset into a 1-based line/column pair via
// binary search over the newline index. Columns count UTF-8 characters
// from the line start, so multi-byte identifiers report honest columns.
func toLineCol(lineIdx []uint32, content []byte, off uint32) LineCol {
	if off > uint32(len(content)) {
		off = uint32(len(content))
	}

	// бинпоиск: наибольший lineIdx[i] < off
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] < off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	line := hi // индекс последнего \n перед off, -1 если его нет

	var startOff uint32
	if line >= 0 {
		startOff = lineIdx[line] + 1
	}

	col := uint32(utf8.RuneCount(content[startOff:off])) + 1
	return LineCol{Line: uint32(line + 2), Col: col}
}
