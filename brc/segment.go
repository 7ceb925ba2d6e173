package brc

import "bytes"

// Files at or under SMALL_FILE_SIZE bytes are scanned by a single
// worker; below that the fan-out overhead beats the win.
const SMALL_FILE_SIZE = 1_000_000

// segment is a half-open byte range of the mapped file that holds only
// whole records.
type segment struct {
	start int
	end   int
}

// splitSegments cuts data into at most n line-aligned segments of
// roughly equal size, the last absorbing the remainder. Every segment
// start is the first byte after a terminator (byte 0 counts), so a
// record whose '\n' lands exactly on a raw boundary still belongs to
// exactly one segment.
func splitSegments(data []byte, n int) []segment {
	if len(data) == 0 {
		return nil
	}
	size := len(data) / n
	if size == 0 {
		n = 1
	}
	segs := make([]segment, 0, n)
	start := 0
	for i := 1; i < n; i++ {
		next := alignStart(data, i*size)
		segs = append(segs, segment{start: start, end: next})
		start = next
	}
	return append(segs, segment{start: start, end: len(data)})
}

// alignStart moves pos forward to the nearest record start at or after
// it. A position directly after a '\n' already is one.
func alignStart(data []byte, pos int) int {
	if pos == 0 || data[pos-1] == '\n' {
		return pos
	}
	if i := bytes.IndexByte(data[pos:], '\n'); i >= 0 {
		return pos + i + 1
	}
	return len(data)
}
