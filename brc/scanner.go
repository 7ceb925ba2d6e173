package brc

// MAX_NAME_LEN bounds a station name in bytes and sizes the scratch
// buffer each scan owns.
const MAX_NAME_LEN = 100

// scanSegment walks data[seg.start:seg.end), folding every record into
// t. One pass copies the name into the scratch array while accumulating
// the 31x rolling hash; taking the absolute value afterwards keeps the
// slot math sane when the hash overflows into the sign bit. The cursor
// finishes each iteration on the first byte of the next record, so the
// loop lands exactly on seg.end.
func scanSegment(data []byte, seg segment, t *Table) {
	var buf [MAX_NAME_LEN]byte
	cur := seg.start
	for cur < seg.end {
		var h int32
		n := 0
		for data[cur] != ';' {
			b := data[cur]
			h = h*31 + int32(b)
			buf[n] = b
			n++
			cur++
		}
		cur++ // skip ';'
		if h < 0 {
			h = -h
		}
		v, adv := parseTenths(data[cur:])
		cur += adv
		t.Add(buf[:n], uint32(h), v)
	}
}
