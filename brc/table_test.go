package brc

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// testHash mirrors the scan hash so table tests probe realistic slots.
func testHash(name string) uint32 {
	var h int32
	for _, b := range []byte(name) {
		h = h*31 + int32(b)
	}
	if h < 0 {
		h = -h
	}
	return uint32(h)
}

func TestTableAddTraverse(t *testing.T) {
	tbl := NewTable(64)
	tbl.Add([]byte("Hamburg"), testHash("Hamburg"), 120)
	tbl.Add([]byte("Berlin"), testHash("Berlin"), 82)
	tbl.Add([]byte("Hamburg"), testHash("Hamburg"), 144)

	assert.Equal(t, 2, tbl.Len())

	seen := make(map[string]Stats)
	tbl.Traverse(func(name []byte, s *Stats) {
		seen[string(name)] = *s
	})
	assert.Equal(t, Stats{Min: 120, Max: 144, Sum: 264, Count: 2}, seen["Hamburg"])
	assert.Equal(t, Stats{Min: 82, Max: 82, Sum: 82, Count: 1}, seen["Berlin"])
}

// The scan reuses one scratch buffer for every name, so the table must
// own its copies rather than alias caller memory.
func TestTableCopiesScratchNames(t *testing.T) {
	tbl := NewTable(16)
	buf := []byte("Aarhus")
	tbl.Add(buf, testHash("Aarhus"), 10)

	copy(buf, []byte("Zagreb"))
	tbl.Add(buf, testHash("Zagreb"), 20)

	seen := make(map[string]Stats)
	tbl.Traverse(func(name []byte, s *Stats) {
		seen[string(name)] = *s
	})
	assert.Equal(t, 2, tbl.Len())
	assert.Contains(t, seen, "Aarhus")
	assert.Contains(t, seen, "Zagreb")
}

// Names that agree on the hash still get their own records, and probing
// wraps past the last slot.
func TestTableCollisionsAndWrap(t *testing.T) {
	tbl := NewTable(4)
	tbl.Add([]byte("aa"), 3, 10)
	tbl.Add([]byte("bb"), 3, 20)
	tbl.Add([]byte("cc"), 7, 30)

	assert.Equal(t, 3, tbl.Len())

	seen := make(map[string]int32)
	tbl.Traverse(func(name []byte, s *Stats) {
		seen[string(name)] = s.Min
	})
	assert.Equal(t, map[string]int32{"aa": 10, "bb": 20, "cc": 30}, seen)

	tbl.Add([]byte("bb"), 3, 5)
	tbl.Traverse(func(name []byte, s *Stats) {
		if string(name) == "bb" {
			assert.Equal(t, Stats{Min: 5, Max: 20, Sum: 25, Count: 2}, *s)
		}
	})
}

func TestTableMergeFrom(t *testing.T) {
	left := NewTable(64)
	left.Add([]byte("Oslo"), testHash("Oslo"), -10)
	left.Add([]byte("Dakar"), testHash("Dakar"), 310)

	right := NewTable(64)
	right.Add([]byte("Oslo"), testHash("Oslo"), -52)
	right.Add([]byte("Perth"), testHash("Perth"), 188)

	left.MergeFrom(right)
	assert.Equal(t, 3, left.Len())

	seen := make(map[string]Stats)
	left.Traverse(func(name []byte, s *Stats) {
		seen[string(name)] = *s
	})
	assert.Equal(t, Stats{Min: -52, Max: -10, Sum: -62, Count: 2}, seen["Oslo"])
	assert.Equal(t, Stats{Min: 310, Max: 310, Sum: 310, Count: 1}, seen["Dakar"])
	assert.Equal(t, Stats{Min: 188, Max: 188, Sum: 188, Count: 1}, seen["Perth"])
}

// Random binary names stress probing well past the pretty-name cases;
// re-adding every name must hit the existing record, never a new slot.
func TestTableRandomNames(t *testing.T) {
	tbl := NewTable(DEFAULT_TABLE_SIZE)

	names := make([][]byte, 1_000)
	for i := range names {
		name := make([]byte, 1+rand.Intn(MAX_NAME_LEN))
		rand.Read(name)
		names[i] = name
		tbl.Add(name, testHash(string(name)), int32(i%1999-999))
	}
	require.LessOrEqual(t, tbl.Len(), len(names))

	before := tbl.Len()
	for i, name := range names {
		tbl.Add(name, testHash(string(name)), int32(i%1999-999))
	}
	assert.Equal(t, before, tbl.Len())

	var total int64
	tbl.Traverse(func(_ []byte, s *Stats) {
		total += s.Count
	})
	assert.Equal(t, int64(2*len(names)), total)
}

func TestTableMergeAssociation(t *testing.T) {
	parts := make([]*Table, 3)
	for p := range parts {
		parts[p] = NewTable(256)
		for i := 0; i < 1_000; i++ {
			name := fmt.Sprintf("station_%d", (p*37+i)%50)
			parts[p].Add([]byte(name), testHash(name), int32(i%1999-999))
		}
	}

	leftFirst := NewTable(256)
	leftFirst.MergeFrom(copyTable(parts[0]))
	leftFirst.MergeFrom(copyTable(parts[1]))
	leftFirst.MergeFrom(copyTable(parts[2]))

	rightFirst := NewTable(256)
	rightFirst.MergeFrom(copyTable(parts[2]))
	rightFirst.MergeFrom(copyTable(parts[1]))
	rightFirst.MergeFrom(copyTable(parts[0]))

	assert.Equal(t, collectStats(leftFirst), collectStats(rightFirst))
}

// copyTable clones slots so MergeFrom's move semantics cannot alias the
// original between merge orders.
func copyTable(src *Table) *Table {
	out := NewTable(len(src.slots))
	out.size = src.size
	for i, s := range src.slots {
		if s.name != nil {
			out.slots[i] = slot{hash: s.hash, name: append([]byte(nil), s.name...), stats: s.stats}
		}
	}
	return out
}

func BenchmarkTableAdd(b *testing.B) {
	names := make([][]byte, 512)
	hashes := make([]uint32, 512)
	for i := range names {
		names[i] = []byte(fmt.Sprintf("station_%d", i))
		hashes[i] = testHash(string(names[i]))
	}
	tbl := NewTable(DEFAULT_TABLE_SIZE)
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		i := n % len(names)
		tbl.Add(names[i], hashes[i], int32(n%1999-999))
	}
}
