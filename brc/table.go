package brc

import "bytes"

// DEFAULT_TABLE_SIZE leaves a wide margin over the distinct stations a
// realistic input holds. The table never grows, and probing a table with
// no free slots does not terminate, so the margin is the safety story.
const DEFAULT_TABLE_SIZE = 100_000

// Table maps station names to their running Stats with fixed-capacity,
// linearly probed open addressing. A record's identity is its cached
// hash plus its raw name bytes; two names that collide on the hash still
// get separate records.
type Table struct {
	slots []slot
	size  int
}

type slot struct {
	hash  uint32
	name  []byte
	stats Stats
}

func NewTable(capacity int) *Table {
	return &Table{slots: make([]slot, capacity)}
}

// Add folds one observation into the record for name, creating the
// record in the first free probed slot on first sighting. name may point
// into a caller-owned scratch buffer; the table copies it on insert and
// never aliases caller memory.
func (t *Table) Add(name []byte, hash uint32, v int32) {
	pos := int(hash % uint32(len(t.slots)))
	for {
		s := &t.slots[pos]
		if s.name == nil {
			s.hash = hash
			s.name = append([]byte(nil), name...)
			s.stats = newStats(v)
			t.size++
			return
		}
		if s.hash == hash && bytes.Equal(s.name, name) {
			s.stats.Add(v)
			return
		}
		pos++
		if pos == len(t.slots) {
			pos = 0
		}
	}
}

// MergeFrom folds every record of other into t. Name slices of stations
// new to t move over without copying, so other must not be used again.
func (t *Table) MergeFrom(other *Table) {
	for i := range other.slots {
		if o := &other.slots[i]; o.name != nil {
			t.mergeSlot(o)
		}
	}
}

func (t *Table) mergeSlot(o *slot) {
	pos := int(o.hash % uint32(len(t.slots)))
	for {
		s := &t.slots[pos]
		if s.name == nil {
			s.hash = o.hash
			s.name = o.name
			s.stats = o.stats
			t.size++
			return
		}
		if s.hash == o.hash && bytes.Equal(s.name, o.name) {
			s.stats.Merge(&o.stats)
			return
		}
		pos++
		if pos == len(t.slots) {
			pos = 0
		}
	}
}

// Traverse calls f for every record in ascending slot order, which is
// unrelated to name order.
func (t *Table) Traverse(f func(name []byte, s *Stats)) {
	for i := range t.slots {
		if t.slots[i].name != nil {
			f(t.slots[i].name, &t.slots[i].stats)
		}
	}
}

// Len reports the number of distinct stations.
func (t *Table) Len() int {
	return t.size
}
