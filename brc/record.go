package brc

// Stats is the running aggregate for one station, in tenths of a degree.
// Sum is wider than the observations so that a billion readings of a
// single station cannot overflow it.
type Stats struct {
	Min   int32
	Max   int32
	Sum   int64
	Count int64
}

func newStats(v int32) Stats {
	return Stats{Min: v, Max: v, Sum: int64(v), Count: 1}
}

// Add folds one observation in.
func (s *Stats) Add(v int32) {
	s.Min = min(s.Min, v)
	s.Max = max(s.Max, v)
	s.Sum += int64(v)
	s.Count++
}

// Merge folds another aggregate of the same station in. Merging is
// commutative and associative, so the order partial tables are reduced
// in does not change the result.
func (s *Stats) Merge(o *Stats) {
	s.Min = min(s.Min, o.Min)
	s.Max = max(s.Max, o.Max)
	s.Sum += o.Sum
	s.Count += o.Count
}
