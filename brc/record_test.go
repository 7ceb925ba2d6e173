package brc

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsAdd(t *testing.T) {
	s := newStats(34)
	s.Add(-12)
	s.Add(199)
	s.Add(34)

	assert.Equal(t, Stats{Min: -12, Max: 199, Sum: 255, Count: 4}, s)
}

// Folding a sequence one by one, or in split parts merged in any order,
// must land on the same aggregate.
func TestStatsMergeMatchesAdds(t *testing.T) {
	vals := make([]int32, 10_000)
	for i := range vals {
		vals[i] = int32(rand.Intn(1999) - 999)
	}

	whole := newStats(vals[0])
	for _, v := range vals[1:] {
		whole.Add(v)
	}

	third := len(vals) / 3
	parts := []*Stats{
		foldStats(vals[:third]),
		foldStats(vals[third : 2*third]),
		foldStats(vals[2*third:]),
	}

	leftToRight := *parts[0]
	leftToRight.Merge(parts[1])
	leftToRight.Merge(parts[2])
	assert.Equal(t, whole, leftToRight)

	rightToLeft := *parts[2]
	rightToLeft.Merge(parts[1])
	rightToLeft.Merge(parts[0])
	assert.Equal(t, whole, rightToLeft)
}

func foldStats(vals []int32) *Stats {
	s := newStats(vals[0])
	for _, v := range vals[1:] {
		s.Add(v)
	}
	return &s
}
