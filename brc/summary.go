package brc

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// entry is one station ready for display.
type entry struct {
	name  string
	stats Stats
}

// writeSummary renders the single output line: stations sorted by name,
// each formatted as name=min/mean/max with one decimal digit, joined by
// ", " inside braces. No stations renders as "{}".
func writeSummary(w io.Writer, entries []entry) error {
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = fmt.Sprintf("%s=%.1f/%.1f/%.1f",
			e.name,
			float64(e.stats.Min)/10,
			float64(meanTenths(&e.stats))/10,
			float64(e.stats.Max)/10,
		)
	}
	if _, err := fmt.Fprintf(w, "{%s}\n", strings.Join(parts, ", ")); err != nil {
		return fmt.Errorf("unable to write summary: %w", err)
	}
	return nil
}

// meanTenths rounds the tenths-scaled mean to the nearest tenth, ties
// going toward positive infinity: a sum of 15 over 2 readings is 8
// tenths, a sum of -15 over 2 is -7.
func meanTenths(s *Stats) int64 {
	return int64(math.Floor(float64(s.Sum)/float64(s.Count) + 0.5))
}
