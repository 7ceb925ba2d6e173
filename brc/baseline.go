package brc

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/exp/maps"
)

// SolveBaseline is the readable reference: buffered line scanning into a
// plain Go map, one goroutine, no manual chunking. Every other solver
// has to match its output byte for byte.
func SolveBaseline(path string, w io.Writer, opts ...Option) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open file: %w", err)
	}
	defer f.Close()

	stats := make(map[string]*Stats)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name, v := parseLine(scanner.Bytes())
		if s, ok := stats[name]; ok {
			s.Add(v)
		} else {
			ns := newStats(v)
			stats[name] = &ns
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("unable to scan file: %w", err)
	}

	entries := make([]entry, 0, len(stats))
	for _, name := range maps.Keys(stats) {
		entries = append(entries, entry{name: name, stats: *stats[name]})
	}
	return writeSummary(w, entries)
}

// parseLine splits one record (without its newline) into the station
// name and the tenths value.
func parseLine(line []byte) (string, int32) {
	name, temp, _ := bytes.Cut(line, []byte{';'})
	return string(name), parseDigits(temp)
}
