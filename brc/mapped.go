package brc

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// SolveMapped is the memory-mapped engine. The file is mapped read-only
// once, cut into line-aligned segments, and scanned by one goroutine per
// segment into private tables; a sequential fold then reduces the tables
// in segment order. Workers share no mutable state, so the result is
// deterministic regardless of scheduling.
func SolveMapped(path string, w io.Writer, opts ...Option) error {
	cfg := newConfig(opts)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open file: %w", err)
	}
	defer f.Close()

	data, err := mmapFile(f)
	if err != nil {
		return err
	}
	defer munmapFile(data)

	start := time.Now()
	segs := splitSegments(data, cfg.workerCount(int64(len(data))))

	tables := make([]*Table, len(segs))
	var wg sync.WaitGroup
	for i, seg := range segs {
		wg.Add(1)
		go func(i int, seg segment) {
			defer wg.Done()
			t := NewTable(cfg.capacity)
			scanSegment(data, seg, t)
			tables[i] = t
		}(i, seg)
	}
	wg.Wait()

	merged := NewTable(cfg.capacity)
	for _, t := range tables {
		merged.MergeFrom(t)
	}

	cfg.logger.Debug("scan complete",
		slog.Int("segments", len(segs)),
		slog.Int("stations", merged.Len()),
		slog.Duration("elapsed", time.Since(start)),
	)

	entries := make([]entry, 0, merged.Len())
	merged.Traverse(func(name []byte, s *Stats) {
		entries = append(entries, entry{name: string(name), stats: *s})
	})
	return writeSummary(w, entries)
}
