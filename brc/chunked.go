package brc

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/dolthub/swiss"
	"golang.org/x/sync/errgroup"
)

// CHUNK_BUF_SIZE is each worker's carry buffer. Reads refill it and the
// tail beyond the last newline carries over to the front for the next
// refill.
const CHUNK_BUF_SIZE = 1 << 20

// chunkStation pairs a station's display name with its aggregate. The
// map key is the 64-bit name hash, so the name rides along for merging
// and output.
type chunkStation struct {
	name  string
	stats Stats
}

// SolveChunked reads newline-aligned sections of the file, one goroutine
// per section, each folding records into a swiss table keyed by the
// xxhash of the name. It trades the readable solver's simplicity for
// parallel IO without mapping the file.
func SolveChunked(path string, w io.Writer, opts ...Option) error {
	cfg := newConfig(opts)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open file: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("unable to stat file: %w", err)
	}
	size := fi.Size()
	workers := cfg.workerCount(size)

	offsets, err := chunkOffsets(f, size, workers)
	if err != nil {
		return err
	}

	parts := make([]*swiss.Map[uint64, *chunkStation], workers)
	var eg errgroup.Group
	for i := 0; i < workers; i++ {
		i := i
		eg.Go(func() error {
			sr := io.NewSectionReader(f, offsets[i], offsets[i+1]-offsets[i])
			m, err := scanChunks(sr)
			if err != nil {
				return err
			}
			parts[i] = m
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("unable to scan sections: %w", err)
	}

	merged := swiss.NewMap[uint64, *chunkStation](1024)
	for _, part := range parts {
		part.Iter(func(k uint64, v *chunkStation) bool {
			if cur, ok := merged.Get(k); ok {
				cur.stats.Merge(&v.stats)
			} else {
				merged.Put(k, v)
			}
			return false
		})
	}

	entries := make([]entry, 0, merged.Count())
	merged.Iter(func(_ uint64, v *chunkStation) bool {
		entries = append(entries, entry{name: v.name, stats: v.stats})
		return false
	})
	return writeSummary(w, entries)
}

// chunkOffsets returns workers+1 cut points covering [0, size), every
// interior cut landing just after a newline.
func chunkOffsets(f *os.File, size int64, workers int) ([]int64, error) {
	offsets := make([]int64, workers+1)
	offsets[workers] = size
	if size == 0 {
		return offsets, nil
	}
	step := size / int64(workers)
	b := make([]byte, 1)
	for i := 1; i < workers; i++ {
		pos := int64(i) * step
		if _, err := f.Seek(pos, io.SeekStart); err != nil {
			return nil, fmt.Errorf("unable to seek to offset %d: %w", pos, err)
		}
		for {
			n, err := f.Read(b)
			if err != nil {
				return nil, fmt.Errorf("unable to read at offset %d: %w", pos, err)
			}
			pos += int64(n)
			if b[0] == '\n' {
				break
			}
		}
		offsets[i] = pos
	}
	return offsets, nil
}

// scanChunks drains one section: refill the carry buffer, cut whole
// lines off it and fold each record. Bytes after the last newline of a
// refill are moved to the front and completed by the next read.
func scanChunks(r *io.SectionReader) (*swiss.Map[uint64, *chunkStation], error) {
	m := swiss.NewMap[uint64, *chunkStation](1024)
	buf := make([]byte, CHUNK_BUF_SIZE)
	carry := 0
	for {
		n, err := r.Read(buf[carry:])
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("unable to read section: %w", err)
		}
		chunk := buf[:carry+n]
		last := bytes.LastIndexByte(chunk, '\n')
		if last < 0 {
			// A short read can land mid-line; keep filling until a
			// terminator shows up or the section is drained.
			if n == 0 {
				break
			}
			carry = len(chunk)
			continue
		}
		rest := chunk[last+1:]
		chunk = chunk[:last+1]

		for {
			line, after, _ := bytes.Cut(chunk, []byte{'\n'})
			if len(line) == 0 {
				break
			}
			chunk = after

			sep := bytes.IndexByte(line, ';')
			nameBytes := line[:sep]
			v := parseDigits(line[sep+1:])

			h := xxhash.Sum64(nameBytes)
			if s, ok := m.Get(h); ok {
				s.stats.Add(v)
			} else {
				m.Put(h, &chunkStation{name: string(nameBytes), stats: newStats(v)})
			}
		}
		carry = copy(buf, rest)
	}
	return m, nil
}
