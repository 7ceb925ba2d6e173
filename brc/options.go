package brc

import (
	"log/slog"
	"runtime"
)

type config struct {
	workers  int
	capacity int
	logger   *slog.Logger
}

// Option tunes a solver run.
type Option func(*config)

// WithWorkers pins the number of parallel scan workers. Zero or negative
// keeps the automatic choice: one worker per CPU, or a single worker for
// files at or under SMALL_FILE_SIZE bytes.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithCapacity sets the station table's slot count. The table never
// grows, so callers lowering this must know their input's cardinality.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithLogger routes the engine's diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		capacity: DEFAULT_TABLE_SIZE,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// workerCount resolves the worker count for an input of the given size,
// applying the automatic choice when no explicit count was set.
func (c *config) workerCount(size int64) int {
	if c.workers > 0 {
		return c.workers
	}
	if size <= SMALL_FILE_SIZE {
		return 1
	}
	return runtime.NumCPU()
}
