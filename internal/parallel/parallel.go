// Package parallel provides the parallel-for used by elementwise array operations.
package parallel

import (
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinChunkSize int  // Minimum items per goroutine to avoid overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64, // Typical cache line aware chunk.
	}
}

// Scheduler runs body over disjoint contiguous chunks covering [0, n) and
// returns once every chunk is done. Bodies must only write to positions of
// their own chunk.
type Scheduler interface {
	Run(n int, body func(start, end int))
}

// Sequential runs the whole range as one chunk on the calling goroutine.
type Sequential struct{}

// Run implements Scheduler.
func (Sequential) Run(n int, body func(start, end int)) {
	if n > 0 {
		body(0, n)
	}
}

// Pool splits the range across a bounded number of goroutines.
type Pool struct {
	cfg Config
}

// NewPool returns a Pool for cfg. Non-positive worker counts fall back to the
// CPU count.
func NewPool(cfg Config) *Pool {
	if cfg.NumWorkers <= 0 {
		cfg.NumWorkers = runtime.NumCPU()
	}
	if cfg.MinChunkSize <= 0 {
		cfg.MinChunkSize = 1
	}
	return &Pool{cfg: cfg}
}

// New returns the Scheduler described by cfg: a Pool when parallelism is
// enabled, Sequential otherwise.
func New(cfg Config) Scheduler {
	if !cfg.Enabled {
		return Sequential{}
	}
	return NewPool(cfg)
}

// Config returns the pool configuration.
func (p *Pool) Config() Config {
	return p.cfg
}

// Run implements Scheduler.
func (p *Pool) Run(n int, body func(start, end int)) {
	ForRange(n, body, p.cfg)
}

// workerPanic carries a panic out of a worker goroutine so it can be raised
// again on the caller's goroutine after the barrier.
type workerPanic struct {
	value any
}

func (w *workerPanic) Error() string {
	return fmt.Sprintf("parallel: worker panic: %v", w.value)
}

// ForRange executes body over chunks of [0, n) with optional parallelism.
// Falls back to one sequential chunk if parallelism is disabled or n is too small.
func ForRange(n int, body func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		body(0, n)
		return
	}

	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)
	slog.Debug("parallel: dispatch", "n", n, "workers", cfg.NumWorkers, "chunk", chunkSize)

	var g errgroup.Group
	g.SetLimit(cfg.NumWorkers)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &workerPanic{value: r}
				}
			}()
			body(start, end)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if wp, ok := err.(*workerPanic); ok {
			panic(wp.value)
		}
		panic(err)
	}
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is too small.
func For(n int, f func(i int), cfg Config) {
	ForRange(n, func(start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}

// ForBatch optimized for batch*channels iteration pattern.
func ForBatch(batch, channels int, f func(b, c int), cfg Config) {
	n := batch * channels
	For(n, func(k int) {
		f(k/channels, k%channels)
	}, cfg)
}
