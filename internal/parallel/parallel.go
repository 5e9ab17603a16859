package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultThreshold is the batch size below which rows run sequentially.
	DefaultThreshold = 4096

	// DefaultChunkSize is the number of rows handed to a worker at once.
	DefaultChunkSize = 1024
)

// Options configures a Runner.
type Options struct {
	// Workers caps concurrently running chunks. Values < 1 mean GOMAXPROCS.
	Workers int

	// Threshold is the minimum number of rows that triggers parallel execution.
	Threshold int

	// ChunkSize is the number of consecutive rows processed per task.
	ChunkSize int
}

// DefaultOptions returns the default runner configuration.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.GOMAXPROCS(0),
		Threshold: DefaultThreshold,
		ChunkSize: DefaultChunkSize,
	}
}

// Runner dispatches row-wise work.
type Runner struct {
	workers   int
	threshold int
	chunkSize int
}

// New creates a Runner.
func New(optFns ...func(*Options)) *Runner {
	opts := DefaultOptions()
	for _, fn := range optFns {
		if fn != nil {
			fn(&opts)
		}
	}
	if opts.Workers < 1 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Threshold < 1 {
		opts.Threshold = DefaultThreshold
	}
	if opts.ChunkSize < 1 {
		opts.ChunkSize = DefaultChunkSize
	}
	return &Runner{
		workers:   opts.Workers,
		threshold: opts.Threshold,
		chunkSize: opts.ChunkSize,
	}
}

// Sequential reports whether a batch of n rows runs on the calling goroutine.
func (r *Runner) Sequential(n int) bool {
	return r.workers == 1 || n < r.threshold || n <= r.chunkSize
}

// For calls fn for every row in [0, n) and returns once all calls finished.
func (r *Runner) For(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if r.Sequential(n) {
		for i := range n {
			fn(i)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(r.workers)

	for lo := 0; lo < n; lo += r.chunkSize {
		hi := min(lo+r.chunkSize, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				fn(i)
			}
			return nil
		})
	}

	// Tasks never fail; Wait only joins them.
	_ = g.Wait()
}
