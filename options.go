package h3batch

import (
	"log/slog"

	"github.com/apache/arrow/go/v15/arrow/memory"

	"github.com/hupe1980/h3batch/grid"
	"github.com/hupe1980/h3batch/internal/batch"
	"github.com/hupe1980/h3batch/internal/column"
	"github.com/hupe1980/h3batch/internal/parallel"
)

type options struct {
	grid             grid.Grid
	mem              memory.Allocator
	parallel         parallel.Options
	metricsCollector MetricsCollector
	logger           *Logger
	maxListLen       int
}

// Option configures an Engine.
type Option func(*options)

// WithGrid replaces the H3 implementation the engine evaluates rows with.
// The grid must be safe for concurrent use.
//
// If nil is passed, grid.NewH3() is used.
func WithGrid(g grid.Grid) Option {
	return func(o *options) {
		o.grid = g
	}
}

// WithAllocator sets the Arrow allocator output columns are built with.
//
// If nil is passed, memory.DefaultAllocator is used.
func WithAllocator(mem memory.Allocator) Option {
	return func(o *options) {
		o.mem = mem
	}
}

// WithWorkers caps the number of goroutines evaluating a batch.
// Values < 1 mean runtime.GOMAXPROCS(0); 1 disables parallelism.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.parallel.Workers = n
	}
}

// WithParallelThreshold sets the minimum batch length evaluated in parallel.
//
// Small batches are cheaper to evaluate on the calling goroutine than to
// schedule.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		o.parallel.Threshold = n
	}
}

// WithChunkSize sets the number of consecutive rows a worker takes at once.
func WithChunkSize(n int) Option {
	return func(o *options) {
		o.parallel.ChunkSize = n
	}
}

// WithMaxListLen bounds the number of elements one list row may hold.
// Rows of children, disks, rings, paths and uncompacted sets that would
// exceed it are absent, or rejected with ErrInvalidArgument when the bound
// follows from a call argument such as k.
//
// Values < 1 mean the default of 1<<20.
func WithMaxListLen(n int) Option {
	return func(o *options) {
		o.maxListLen = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &h3batch.BasicMetricsCollector{}
//	e := h3batch.New(h3batch.WithMetricsCollector(metrics))
//	// ... use e ...
//	stats := metrics.GetStats()
//	fmt.Printf("Calls: %d, Avg latency: %dns\n", stats.CallCount, stats.AvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := h3batch.NewJSONLogger(slog.LevelDebug)
//	e := h3batch.New(h3batch.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		parallel:         parallel.DefaultOptions(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}

// Encoding is the representation of grid indexes in a column.
type Encoding = column.Encoding

const (
	// EncodingAuto keeps the encoding of the index input.
	EncodingAuto = column.Auto
	// EncodingUInt64 stores indexes as uint64.
	EncodingUInt64 = column.UInt64
	// EncodingInt64 stores the index bit pattern as int64.
	EncodingInt64 = column.Int64
	// EncodingHex stores indexes as lowercase hexadecimal strings.
	EncodingHex = column.Hex
)

// AutoResolution selects the level next to the cell's own resolution.
const AutoResolution = batch.AutoResolution

// CallOptions configures a single operation.
type CallOptions struct {
	// Encoding of index output columns. EncodingAuto follows the input.
	Encoding Encoding

	// Resolution targeted by parent and child operations. AutoResolution
	// means one level coarser (parents) or finer (children) than each cell.
	Resolution int
}

// CallOption configures a single operation.
type CallOption func(*CallOptions)

// WithEncoding sets the encoding of index output columns.
func WithEncoding(enc Encoding) CallOption {
	return func(o *CallOptions) {
		o.Encoding = enc
	}
}

// WithResolution sets the target resolution of a parent or child operation.
func WithResolution(res int) CallOption {
	return func(o *CallOptions) {
		o.Resolution = res
	}
}

func applyCallOptions(optFns []CallOption) CallOptions {
	o := CallOptions{
		Encoding:   EncodingAuto,
		Resolution: AutoResolution,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
