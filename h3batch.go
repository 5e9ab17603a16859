package h3batch

import (
	"fmt"
	"time"

	"github.com/apache/arrow/go/v15/arrow"

	"github.com/hupe1980/h3batch/grid"
	"github.com/hupe1980/h3batch/internal/batch"
	"github.com/hupe1980/h3batch/internal/parallel"
)

// Engine evaluates grid operations over Arrow columns.
//
// An Engine holds no per-call state and is safe for concurrent use.
type Engine struct {
	env     *batch.Env
	logger  *Logger
	metrics MetricsCollector
}

// New creates an Engine.
func New(optFns ...Option) *Engine {
	opts := applyOptions(optFns)

	runner := parallel.New(func(o *parallel.Options) {
		*o = opts.parallel
	})

	env := batch.NewEnv(opts.grid, opts.mem, runner)
	if opts.maxListLen > 0 {
		env.MaxListLen = opts.maxListLen
	}

	return &Engine{
		env:     env,
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}
}

// Grid returns the grid implementation rows are evaluated with.
func (e *Engine) Grid() grid.Grid {
	return e.env.Grid
}

func rowsOf(arr arrow.Array) int {
	if arr == nil {
		return 0
	}
	return arr.Len()
}

// run executes one batch operation and reports it to the logger and the
// metrics collector.
func (e *Engine) run(op string, rows int, fn func() (arrow.Array, error)) (arrow.Array, error) {
	start := time.Now()

	out, err := fn()
	if err != nil {
		err = fmt.Errorf("%s: %w", op, translateError(err))
	}

	absent := 0
	if out != nil {
		absent = out.NullN()
	}
	duration := time.Since(start)

	e.logger.WithOp(op).LogCall(rows, absent, duration, err)
	e.metrics.RecordCall(op, rows, absent, duration, err)

	return out, err
}
