package h3batch

import (
	"errors"
	"fmt"

	"github.com/hupe1980/h3batch/grid"
	"github.com/hupe1980/h3batch/internal/batch"
	"github.com/hupe1980/h3batch/internal/column"
)

var (
	// ErrInvalidResolution is returned when a resolution lies outside [0, 15].
	ErrInvalidResolution = errors.New("invalid resolution")

	// ErrInvalidArgument is returned when a scalar argument is out of range,
	// such as a negative k or a vertex number outside [0, 5].
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidUnit is returned when a measurement unit is not supported.
	ErrInvalidUnit = errors.New("invalid unit")

	// ErrUnsupportedType is returned when a column's type cannot be used for the operation.
	ErrUnsupportedType = errors.New("unsupported column type")

	// ErrUnsupportedEncoding is returned when an index encoding cannot be produced.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrMissingColumn is returned when a required column is nil.
	ErrMissingColumn = errors.New("missing column")

	// ErrBatchTooLarge is returned when a column holds more than math.MaxUint32 rows.
	ErrBatchTooLarge = errors.New("batch too large")
)

// ErrLengthMismatch indicates that paired input columns differ in length.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: expected %d rows, got %d", e.Expected, e.Actual)
}

func (e *ErrLengthMismatch) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var lm *column.LengthMismatchError
	if errors.As(err, &lm) {
		return &ErrLengthMismatch{Expected: lm.Expected, Actual: lm.Actual, cause: err}
	}

	for _, m := range []struct{ internal, public error }{
		{grid.ErrInvalidResolution, ErrInvalidResolution},
		{batch.ErrInvalidArgument, ErrInvalidArgument},
		{batch.ErrInvalidUnit, ErrInvalidUnit},
		{column.ErrUnsupportedType, ErrUnsupportedType},
		{column.ErrUnsupportedEncoding, ErrUnsupportedEncoding},
		{column.ErrMissingColumn, ErrMissingColumn},
		{column.ErrBatchTooLarge, ErrBatchTooLarge},
	} {
		if errors.Is(err, m.internal) {
			return fmt.Errorf("%w: %w", m.public, err)
		}
	}

	return err
}
