package column

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned when a column's Arrow type cannot carry the expected values.
	ErrUnsupportedType = errors.New("unsupported column type")

	// ErrUnsupportedEncoding is returned when an output encoding cannot be produced.
	ErrUnsupportedEncoding = errors.New("unsupported index encoding")

	// ErrLengthMismatch is returned when paired columns differ in length.
	ErrLengthMismatch = errors.New("column length mismatch")

	// ErrMissingColumn is returned when a required column is nil.
	ErrMissingColumn = errors.New("missing column")

	// ErrBatchTooLarge is returned when a column has more rows than a Mask can address.
	ErrBatchTooLarge = errors.New("batch too large")
)

// LengthMismatchError reports the lengths of two paired columns.
type LengthMismatchError struct {
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("%s: expected %d rows, got %d", ErrLengthMismatch, e.Expected, e.Actual)
}

func (e *LengthMismatchError) Unwrap() error { return ErrLengthMismatch }
