package batch

import "errors"

var (
	// ErrInvalidArgument is returned when a scalar argument is out of range (e.g. k < 0).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidUnit is returned when a measurement unit is not supported.
	ErrInvalidUnit = errors.New("invalid unit")
)
