package column

// Result is a row-aligned output vector. Data[i] is meaningful only when Valid[i].
//
// Each row writes only its own position, so rows may be filled concurrently.
type Result[T any] struct {
	Data  []T
	Valid []bool
}

// NewResult allocates a result of n absent rows.
func NewResult[T any](n int) *Result[T] {
	return &Result[T]{
		Data:  make([]T, n),
		Valid: make([]bool, n),
	}
}

// Set stores v at row i and marks it present.
func (r *Result[T]) Set(i int, v T) {
	r.Data[i] = v
	r.Valid[i] = true
}

// Len returns the number of rows.
func (r *Result[T]) Len() int {
	return len(r.Valid)
}
