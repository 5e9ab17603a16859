// Package h3batch evaluates H3 grid operations over Apache Arrow columns.
//
// Every operation takes one or more equally long columns, evaluates a grid
// function row by row and returns a new column of the same length. Rows whose
// inputs are null, malformed or invalid, or for which the grid function
// fails, are null in the output; they never fail the call. A call fails only
// for structural problems: a column of an unsupported type, columns of
// different lengths, or an out-of-range scalar argument such as a resolution.
//
// # Quick Start
//
//	e := h3batch.New()
//
//	cells, _ := e.LatLngToCell(lat, lng, 9)
//	defer cells.Release()
//
//	parents, _ := e.CellToParent(cells, h3batch.WithResolution(5))
//	defer parents.Release()
//
// # Index Encodings
//
// Grid indexes may be stored as uint64, as int64 (same bit pattern) or as
// lowercase hexadecimal strings. Index outputs use the encoding of the first
// index input unless WithEncoding says otherwise; operations reading only
// coordinates default to uint64.
//
// # Parallelism
//
// Batches of at least WithParallelThreshold rows are split into chunks of
// WithChunkSize rows and evaluated by up to WithWorkers goroutines. Each row
// is computed independently, so results do not depend on the schedule.
//
// # Memory
//
// Output columns are allocated from the allocator given to WithAllocator.
// Callers own every returned column and must Release it. List rows are
// bounded by WithMaxListLen, so a single row never allocates more than that
// many indexes.
package h3batch
