// Package column adapts Apache Arrow columns to grid indexes and back.
//
// It is the shared utility layer of every batch operation:
//
//   - Parsing: ParseCells / ParseCellLists normalize uint64, int64 and
//     hexadecimal-string columns to grid.Cell values; Float64s and Ints read
//     coordinate and local IJ columns.
//   - Absence: every parsed input carries a Mask (a roaring bitmap) of the rows
//     that are null, malformed or rejected by the grid. Masks of paired inputs
//     are unioned before rows are dispatched.
//   - Results: Result[T] is a row-aligned output vector. List-shaped outputs are
//     Result[[]T]; inner slices are produced independently per row and copied
//     into an Arrow list array once all rows are done.
//   - Encoding: Build* functions write results back as Arrow arrays, honoring
//     the caller's Encoding for index columns (also inside list columns).
//
// Unsupported column types and encodings fail the whole call; everything that
// goes wrong for a single row is reported as a null at that row.
package column
