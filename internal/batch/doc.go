// Package batch holds what every batch operation shares: the execution
// environment (grid implementation, Arrow allocator, parallel runner), the
// structural error sentinels and the row-wise map primitive.
//
// A batch operation proceeds in the same order everywhere:
//
//  1. validate scalar arguments (resolution, k, unit);
//  2. check that all columns are present and equally long;
//  3. parse the input columns and union their absent-row masks;
//  4. Map over the rows, skipping absent ones;
//  5. build the output column.
//
// Steps 1–3 may fail the call. Step 4 never does: a row whose computation
// fails is left absent.
package batch
