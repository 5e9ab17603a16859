// Package testutil provides testing utilities for h3batch.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for coordinates and cells, and short
// constructors for Arrow columns with nulls.
//
// # Random Inputs
//
//	rng := testutil.NewRNG(seed)
//	lats, lngs := rng.LatLngs(1000)
//	cells := rng.Cells(grid.NewH3(), 1000, 9)
//
// # Columns
//
//	mem := memory.NewGoAllocator()
//	lat := testutil.Float64s(mem, lats, nil)          // all rows present
//	ids := testutil.Uint64s(mem, raw, []bool{true, false})
package testutil
