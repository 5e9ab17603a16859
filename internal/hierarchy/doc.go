// Package hierarchy navigates the parent/child structure of the grid:
// parents, children, child positions and set compaction.
//
// Operations taking an optional target resolution accept
// batch.AutoResolution, meaning one level coarser than the row's cell for
// parent-directed operations and one level finer for child-directed ones.
// Rows for which that level does not exist (a parent of a resolution 0 cell,
// a child of a resolution 15 cell) are absent, as are rows whose explicit
// target lies on the wrong side of the cell's own resolution.
package hierarchy
