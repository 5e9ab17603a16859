// Package traversal walks the grid graph: distances, rings, disks, paths and
// local IJ coordinates.
//
// Operations involving two cells pair them row by row. Pairs the grid cannot
// relate (too far apart, across pentagon distortion, different resolutions)
// yield absent rows.
package traversal
