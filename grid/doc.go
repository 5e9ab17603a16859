// Package grid defines the hierarchical hexagonal grid that h3batch adapts to
// columnar batches.
//
// The Grid interface is the single-value API every batch operation is built on:
// point indexing, boundaries, hierarchy navigation, compaction, grid-graph
// traversal, local IJ frames, areas and directed edges. The bit layout of the
// index itself stays inside the implementation.
//
// NewH3 returns the default implementation, backed by Uber's H3 library
// (github.com/uber/h3-go/v4).
//
// # Index space
//
// Cells, directed edges and vertexes are all 64-bit packed integers and share
// the Cell type. Not every uint64 is a valid index: callers must check IsValid
// (or IsValidDirectedEdge / IsValidVertex) before trusting a value.
package grid
