// Package edge handles directed edges between neighboring cells and the
// vertexes shared by cells.
//
// Edges and vertexes live in the same 64-bit index space as cells and use
// the same column encodings. Inputs are validated against the index kind
// each operation expects; rows holding another kind are absent.
package edge
