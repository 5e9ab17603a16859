// Package metrics computes cell areas and grid-wide cardinalities.
package metrics
