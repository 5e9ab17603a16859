// Package indexing converts between coordinate columns and grid index columns.
package indexing
