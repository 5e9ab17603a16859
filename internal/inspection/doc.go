// Package inspection reads per-cell metadata and re-encodes index columns.
package inspection
