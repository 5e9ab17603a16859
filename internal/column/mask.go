package column

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Mask is a set of absent row positions.
//
// A Mask is built single-threaded while parsing and is read-only afterwards,
// so concurrent Contains calls during row dispatch are safe.
type Mask struct {
	rb *roaring.Bitmap
}

// NewMask creates an empty mask.
func NewMask() *Mask {
	return &Mask{rb: roaring.New()}
}

// Add marks a row absent.
func (m *Mask) Add(row int) {
	m.rb.Add(uint32(row))
}

// AddRange marks rows [lo, hi) absent.
func (m *Mask) AddRange(lo, hi int) {
	if hi <= lo {
		return
	}
	m.rb.AddRange(uint64(lo), uint64(hi))
}

// Contains reports whether a row is absent.
func (m *Mask) Contains(row int) bool {
	return m.rb.Contains(uint32(row))
}

// Count returns the number of absent rows.
func (m *Mask) Count() int {
	return int(m.rb.GetCardinality())
}

// IsEmpty reports whether no row is absent.
func (m *Mask) IsEmpty() bool {
	return m.rb.IsEmpty()
}

// ForEach visits absent rows in ascending order until fn returns false.
func (m *Mask) ForEach(fn func(row int) bool) {
	it := m.rb.Iterator()
	for it.HasNext() {
		if !fn(int(it.Next())) {
			break
		}
	}
}

// Union returns a new mask of rows absent in any of the given masks.
// Nil masks are skipped.
func Union(masks ...*Mask) *Mask {
	rbs := make([]*roaring.Bitmap, 0, len(masks))
	for _, m := range masks {
		if m != nil {
			rbs = append(rbs, m.rb)
		}
	}
	if len(rbs) == 0 {
		return NewMask()
	}
	return &Mask{rb: roaring.FastOr(rbs...)}
}
