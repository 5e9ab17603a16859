package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/h3batch/grid"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// LatLngs generates n coordinates uniformly over [-90, 90) x [-180, 180).
func (r *RNG) LatLngs(n int) (lats, lngs []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lats = make([]float64, n)
	lngs = make([]float64, n)
	for i := range n {
		lats[i] = r.rand.Float64()*180 - 90
		lngs[i] = r.rand.Float64()*360 - 180
	}
	return lats, lngs
}

// Cells indexes n random coordinates at res.
func (r *RNG) Cells(g grid.Grid, n, res int) []grid.Cell {
	lats, lngs := r.LatLngs(n)
	cells := make([]grid.Cell, 0, n)
	for i := range n {
		c, err := g.LatLngToCell(grid.LatLng{Lat: lats[i], Lng: lngs[i]}, res)
		if err != nil {
			continue
		}
		cells = append(cells, c)
	}
	return cells
}

// SparseValidity generates a validity vector.
// missingRate is the probability that a row is null (0.3 = 30% missing).
func (r *RNG) SparseValidity(n int, missingRate float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	present := make([]bool, n)
	for i := range n {
		present[i] = r.rand.Float64() >= missingRate
	}

	return present
}
