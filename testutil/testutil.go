package testutil

import (
	"math/rand"
	"sort"
	"sync"
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

// Dense returns num elements drawn uniformly from [0, universe).
// Duplicates are possible and intentional.
func (r *RNG) Dense(num, universe int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, num)
	for i := range out {
		out[i] = r.rand.Intn(universe)
	}
	return out
}

// Clustered returns num elements grouped around clusters random centers
// in [0, universe), each element within spread of its center.
func (r *RNG) Clustered(num, universe, clusters, spread int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	centers := make([]int, clusters)
	for i := range centers {
		centers[i] = r.rand.Intn(universe)
	}

	out := make([]int, num)
	for i := range out {
		c := centers[r.rand.Intn(clusters)]
		n := c + r.rand.Intn(2*spread+1) - spread
		if n < 0 {
			n = -n
		}
		out[i] = n
	}
	return out
}

// Sparse returns num elements spread over [0, universe) with a large
// universe in mind: most elements land in their own slice.
func (r *RNG) Sparse(num int, universe int64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, num)
	for i := range out {
		out[i] = int(r.rand.Int63n(universe))
	}
	return out
}

// Mixed returns a random mix of Dense, Clustered and Sparse elements.
// Useful as a property-test generator.
func (r *RNG) Mixed(num int) []int {
	switch r.Intn(3) {
	case 0:
		return r.Dense(num, 4*num+1)
	case 1:
		return r.Clustered(num, 1<<20, 1+r.Intn(8), 1+r.Intn(600))
	default:
		return r.Sparse(num, 1<<40)
	}
}

// Model is a reference set implementation backed by a map.
type Model map[int]struct{}

// NewModel returns a Model holding xs.
func NewModel(xs []int) Model {
	m := make(Model, len(xs))
	for _, x := range xs {
		m[x] = struct{}{}
	}
	return m
}

// Sorted returns the elements of m in ascending order.
func (m Model) Sorted() []int {
	out := make([]int, 0, len(m))
	for x := range m {
		out = append(out, x)
	}
	sort.Ints(out)
	return out
}

// Has reports whether x is in m.
func (m Model) Has(x int) bool {
	_, ok := m[x]
	return ok
}
