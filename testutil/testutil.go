package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/euclid"
)

// RNG wraps a seeded random source. It is safe for concurrent use.
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

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Intn returns a pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// Vector returns a vector with coordinates uniform in [minVal, maxVal).
func (r *RNG) Vector(dim int, minVal, maxVal float64) euclid.Vector {
	coords := make([]float64, dim)
	r.FillUniformRange(coords, minVal, maxVal)
	return euclid.MustNew(coords...)
}

// NonZeroVector is like Vector but retries until the result is not the
// zero vector.
func (r *RNG) NonZeroVector(dim int, minVal, maxVal float64) euclid.Vector {
	for {
		if v := r.Vector(dim, minVal, maxVal); !v.IsZero() {
			return v
		}
	}
}

// IntVector returns a vector with integer coordinates in [-limit, limit].
func (r *RNG) IntVector(dim, limit int) euclid.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()
	coords := make([]float64, dim)
	for i := range coords {
		coords[i] = float64(r.rand.Intn(2*limit+1) - limit)
	}
	return euclid.MustNew(coords...)
}

// UnitVector returns a vector uniformly distributed on the unit sphere.
func (r *RNG) UnitVector(dim int) euclid.Vector {
	for {
		r.mu.Lock()
		coords := make([]float64, dim)
		for i := range coords {
			coords[i] = r.rand.NormFloat64()
		}
		r.mu.Unlock()

		if u, err := euclid.MustNew(coords...).Normalize(); err == nil {
			return u
		}
	}
}

// Vectors returns num vectors built by gen.
func (r *RNG) Vectors(num int, gen func(*RNG) euclid.Vector) []euclid.Vector {
	out := make([]euclid.Vector, num)
	for i := range out {
		out[i] = gen(r)
	}
	return out
}
