package draw

import "math/rand/v2"

// Source abstracts the random generator so tests can seed it.
type Source interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n).
	IntN(n int) int
}

// sharedSource uses the package-level math/rand/v2 generator, which is safe
// for concurrent use.
type sharedSource struct{}

func (sharedSource) Float64() float64 { return rand.Float64() }
func (sharedSource) IntN(n int) int   { return rand.IntN(n) }

// DefaultSource returns the process-wide thread-safe generator.
func DefaultSource() Source { return sharedSource{} }

// seededSource is a deterministic generator for tests. Not safe for
// concurrent use.
type seededSource struct {
	r *rand.Rand
}

// NewSeededSource returns a reproducible Source for tests and simulations.
func NewSeededSource(seed uint64) Source {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Float64() float64 { return s.r.Float64() }
func (s *seededSource) IntN(n int) int   { return s.r.IntN(n) }
