package gacha

import "math/rand/v2"

// RandomSource supplies the entropy consumed by Draw.
type RandomSource interface {
	Float64() float64 // [0, 1)
	IntN(n int) int   // [0, n)
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }
func (globalSource) IntN(n int) int   { return rand.IntN(n) }

// DefaultSource draws from the runtime-seeded math/rand/v2 generator and is
// safe for concurrent use.
func DefaultSource() RandomSource { return globalSource{} }

type seededSource struct{ r *rand.Rand }

// NewSeededSource returns a reproducible source for tests and simulations.
// It must not be shared between goroutines.
func NewSeededSource(seed uint64) RandomSource {
	return &seededSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededSource) Float64() float64 { return s.r.Float64() }
func (s *seededSource) IntN(n int) int   { return s.r.IntN(n) }
