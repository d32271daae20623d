package particle

import "math/rand"

// Source supplies the uniform random draws used when spawning particles.
// *rand.Rand satisfies it; tests can substitute a fixed-sequence source so
// spawn draws are exactly reproducible.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded random source.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
