package story

import "math/rand/v2"

// Randomizer is the source of the composer's few random choices.
// *rand.Rand from math/rand/v2 satisfies it, which is what tests inject.
type Randomizer interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// processRandom draws from the process-wide generator, which is safe for
// concurrent use.
type processRandom struct{}

func (processRandom) IntN(n int) int { return rand.IntN(n) }

// DefaultRandomizer returns a Randomizer backed by the process-wide source.
func DefaultRandomizer() Randomizer { return processRandom{} }

// NewSeededRandomizer returns a deterministic Randomizer. It is not safe for
// concurrent use.
func NewSeededRandomizer(seed uint64) Randomizer {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func pick[T any](rng Randomizer, items []T) T {
	return items[rng.IntN(len(items))]
}
