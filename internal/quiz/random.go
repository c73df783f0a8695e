package quiz

import (
	"math/rand"
	"time"
)

// Randomizer is every random choice the quiz makes. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRandomizer returns a Randomizer seeded with seed, or with the current time when seed is 0.
func NewRandomizer(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func pick[T any](random Randomizer, values []T) T {
	return values[random.Intn(len(values))]
}
