package adapters

import (
	"math/rand"
	"time"

	"github.com/wardrobe-manager/backend/internal/application/adapter"
)

// systemClock reads the wall clock in UTC.
type systemClock struct{}

// NewSystemClock creates a clock backed by time.Now.
func NewSystemClock() adapter.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

// mathRandom draws from the auto-seeded math/rand source.
type mathRandom struct{}

// NewRandomSource creates a uniform random source for outfit selection.
func NewRandomSource() adapter.RandomSource {
	return mathRandom{}
}

// Intn returns a uniform value in [0, n). n must be positive.
func (mathRandom) Intn(n int) int {
	return rand.Intn(n)
}
