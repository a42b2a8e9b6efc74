// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// RandomSource picks uniformly distributed indexes.
type RandomSource interface {
	// Intn returns an index in [0, n). n is always positive.
	Intn(n int) int
}

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}
