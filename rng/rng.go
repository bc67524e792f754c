// Package rng supplies the bounded random integer source used by map
// generation. Every generator owns an explicit source; there is no shared
// package-level state, so fixing a seed fixes the generated output.
package rng

import (
	"math/rand"
	"time"
)

// Rng is a source of bounded random integers.
type Rng interface {
	// Next returns a random int in [0, bound). A bound of zero or less
	// returns 0.
	Next(bound int) int
	// NextRange returns a random int in [min, bound). An empty range
	// (bound <= min) returns min.
	NextRange(min, bound int) int
}

// Source is a seeded Rng backed by math/rand.
type Source struct {
	r *rand.Rand
}

// NewSource creates a Source with the given seed. Equal seeds produce
// identical draw sequences.
func NewSource(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// NewTimeSource creates a Source seeded from the current time, for
// callers that don't need reproducible output.
func NewTimeSource() *Source {
	return NewSource(time.Now().UnixNano())
}

// Next returns a random int in [0, bound).
func (s *Source) Next(bound int) int {
	if bound <= 0 {
		return 0
	}
	return s.r.Intn(bound)
}

// NextRange returns a random int in [min, bound).
func (s *Source) NextRange(min, bound int) int {
	if bound <= min {
		return min
	}
	return min + s.r.Intn(bound-min)
}
