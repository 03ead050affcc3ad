// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package randutil provides the injectable random source behind all
// deck generation. Production code seeds it from crypto/rand; tests
// pass a fixed seed so every generated deck is reproducible.
package randutil

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
)

// ErrEmptyList is returned when a choice is requested from an empty
// list. Callers treat it as a hard failure: deck generation is
// all-or-nothing and never substitutes a zero value for a missing pick.
var ErrEmptyList = errors.New("cannot choose from empty list")

// Source is the random primitive set used by the resolver, the slide
// generators, and the assembler. Each call is independent; a Source
// carries no state beyond its underlying generator.
type Source interface {
	// Uniform returns an integer in [0, n). n must be positive.
	Uniform(n int) int

	// IntRange returns an integer in [min, max], inclusive of both.
	IntRange(min, max int) int

	// Float returns a float64 in [0, 1).
	Float() float64
}

// rngSource backs Source with a seeded *rand.Rand.
type rngSource struct {
	rng *rand.Rand
}

// New returns a Source seeded with the given value.
func New(seed int64) Source {
	return &rngSource{rng: rand.New(rand.NewSource(seed))}
}

// NewSeeded returns a Source seeded from crypto/rand, along with the
// seed it chose so callers can report or replay it.
func NewSeeded() (Source, int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, 0, fmt.Errorf("reading random seed: %w", err)
	}
	seed := int64(binary.LittleEndian.Uint64(b[:]))
	return New(seed), seed, nil
}

func (s *rngSource) Uniform(n int) int { return s.rng.Intn(n) }

func (s *rngSource) IntRange(min, max int) int {
	return min + s.rng.Intn(max-min+1)
}

func (s *rngSource) Float() float64 { return s.rng.Float64() }

// PickOne returns one uniformly chosen element of list.
func PickOne[T any](src Source, list []T) (T, error) {
	var zero T
	if len(list) == 0 {
		return zero, ErrEmptyList
	}
	return list[src.Uniform(len(list))], nil
}

// PickN returns min(n, len(list)) distinct elements of list, sampled
// without replacement via a partial Fisher-Yates shuffle. Order is
// unspecified.
func PickN[T any](src Source, list []T, n int) []T {
	if n > len(list) {
		n = len(list)
	}
	if n <= 0 {
		return nil
	}

	pool := make([]T, len(list))
	copy(pool, list)
	for i := 0; i < n; i++ {
		j := i + src.Uniform(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float() < p
}
