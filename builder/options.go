// SPDX-License-Identifier: MIT
// Package: pipeloop/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Option constructors validate and PANIC on meaningless inputs.
//   • Constructors themselves return sentinel errors and never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes a constructor by mutating a config before generation.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithStartIndex places Start on the k-th loop cell in row-major order,
// taken modulo the loop length. Panics if k < 0.
func WithStartIndex(k int) Option {
	if k < 0 {
		panic("builder: WithStartIndex(k<0)")
	}
	return func(c *config) {
		c.startIndex = k
		c.randomStart = false
	}
}

// WithRandomStart places Start on a loop cell drawn from the RNG.
func WithRandomStart() Option {
	return func(c *config) {
		c.randomStart = true
	}
}
