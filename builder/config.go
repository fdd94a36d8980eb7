// SPDX-License-Identifier: MIT
// Package: pipeloop/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng         = nil   (pure unless seeded)
//   • startIndex  = 0     (first loop cell in row-major order)
//   • randomStart = false

package builder

import "math/rand"

// config aggregates all knobs used by constructors.
type config struct {
	rng         *rand.Rand
	startIndex  int
	randomStart bool
}

// newConfig applies opts in order over the defaults.
func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
