// SPDX-License-Identifier: MIT
// Package: pipeloop/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w at the call site.

package builder

import "errors"

// ErrTooFewColumns indicates a histogram with no columns.
var ErrTooFewColumns = errors.New("builder: at least one column required")

// ErrBadHeight indicates a column height (or maximum height) below one.
var ErrBadHeight = errors.New("builder: column height must be at least 1")

// ErrNeedRandSource indicates a random constructor or option without an RNG.
var ErrNeedRandSource = errors.New("builder: random source required")
