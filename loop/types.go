// Package loop provides tunable options and error definitions
// for walking a pipe loop.
package loop

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Sentinel errors for Walk.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loop: invalid option supplied")

	// ErrStepLimit is returned when the loop is longer than the configured limit.
	ErrStepLimit = errors.New("loop: step limit exceeded")
)

// Option configures Walk via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when Walk runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize Walk.
type Options struct {
	// OnVisit is called for each loop cell with its index along the walk.
	// Returning an error aborts the walk.
	OnVisit func(tp pipegrid.TilePosition, step int) error

	// MaxSteps, if > 0, caps the number of cells the walk may yield.
	MaxSteps int

	err error
}

// DefaultOptions returns Options with a no-op hook and no step limit.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(pipegrid.TilePosition, int) error { return nil },
		MaxSteps: 0,
	}
}

// WithOnVisit registers a callback run on every yielded cell.
func WithOnVisit(fn func(tp pipegrid.TilePosition, step int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxSteps caps the walk length.
//
//	n > 0:  at most n cells
//	n == 0: explicit no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// Result holds the outcome of a full walk.
//   - Path: loop cells in walk order, starting at the start cell.
//   - Farthest: the cell halfway around the loop.
//   - FarthestSteps: its distance from the start, (len(Path)+1)/2.
type Result struct {
	Path          []pipegrid.TilePosition
	Farthest      pipegrid.TilePosition
	FarthestSteps int
}
