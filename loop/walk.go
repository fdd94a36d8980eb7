package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Walk runs an Iterator over g to completion, applying any number of
// functional Options. Returns ErrOptionViolation for bad options,
// ErrStepLimit when the loop is longer than MaxSteps, or the wrapped
// error of an OnVisit hook.
// Complexity: O(L) time and memory.
func Walk(g *pipegrid.Grid, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{}
	it := New(g)
	for step := 0; ; step++ {
		tp, ok := it.Next()
		if !ok {
			break
		}
		if o.MaxSteps > 0 && step >= o.MaxSteps {
			return nil, fmt.Errorf("%w: more than %d cells", ErrStepLimit, o.MaxSteps)
		}
		if err := o.OnVisit(tp, step); err != nil {
			return nil, fmt.Errorf("loop: OnVisit error at (%d,%d): %w", tp.Row, tp.Column, err)
		}
		res.Path = append(res.Path, tp)
	}

	half := len(res.Path) / 2
	res.Farthest = res.Path[half]
	res.FarthestSteps = (len(res.Path) + 1) / 2
	return res, nil
}

// Collect returns the loop cells of g in walk order.
func Collect(g *pipegrid.Grid) []pipegrid.TilePosition {
	var path []pipegrid.TilePosition
	it := New(g)
	for tp, ok := it.Next(); ok; tp, ok = it.Next() {
		path = append(path, tp)
	}
	return path
}

// Length counts the loop cells of g without materializing them.
func Length(g *pipegrid.Grid) int {
	n := 0
	it := New(g)
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		n++
	}
	return n
}

// Members returns the set of loop cells of g.
func Members(g *pipegrid.Grid) map[pipegrid.Position]struct{} {
	set := make(map[pipegrid.Position]struct{})
	it := New(g)
	for tp, ok := it.Next(); ok; tp, ok = it.Next() {
		set[tp.Position()] = struct{}{}
	}
	return set
}
