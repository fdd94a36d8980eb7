package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

type state uint8

const (
	stateStart state = iota
	stateWalking
	stateDone
)

// Iterator yields the loop cells of a Grid in walk order.
// It is single use: once Next reports false it keeps doing so.
type Iterator struct {
	grid     *pipegrid.Grid
	state    state
	current  pipegrid.Position
	previous pipegrid.Position
}

// New returns an Iterator positioned before the start cell of g.
func New(g *pipegrid.Grid) *Iterator {
	return &Iterator{grid: g}
}

// Next returns the next loop cell, or false once the loop is complete.
// Panics if the grid offers no forward neighbor, which a validly built
// Grid never does.
func (it *Iterator) Next() (pipegrid.TilePosition, bool) {
	switch it.state {
	case stateStart:
		start := it.grid.Start()
		it.current = start.Position()
		it.state = stateWalking
		return start, true

	case stateWalking:
		next, ok := it.forward()
		if !ok {
			// back at the start: consumed, not re-emitted
			it.state = stateDone
			return pipegrid.TilePosition{}, false
		}
		it.previous, it.current = it.current, next
		return it.grid.At(next.Row, next.Column), true

	default:
		return pipegrid.TilePosition{}, false
	}
}

// forward picks the jointed neighbor of current that is not previous.
// ok is false when that neighbor is the start cell.
func (it *Iterator) forward() (pipegrid.Position, bool) {
	nbrs := it.grid.MovableNeighbors(it.current)

	var next pipegrid.Position
	switch {
	case it.grid.IsStart(it.current):
		// leaving the start: no predecessor yet, take the first in N,E,S,W order
		next = nbrs[0]
	case nbrs[0] == it.previous:
		next = nbrs[1]
	case nbrs[1] == it.previous:
		next = nbrs[0]
	default:
		panic(fmt.Sprintf("loop: cell (%d,%d) is not jointed to its predecessor (%d,%d)",
			it.current.Row, it.current.Column, it.previous.Row, it.previous.Column))
	}
	return next, !it.grid.IsStart(next)
}
