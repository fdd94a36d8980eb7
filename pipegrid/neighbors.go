package pipegrid

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/tile"
)

// Jointed reports whether the cell at p opens towards d and the neighbor in
// that direction opens back towards p.
func (g *Grid) Jointed(p Position, d tile.Direction) bool {
	if !g.tiles[p.Row][p.Column].Connects(d) {
		return false
	}
	n := p.Step(d)
	return g.InBounds(n.Row, n.Column) && g.tiles[n.Row][n.Column].Connects(d.Opposite())
}

// MovableNeighbors returns the two cells jointed to p, in N, E, S, W order.
//
// A validly built Grid guarantees exactly two for every loop cell; any other
// count means the caller asked about a cell off the loop or the grid broke
// its invariants, and MovableNeighbors panics.
// Complexity: O(1).
func (g *Grid) MovableNeighbors(p Position) [2]Position {
	var out [2]Position
	n := 0
	for _, d := range tile.Directions {
		// a tile opens in at most two directions, so out never overflows
		if !g.Jointed(p, d) {
			continue
		}
		out[n] = p.Step(d)
		n++
	}
	if n != len(out) {
		panic(fmt.Sprintf("pipegrid: cell (%d,%d) %s has %d movable neighbors, want 2",
			p.Row, p.Column, g.tiles[p.Row][p.Column].Name(), n))
	}
	return out
}
