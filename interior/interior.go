package interior

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/tile"
)

// Class is the classification of a single cell.
type Class uint8

const (
	// Exterior cells are off the loop and outside it.
	Exterior Class = iota
	// Loop cells are part of the loop itself.
	Loop
	// Enclosed cells are off the loop and inside it.
	Enclosed
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Exterior:
		return "Exterior"
	case Loop:
		return "Loop"
	case Enclosed:
		return "Enclosed"
	default:
		return fmt.Sprintf("Class(%d)", c)
	}
}

// Classifier lazily yields enclosed cells in row-major order.
// It is single use; build a new one to scan again.
type Classifier struct {
	grid    *pipegrid.Grid
	members map[pipegrid.Position]struct{}

	row, column int
	inside      bool
	open        tile.Tile // corner that opened the current run; Ground when none
}

// New returns a Classifier over g. The loop is walked once here.
func New(g *pipegrid.Grid) *Classifier {
	return &Classifier{
		grid:    g,
		members: loop.Members(g),
		open:    tile.Ground,
	}
}

// Next returns the next enclosed cell, or false once the grid is exhausted.
func (c *Classifier) Next() (pipegrid.TilePosition, bool) {
	for c.row < c.grid.Rows() {
		for c.column < c.grid.Columns() {
			tp := c.grid.At(c.row, c.column)
			c.column++
			if _, on := c.members[tp.Position()]; !on {
				if c.inside {
					return tp, true
				}
				continue
			}
			c.cross(tp)
		}
		c.row++
		c.column = 0
		c.inside = false
		c.open = tile.Ground
	}
	return pipegrid.TilePosition{}, false
}

// cross updates the parity state for a loop cell.
func (c *Classifier) cross(tp pipegrid.TilePosition) {
	switch tp.Tile {
	case tile.Vertical:
		c.inside = !c.inside
	case tile.Horizontal:
	case tile.NorthEast, tile.SouthEast:
		if c.open != tile.Ground {
			c.impossible(tp)
		}
		c.open = tp.Tile
	case tile.NorthWest, tile.SouthWest:
		switch {
		case c.open == tile.NorthEast && tp.Tile == tile.SouthWest,
			c.open == tile.SouthEast && tp.Tile == tile.NorthWest:
			c.inside = !c.inside
		case c.open == tile.NorthEast && tp.Tile == tile.NorthWest,
			c.open == tile.SouthEast && tp.Tile == tile.SouthWest:
		default:
			c.impossible(tp)
		}
		c.open = tile.Ground
	default:
		c.impossible(tp)
	}
}

func (c *Classifier) impossible(tp pipegrid.TilePosition) {
	panic(fmt.Sprintf("interior: unexpected %s at (%d,%d) after open corner %s",
		tp.Tile.Name(), tp.Row, tp.Column, c.open.Name()))
}

// Collect returns every enclosed cell of g in row-major order.
func Collect(g *pipegrid.Grid) []pipegrid.TilePosition {
	var out []pipegrid.TilePosition
	c := New(g)
	for tp, ok := c.Next(); ok; tp, ok = c.Next() {
		out = append(out, tp)
	}
	return out
}

// Count returns the number of enclosed cells of g.
func Count(g *pipegrid.Grid) int {
	n := 0
	c := New(g)
	for _, ok := c.Next(); ok; _, ok = c.Next() {
		n++
	}
	return n
}

// Set returns the enclosed cells of g as a set.
func Set(g *pipegrid.Grid) map[pipegrid.Position]struct{} {
	set := make(map[pipegrid.Position]struct{})
	c := New(g)
	for tp, ok := c.Next(); ok; tp, ok = c.Next() {
		set[tp.Position()] = struct{}{}
	}
	return set
}

// Classify returns the class of every cell, indexed [row][column].
func Classify(g *pipegrid.Grid) [][]Class {
	out := make([][]Class, g.Rows())
	for r := range out {
		out[r] = make([]Class, g.Columns())
	}
	c := New(g)
	for p := range c.members {
		out[p.Row][p.Column] = Loop
	}
	for tp, ok := c.Next(); ok; tp, ok = c.Next() {
		out[tp.Row][tp.Column] = Enclosed
	}
	return out
}
