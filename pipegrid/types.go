package pipegrid

import "github.com/katalvlaran/pipeloop/tile"

// MinSize is the minimum number of rows and of columns a Grid accepts.
const MinSize = 3

// Position identifies a cell by row and column.
type Position struct {
	Row, Column int
}

// Step returns the neighboring position one step in d. It may be out of bounds.
func (p Position) Step(d tile.Direction) Position {
	dr, dc := d.Offset()
	return Position{Row: p.Row + dr, Column: p.Column + dc}
}

// TilePosition pairs a cell with its (resolved) shape.
// Two TilePositions are equal iff tile, row and column all match,
// so the type is usable as a map key.
type TilePosition struct {
	Tile   tile.Tile
	Row    int
	Column int
}

// Position drops the tile and returns the cell coordinates.
func (tp TilePosition) Position() Position {
	return Position{Row: tp.Row, Column: tp.Column}
}

// Grid is a validated pipe maze. It is immutable once built.
// tiles[row][column] holds the shape; the Start cell already holds its
// resolved pipe shape, and start records where it was.
type Grid struct {
	rows, columns int
	tiles         [][]tile.Tile
	start         Position
}
