package tile

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter indicates a rune that does not name any tile.
var ErrInvalidCharacter = errors.New("tile: invalid character")

// Direction is one of the four orthogonal compass directions.
type Direction uint8

const (
	// North points to the previous row.
	North Direction = iota
	// East points to the next column.
	East
	// South points to the next row.
	South
	// West points to the previous column.
	West
)

// Directions lists all directions in probing order: N, E, S, W.
// Every neighbor scan in this module uses this order, which keeps
// traversals deterministic.
var Directions = [4]Direction{North, East, South, West}

// Opposite returns the direction pointing back the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Offset returns the row and column deltas of a single step in d.
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		panic(fmt.Sprintf("tile: unknown direction %d", d))
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Tile is a single grid cell shape.
type Tile uint8

const (
	// Start marks the loop entry; its shape is unknown until resolved.
	Start Tile = iota
	// Vertical connects North and South.
	Vertical
	// Horizontal connects East and West.
	Horizontal
	// NorthEast connects North and East.
	NorthEast
	// NorthWest connects North and West.
	NorthWest
	// SouthWest connects South and West.
	SouthWest
	// SouthEast connects South and East.
	SouthEast
	// Ground has no connections.
	Ground
)

// All lists every tile variant in declaration order.
var All = [8]Tile{Start, Vertical, Horizontal, NorthEast, NorthWest, SouthWest, SouthEast, Ground}
