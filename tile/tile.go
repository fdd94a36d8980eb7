package tile

import "fmt"

// Parse maps a glyph to its Tile.
// Returns an error wrapping ErrInvalidCharacter for any other rune.
func Parse(r rune) (Tile, error) {
	switch r {
	case 'S':
		return Start, nil
	case '|':
		return Vertical, nil
	case '-':
		return Horizontal, nil
	case 'L':
		return NorthEast, nil
	case 'J':
		return NorthWest, nil
	case '7':
		return SouthWest, nil
	case 'F':
		return SouthEast, nil
	case '.':
		return Ground, nil
	default:
		return Ground, fmt.Errorf("%w %q", ErrInvalidCharacter, r)
	}
}

// String returns the glyph of t.
func (t Tile) String() string {
	switch t {
	case Start:
		return "S"
	case Vertical:
		return "|"
	case Horizontal:
		return "-"
	case NorthEast:
		return "L"
	case NorthWest:
		return "J"
	case SouthWest:
		return "7"
	case SouthEast:
		return "F"
	case Ground:
		return "."
	default:
		return fmt.Sprintf("Tile(%d)", t)
	}
}

// Name returns the variant name of t, e.g. "NorthEast".
func (t Tile) Name() string {
	switch t {
	case Start:
		return "Start"
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	case NorthEast:
		return "NorthEast"
	case NorthWest:
		return "NorthWest"
	case SouthWest:
		return "SouthWest"
	case SouthEast:
		return "SouthEast"
	case Ground:
		return "Ground"
	default:
		return fmt.Sprintf("Tile(%d)", t)
	}
}

// ConnectsNorth reports whether t has an opening towards the previous row.
func (t Tile) ConnectsNorth() bool {
	return t == Vertical || t == NorthEast || t == NorthWest
}

// ConnectsEast reports whether t has an opening towards the next column.
func (t Tile) ConnectsEast() bool {
	return t == Horizontal || t == NorthEast || t == SouthEast
}

// ConnectsSouth reports whether t has an opening towards the next row.
func (t Tile) ConnectsSouth() bool {
	return t == Vertical || t == SouthWest || t == SouthEast
}

// ConnectsWest reports whether t has an opening towards the previous column.
func (t Tile) ConnectsWest() bool {
	return t == Horizontal || t == NorthWest || t == SouthWest
}

// Connects reports whether t has an opening in direction d.
func (t Tile) Connects(d Direction) bool {
	switch d {
	case North:
		return t.ConnectsNorth()
	case East:
		return t.ConnectsEast()
	case South:
		return t.ConnectsSouth()
	case West:
		return t.ConnectsWest()
	default:
		return false
	}
}

// Connections returns the openings of t in N, E, S, W order.
// Pipes return two directions; Start and Ground return none.
func (t Tile) Connections() []Direction {
	dirs := make([]Direction, 0, 2)
	for _, d := range Directions {
		if t.Connects(d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// IsPipe reports whether t is one of the six concrete pipe shapes.
func (t Tile) IsPipe() bool {
	return t >= Vertical && t <= SouthEast
}

// IsCorner reports whether t bends between two perpendicular directions.
func (t Tile) IsCorner() bool {
	return t >= NorthEast && t <= SouthEast
}

// FromConnections returns the pipe shape whose openings are exactly a and b.
// The pair is unordered. ok is false when a == b or either is unknown.
func FromConnections(a, b Direction) (t Tile, ok bool) {
	if a > b {
		a, b = b, a
	}
	switch {
	case a == North && b == South:
		return Vertical, true
	case a == East && b == West:
		return Horizontal, true
	case a == North && b == East:
		return NorthEast, true
	case a == North && b == West:
		return NorthWest, true
	case a == South && b == West:
		return SouthWest, true
	case a == East && b == South:
		return SouthEast, true
	default:
		return Ground, false
	}
}
