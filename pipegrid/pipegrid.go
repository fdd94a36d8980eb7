package pipegrid

import (
	"strings"

	"github.com/katalvlaran/pipeloop/tile"
)

// Parse trims the text blob, splits it into lines, trims every line and
// builds a Grid from the result. A blank line inside the blob becomes an
// empty row and is rejected as ErrNonRectangular.
func Parse(text string) (*Grid, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalid(-1, ErrTooFewRows, "the input is empty")
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return Build(lines)
}

// Build parses and validates rows of glyphs and resolves the Start cell.
// No partial Grid is ever returned: on error the result is nil.
// Complexity: O(W×H) time and memory.
func Build(rows []string) (*Grid, error) {
	// 1) Parse every glyph, reporting the originating row.
	tiles := make([][]tile.Tile, len(rows))
	for r, line := range rows {
		row := make([]tile.Tile, 0, len(line))
		for _, ch := range line {
			t, err := tile.Parse(ch)
			if err != nil {
				return nil, invalid(r, err, "invalid tile char %q", ch)
			}
			row = append(row, t)
		}
		tiles[r] = row
	}

	// 2) Validate the global shape.
	start, err := validate(tiles)
	if err != nil {
		return nil, err
	}

	g := &Grid{
		rows:    len(tiles),
		columns: len(tiles[0]),
		tiles:   tiles,
		start:   start,
	}

	// 3) Replace Start with its concrete shape.
	if err := g.resolveStart(); err != nil {
		return nil, err
	}
	return g, nil
}

// validate checks the size, rectangularity and Start-count invariants and
// returns the Start position.
func validate(tiles [][]tile.Tile) (Position, error) {
	if len(tiles) < MinSize {
		return Position{}, invalid(-1, ErrTooFewRows, "the grid has %d rows, need at least %d", len(tiles), MinSize)
	}
	width := len(tiles[0])
	found := false
	var start Position
	for r, row := range tiles {
		if len(row) != width {
			return Position{}, invalid(r, ErrNonRectangular, "row has %d tiles, want %d", len(row), width)
		}
		for c, t := range row {
			if t != tile.Start {
				continue
			}
			if found {
				return Position{}, invalid(r, ErrMultipleStarts, "second start tile at column %d", c)
			}
			found = true
			start = Position{Row: r, Column: c}
		}
	}
	if width < MinSize {
		return Position{}, invalid(-1, ErrTooFewColumns, "the grid has %d columns, need at least %d", width, MinSize)
	}
	if !found {
		return Position{}, invalid(-1, ErrNoStart, "the grid must have a single start tile")
	}
	return start, nil
}

// resolveStart inspects the four neighbors of the Start cell and replaces it
// with the pipe shape whose openings meet neighbors that connect back.
func (g *Grid) resolveStart() error {
	dirs := make([]tile.Direction, 0, 4)
	for _, d := range tile.Directions {
		n := g.start.Step(d)
		if g.InBounds(n.Row, n.Column) && g.tiles[n.Row][n.Column].Connects(d.Opposite()) {
			dirs = append(dirs, d)
		}
	}
	if len(dirs) != 2 {
		return invalid(g.start.Row, ErrUnresolvedStart,
			"start tile at column %d is jointed to %d neighbors, want 2", g.start.Column, len(dirs))
	}
	shape, ok := tile.FromConnections(dirs[0], dirs[1])
	if !ok {
		return invalid(g.start.Row, ErrUnresolvedStart, "unsupported pipe connection pattern")
	}
	g.tiles[g.start.Row][g.start.Column] = shape
	return nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// InBounds reports whether (row, column) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, column int) bool {
	return row >= 0 && row < g.rows && column >= 0 && column < g.columns
}

// TileAt returns the shape at (row, column); the start cell reports its resolved shape.
// Panics if the cell is out of bounds.
func (g *Grid) TileAt(row, column int) tile.Tile {
	return g.tiles[row][column]
}

// At returns the TilePosition of (row, column).
func (g *Grid) At(row, column int) TilePosition {
	return TilePosition{Tile: g.tiles[row][column], Row: row, Column: column}
}

// Start returns the start cell with its resolved shape.
func (g *Grid) Start() TilePosition {
	return g.At(g.start.Row, g.start.Column)
}

// IsStart reports whether p is the start cell.
func (g *Grid) IsStart(p Position) bool {
	return p == g.start
}

// String renders the glyph layer, one line per row, with the start cell
// written back as 'S'. Parse(g.String()) reproduces g.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.columns + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.columns; c++ {
			if g.start.Row == r && g.start.Column == c {
				sb.WriteString(tile.Start.String())
				continue
			}
			sb.WriteString(g.tiles[r][c].String())
		}
	}
	return sb.String()
}
