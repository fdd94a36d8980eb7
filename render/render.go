// Package render draws a diagnostic view of a pipe maze: loop cells keep
// their glyph, enclosed cells become 'I' and every other cell becomes 'O'.
//
//	OOOOO
//	OS-7O
//	O|I|O
//	OL-JO
//	OOOOO
//
// The start cell is drawn as 'S' so that the glyph layer of a diagram
// (see Glyphs) parses back into a grid with the same loop.
package render

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/pipeloop/interior"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/tile"
)

// Overlay glyphs.
const (
	EnclosedGlyph = 'I'
	ExteriorGlyph = 'O'
)

// Write renders g to w, one line per row, each line terminated by '\n'.
func Write(w io.Writer, g *pipegrid.Grid) error {
	bw := bufio.NewWriter(w)
	classes := interior.Classify(g)
	for r, row := range classes {
		for c, cl := range row {
			var err error
			switch {
			case cl == interior.Enclosed:
				err = bw.WriteByte(EnclosedGlyph)
			case cl == interior.Exterior:
				err = bw.WriteByte(ExteriorGlyph)
			case g.IsStart(pipegrid.Position{Row: r, Column: c}):
				_, err = bw.WriteString(tile.Start.String())
			default:
				_, err = bw.WriteString(g.TileAt(r, c).String())
			}
			if err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Diagram returns the rendering of g as a string.
func Diagram(g *pipegrid.Grid) string {
	var sb strings.Builder
	_ = Write(&sb, g) // strings.Builder never fails
	return sb.String()
}

// Glyphs strips the overlay from a diagram, turning 'I' and 'O' into ground.
func Glyphs(diagram string) string {
	return strings.Map(func(r rune) rune {
		if r == EnclosedGlyph || r == ExteriorGlyph {
			return '.'
		}
		return r
	}, diagram)
}
