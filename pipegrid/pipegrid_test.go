package pipegrid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/builder"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/tile"
)

//----------------------------------------------------------------------------//
// Build and Parse
//----------------------------------------------------------------------------//

// TestBuild_ComplexLoop parses the corner-heavy example and checks every resolved tile.
func TestBuild_ComplexLoop(t *testing.T) {
	g, err := pipegrid.Parse(`
7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ`)
	require.NoError(t, err)

	want := [][]tile.Tile{
		{tile.SouthWest, tile.Horizontal, tile.SouthEast, tile.SouthWest, tile.Horizontal},
		{tile.Ground, tile.SouthEast, tile.NorthWest, tile.Vertical, tile.SouthWest},
		{tile.SouthEast, tile.NorthWest, tile.NorthEast, tile.NorthEast, tile.SouthWest},
		{tile.Vertical, tile.SouthEast, tile.Horizontal, tile.Horizontal, tile.NorthWest},
		{tile.NorthEast, tile.NorthWest, tile.Ground, tile.NorthEast, tile.NorthWest},
	}
	require.Equal(t, 5, g.Rows())
	require.Equal(t, 5, g.Columns())
	for r := range want {
		for c := range want[r] {
			assert.Equal(t, want[r][c], g.TileAt(r, c), "cell (%d,%d)", r, c)
		}
	}
	assert.Equal(t, pipegrid.TilePosition{Tile: tile.SouthEast, Row: 2, Column: 0}, g.Start())
	assert.True(t, g.IsStart(pipegrid.Position{Row: 2, Column: 0}))
}

// TestBuild_StartResolution checks each of the six shapes Start can resolve to.
func TestBuild_StartResolution(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		want tile.Tile
	}{
		{"SouthEast", []string{"S-7", "|.|", "L-J"}, tile.SouthEast},
		{"SouthWest", []string{"F-S", "|.|", "L-J"}, tile.SouthWest},
		{"NorthEast", []string{"F-7", "|.|", "S-J"}, tile.NorthEast},
		{"NorthWest", []string{"F-7", "|.|", "L-S"}, tile.NorthWest},
		{"Horizontal", []string{"FS7", "|.|", "L-J"}, tile.Horizontal},
		{"Vertical", []string{"F-7", "S.|", "L-J"}, tile.Vertical},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := pipegrid.Build(tc.rows)
			require.NoError(t, err)
			assert.Equal(t, tc.want, g.Start().Tile)
		})
	}
}

// TestBuild_StartIgnoresUnjointedNeighbors places junk pipes around Start that
// touch it without opening towards it.
func TestBuild_StartIgnoresUnjointedNeighbors(t *testing.T) {
	g, err := pipegrid.Parse(`
-L|F7
7S-7|
L|7||
-L-J|
L|-JF`)
	require.NoError(t, err)
	assert.Equal(t, tile.SouthEast, g.Start().Tile)
}

// TestBuild_Errors verifies every structural rejection wraps ErrInvalidInput
// together with its specific sentinel.
func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		cause error
		row   int
	}{
		{"InvalidChar", []string{"S-7", "|X|", "L-J"}, tile.ErrInvalidCharacter, 1},
		{"TooFewRows", []string{"S-7", "L-J"}, pipegrid.ErrTooFewRows, -1},
		{"TooFewColumns", []string{"S7", "||", "LJ"}, pipegrid.ErrTooFewColumns, -1},
		{"Ragged", []string{"S-7", "|.|.", "L-J"}, pipegrid.ErrNonRectangular, 1},
		{"BlankRow", []string{"S-7", "", "L-J"}, pipegrid.ErrNonRectangular, 1},
		{"NoStart", []string{"F-7", "|.|", "L-J"}, pipegrid.ErrNoStart, -1},
		{"TwoStarts", []string{"S-7", "|.|", "L-S"}, pipegrid.ErrMultipleStarts, 2},
		{"DeadEndStart", []string{"S..", "...", "..."}, pipegrid.ErrUnresolvedStart, 0},
		{"ThreeWayStart", []string{".|.", "-S-", "..."}, pipegrid.ErrUnresolvedStart, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := pipegrid.Build(tc.rows)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, pipegrid.ErrInvalidInput), "want ErrInvalidInput, got %v", err)
			assert.True(t, errors.Is(err, tc.cause), "want %v, got %v", tc.cause, err)

			var ie *pipegrid.InputError
			require.True(t, errors.As(err, &ie))
			assert.Equal(t, tc.row, ie.Row)
			assert.NotEmpty(t, ie.Reason)
		})
	}
}

// TestParse_Trimming checks blob and per-line whitespace handling.
func TestParse_Trimming(t *testing.T) {
	g, err := pipegrid.Parse("\n\n  .....\r\n  .S-7.\r\n  .|.|.\n  .L-J.\n  .....  \n\n")
	require.NoError(t, err)
	assert.Equal(t, 5, g.Rows())
	assert.Equal(t, 5, g.Columns())

	_, err = pipegrid.Parse("   \n  ")
	assert.True(t, errors.Is(err, pipegrid.ErrInvalidInput))

	_, err = pipegrid.Parse(".....\n.S-7.\n\n.|.|.\n.L-J.")
	assert.True(t, errors.Is(err, pipegrid.ErrNonRectangular))
}

// TestString_RoundTrip ensures the glyph layer re-parses into an equal Grid.
func TestString_RoundTrip(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		l, err := builder.RandomHistogram(8, 5, builder.WithSeed(seed), builder.WithRandomStart())
		require.NoError(t, err)

		g, err := pipegrid.Build(l.Lines)
		require.NoError(t, err)
		assert.Equal(t, l.Text(), g.String())

		again, err := pipegrid.Parse(g.String())
		require.NoError(t, err)
		assert.Equal(t, g, again)
	}
}

//----------------------------------------------------------------------------//
// Neighbors
//----------------------------------------------------------------------------//

// TestMovableNeighbors_ExactlyTwo checks the invariant on every loop cell of
// random loops; ground cells must panic.
func TestMovableNeighbors_ExactlyTwo(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		l, err := builder.RandomHistogram(7, 6, builder.WithSeed(seed), builder.WithRandomStart())
		require.NoError(t, err)
		g, err := pipegrid.Build(l.Lines)
		require.NoError(t, err)

		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Columns(); c++ {
				p := pipegrid.Position{Row: r, Column: c}
				if g.TileAt(r, c) == tile.Ground {
					assert.Panics(t, func() { g.MovableNeighbors(p) })
					continue
				}
				nbrs := g.MovableNeighbors(p)
				assert.NotEqual(t, nbrs[0], nbrs[1])
				for _, n := range nbrs {
					assert.True(t, g.InBounds(n.Row, n.Column))
					back := g.MovableNeighbors(n)
					assert.Contains(t, back[:], p, "neighbor %v of %v does not link back", n, p)
				}
			}
		}
	}
}

// TestMovableNeighbors_SkipsAdjacentJunk verifies a pipe next to an unrelated
// segment only reports jointed cells.
func TestMovableNeighbors_SkipsAdjacentJunk(t *testing.T) {
	g, err := pipegrid.Parse(`
F-7
SFJ
LJJ`)
	require.NoError(t, err)

	// (1,1) F is jointed East to J and South to J, not North to '-' or West to S.
	got := g.MovableNeighbors(pipegrid.Position{Row: 1, Column: 1})
	assert.Equal(t, [2]pipegrid.Position{{Row: 1, Column: 2}, {Row: 2, Column: 1}}, got)
}

// TestInBounds checks the four borders.
func TestInBounds(t *testing.T) {
	l, err := builder.Rectangle(1, 1)
	require.NoError(t, err)
	g, err := pipegrid.Build(l.Lines)
	require.NoError(t, err)

	for _, rc := range [][2]int{{0, 0}, {4, 4}, {2, 3}} {
		assert.True(t, g.InBounds(rc[0], rc[1]), "%v", rc)
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		assert.False(t, g.InBounds(rc[0], rc[1]), "%v", rc)
	}
}
