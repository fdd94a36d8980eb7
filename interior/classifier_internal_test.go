package interior

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/tile"
)

// TestCross_CornerPairs drives the parity state machine directly, including
// the corner sequences a valid grid never produces.
func TestCross_CornerPairs(t *testing.T) {
	at := func(tl tile.Tile) pipegrid.TilePosition {
		return pipegrid.TilePosition{Tile: tl}
	}
	cases := []struct {
		open, close tile.Tile
		toggles     bool
	}{
		{tile.NorthEast, tile.SouthWest, true},
		{tile.SouthEast, tile.NorthWest, true},
		{tile.NorthEast, tile.NorthWest, false},
		{tile.SouthEast, tile.SouthWest, false},
	}
	for _, tc := range cases {
		c := &Classifier{open: tile.Ground}
		c.cross(at(tc.open))
		assert.Equal(t, tc.open, c.open)
		c.cross(at(tile.Horizontal))
		c.cross(at(tc.close))
		assert.Equal(t, tc.toggles, c.inside, "%s…%s", tc.open, tc.close)
		assert.Equal(t, tile.Ground, c.open)
	}

	// a run cannot open with a west-facing corner
	assert.Panics(t, func() {
		c := &Classifier{open: tile.Ground}
		c.cross(at(tile.NorthWest))
	})
	// nor open twice
	assert.Panics(t, func() {
		c := &Classifier{open: tile.NorthEast}
		c.cross(at(tile.SouthEast))
	})
	// a Ground cell on the loop means membership is broken
	assert.Panics(t, func() {
		c := &Classifier{open: tile.Ground}
		c.cross(at(tile.Ground))
	})
}
