// SPDX-License-Identifier: MIT
// Package: pipeloop/builder
//
// impl_histogram.go - histogram polyomino loops.
//
// Contract:
//   • len(heights) ≥ 1 (else ErrTooFewColumns), every height ≥ 1 (else ErrBadHeight).
//   • Block (j,i) is inside iff j ≥ H − heights[i], H = max(heights).
//   • Lattice point (y,x) maps to cell (2y+1, 2x+1); a one-cell Ground margin
//     surrounds the loop, so the grid is (2H+3) × (2n+3).
//   • Every boundary side of an inside block contributes three cells to the loop.
//
// Complexity:
//   • Time:  O(n·H) blocks + O(n·H) cells.
//   • Space: O(n·H).

package builder

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pipeloop/tile"
)

const (
	methodHistogram       = "Histogram"
	methodRandomHistogram = "RandomHistogram"
	methodRectangle       = "Rectangle"
)

// Loop is a generated maze together with its closed-form answers.
type Loop struct {
	// Lines holds the grid rows, one glyph per cell.
	Lines []string
	// Area is the number of unit blocks inside the unscaled polygon.
	Area int
	// Perimeter is the number of unit block sides on the unscaled boundary.
	Perimeter int
}

// Text joins Lines with newlines.
func (l Loop) Text() string { return strings.Join(l.Lines, "\n") }

// LoopLength is the number of cells on the loop.
func (l Loop) LoopLength() int { return 2 * l.Perimeter }

// Steps is the distance from Start to the farthest loop cell.
func (l Loop) Steps() int { return l.Perimeter }

// Enclosed is the number of cells strictly inside the loop.
func (l Loop) Enclosed() int { return 4*l.Area - l.Perimeter + 1 }

// Rectangle returns a rectangular loop around width×height blocks.
func Rectangle(width, height int, opts ...Option) (Loop, error) {
	if width < 1 {
		return Loop{}, fmt.Errorf("%s: width=%d: %w", methodRectangle, width, ErrTooFewColumns)
	}
	heights := make([]int, width)
	for i := range heights {
		heights[i] = height
	}
	return Histogram(heights, opts...)
}

// RandomHistogram returns a histogram of n columns with heights drawn
// uniformly from [1, maxHeight]. Requires WithSeed or WithRand.
func RandomHistogram(n, maxHeight int, opts ...Option) (Loop, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return Loop{}, fmt.Errorf("%s: %w", methodRandomHistogram, ErrNeedRandSource)
	}
	if n < 1 {
		return Loop{}, fmt.Errorf("%s: n=%d: %w", methodRandomHistogram, n, ErrTooFewColumns)
	}
	if maxHeight < 1 {
		return Loop{}, fmt.Errorf("%s: maxHeight=%d: %w", methodRandomHistogram, maxHeight, ErrBadHeight)
	}
	heights := make([]int, n)
	for i := range heights {
		heights[i] = 1 + cfg.rng.Intn(maxHeight)
	}
	return histogram(heights, cfg)
}

// Histogram returns the loop around columns of the given heights.
func Histogram(heights []int, opts ...Option) (Loop, error) {
	return histogram(heights, newConfig(opts...))
}

func histogram(heights []int, cfg config) (Loop, error) {
	n := len(heights)
	if n < 1 {
		return Loop{}, fmt.Errorf("%s: %w", methodHistogram, ErrTooFewColumns)
	}
	h := 0
	for i, v := range heights {
		if v < 1 {
			return Loop{}, fmt.Errorf("%s: heights[%d]=%d: %w", methodHistogram, i, v, ErrBadHeight)
		}
		if v > h {
			h = v
		}
	}
	if cfg.randomStart && cfg.rng == nil {
		return Loop{}, fmt.Errorf("%s: random start: %w", methodHistogram, ErrNeedRandSource)
	}

	inside := func(j, i int) bool {
		return i >= 0 && i < n && j >= 0 && j < h && j >= h-heights[i]
	}

	rows, cols := 2*h+3, 2*n+3
	conn := make([][]uint8, rows)
	for r := range conn {
		conn[r] = make([]uint8, cols)
	}
	mark := func(r, c int, dirs ...tile.Direction) {
		for _, d := range dirs {
			conn[r][c] |= 1 << d
		}
	}
	// horizontal side from lattice (y,x) to (y,x+1)
	horizontal := func(y, x int) {
		r := 2*y + 1
		mark(r, 2*x+1, tile.East)
		mark(r, 2*x+2, tile.East, tile.West)
		mark(r, 2*x+3, tile.West)
	}
	// vertical side from lattice (y,x) to (y+1,x)
	vertical := func(y, x int) {
		c := 2*x + 1
		mark(2*y+1, c, tile.South)
		mark(2*y+2, c, tile.North, tile.South)
		mark(2*y+3, c, tile.North)
	}

	loop := Loop{}
	for j := 0; j < h; j++ {
		for i := 0; i < n; i++ {
			if !inside(j, i) {
				continue
			}
			loop.Area++
			if !inside(j-1, i) {
				horizontal(j, i)
				loop.Perimeter++
			}
			if !inside(j+1, i) {
				horizontal(j+1, i)
				loop.Perimeter++
			}
			if !inside(j, i-1) {
				vertical(j, i)
				loop.Perimeter++
			}
			if !inside(j, i+1) {
				vertical(j, i+1)
				loop.Perimeter++
			}
		}
	}

	// Resolve every marked cell into its pipe glyph.
	cells := make([][]byte, rows)
	onLoop := 0
	for r := range cells {
		cells[r] = make([]byte, cols)
		for c := range cells[r] {
			cells[r][c] = tile.Ground.String()[0]
			bits := conn[r][c]
			if bits == 0 {
				continue
			}
			var dirs []tile.Direction
			for _, d := range tile.Directions {
				if bits&(1<<d) != 0 {
					dirs = append(dirs, d)
				}
			}
			if len(dirs) != 2 {
				return Loop{}, fmt.Errorf("%s: cell (%d,%d) has %d openings", methodHistogram, r, c, len(dirs))
			}
			t, _ := tile.FromConnections(dirs[0], dirs[1])
			cells[r][c] = t.String()[0]
			onLoop++
		}
	}

	// Place Start.
	k := cfg.startIndex % onLoop
	if cfg.randomStart {
		k = cfg.rng.Intn(onLoop)
	}
	seen := 0
	for r := range cells {
		for c := range cells[r] {
			if conn[r][c] == 0 {
				continue
			}
			if seen == k {
				cells[r][c] = tile.Start.String()[0]
			}
			seen++
		}
	}

	loop.Lines = make([]string, rows)
	for r := range cells {
		loop.Lines[r] = string(cells[r])
	}
	return loop, nil
}
