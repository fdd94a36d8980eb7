// Package puzzle answers the two questions asked about a pipe maze: how far
// the farthest loop cell is from the start, and how many cells the loop encloses.
package puzzle

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/interior"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Part selects one of the two questions.
type Part int

const (
	// PartOne asks for the steps to the farthest loop cell.
	PartOne Part = iota + 1
	// PartTwo asks for the number of enclosed cells.
	PartTwo
)

// Label returns the human-readable name of the answer.
func (p Part) Label() string {
	switch p {
	case PartOne:
		return "steps to furthest point"
	case PartTwo:
		return "count of enclosed tiles"
	default:
		return fmt.Sprintf("part %d", int(p))
	}
}

// Answer bundles both results for one input.
type Answer struct {
	Rows     int
	Columns  int
	Steps    int
	Enclosed int
}

// StepsToFarthestPoint returns the distance from the start to the farthest loop cell.
func StepsToFarthestPoint(g *pipegrid.Grid) int {
	return (loop.Length(g) + 1) / 2
}

// EnclosedTileCount returns the number of cells strictly inside the loop.
func EnclosedTileCount(g *pipegrid.Grid) int {
	return interior.Count(g)
}

// Solve parses text and answers both parts.
func Solve(text string) (Answer, error) {
	g, err := pipegrid.Parse(text)
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		Rows:     g.Rows(),
		Columns:  g.Columns(),
		Steps:    StepsToFarthestPoint(g),
		Enclosed: EnclosedTileCount(g),
	}, nil
}

// SolvePart parses text and answers a single part.
func SolvePart(text string, part Part) (int, error) {
	g, err := pipegrid.Parse(text)
	if err != nil {
		return 0, err
	}
	switch part {
	case PartOne:
		return StepsToFarthestPoint(g), nil
	case PartTwo:
		return EnclosedTileCount(g), nil
	default:
		return 0, fmt.Errorf("puzzle: unknown part %d", int(part))
	}
}

// Value returns the answer to part.
func (a Answer) Value(part Part) int {
	if part == PartTwo {
		return a.Enclosed
	}
	return a.Steps
}
