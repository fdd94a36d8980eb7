// File: pipegrid/example_test.go
package pipegrid_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ExampleParse shows the Start cell being resolved from its neighbors.
func ExampleParse() {
	g, err := pipegrid.Parse(`
.....
.S-7.
.|.|.
.L-J.
.....`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	start := g.Start()
	fmt.Printf("%dx%d grid, start at (%d,%d) is %s\n",
		g.Rows(), g.Columns(), start.Row, start.Column, start.Tile.Name())
	fmt.Println(g.MovableNeighbors(start.Position()))

	// Output:
	// 5x5 grid, start at (1,1) is SouthEast
	// [{1 2} {2 1}]
}

// ExampleBuild_errors shows how structural problems are reported.
func ExampleBuild_errors() {
	_, err := pipegrid.Build([]string{"S-7", "|.|", "L-S"})
	fmt.Println(err)
	fmt.Println(errors.Is(err, pipegrid.ErrInvalidInput), errors.Is(err, pipegrid.ErrMultipleStarts))

	// Output:
	// pipegrid: invalid input at row 2: second start tile at column 2
	// true true
}
