// File: loop/example_test.go
package loop_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ExampleIterator walks the smallest possible loop one cell at a time.
func ExampleIterator() {
	g, _ := pipegrid.Parse(`
S7.
LJ.
...`)
	it := loop.New(g)
	for tp, ok := it.Next(); ok; tp, ok = it.Next() {
		fmt.Printf("(%d,%d) %s\n", tp.Row, tp.Column, tp.Tile)
	}

	// Output:
	// (0,0) F
	// (0,1) 7
	// (1,1) J
	// (1,0) L
}

// ExampleWalk reports the farthest cell of a square loop.
func ExampleWalk() {
	g, _ := pipegrid.Parse(`
.....
.S-7.
.|.|.
.L-J.
.....`)
	res, err := loop.Walk(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("loop length %d, farthest (%d,%d) at %d steps\n",
		len(res.Path), res.Farthest.Row, res.Farthest.Column, res.FarthestSteps)

	// Output:
	// loop length 8, farthest (3,3) at 4 steps
}
