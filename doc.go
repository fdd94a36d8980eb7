// Package pipeloop solves pipe-maze loop puzzles.
//
// A maze is a rectangular grid of tiles: straight pipes (| -), bends
// (L J 7 F), ground (.) and exactly one start (S) whose shape is inferred from
// its neighbours. The start lies on a single closed loop of pipes. Two
// questions are answered about that loop:
//
//	Part one: how many steps along the loop is the tile farthest from S?
//	Part two: how many grid cells does the loop enclose?
//
// Packages, leaves first:
//
//	tile/       tile glyphs, connection directions
//	pipegrid/   parsing, validation, start resolution, movable neighbours
//	loop/       loop iterator and Walk with visit hooks
//	interior/   scanline parity classifier for enclosed cells
//	puzzle/     both answers from raw text
//	render/     I/O diagnostic diagram
//	builder/    generated loops with known answers, for tests
//	cmd/pipeloop  command-line front end with YAML config and solution store
//
// Quick example (5×5):
//
//	.....
//	.S-7.     steps to furthest point: 4
//	.|.|.     count of enclosed tiles: 1
//	.L-J.
//	.....
package pipeloop
