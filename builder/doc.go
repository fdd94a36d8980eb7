// Package builder generates valid pipe-maze inputs with known answers.
//
// Every constructor traces the boundary of a histogram polyomino (columns of
// unit blocks standing on a common base), scales it by two so that boundary
// corners and edge midpoints land on distinct cells, and emits the grid text
// with exactly one Start glyph on the loop. The scaled loop is simple and has
// no pinch points, so the results are always accepted by pipegrid.Build.
//
// Known answers (A = block area, P = block perimeter):
//
//   - loop length      = 2·P
//   - farthest point   = P
//   - enclosed tiles   = 4·A − P + 1   (Pick's theorem on the scaled polygon)
//
// Constructors:
//
//   - Rectangle(width, height): a single rectangular loop.
//   - Histogram(heights):       columns with the given heights (each ≥ 1).
//   - RandomHistogram(n, max):  n columns with random heights in [1, max].
//
// Options:
//
//   - WithSeed / WithRand: RNG used by RandomHistogram and random start placement.
//   - WithStartIndex(k):   put Start on the k-th loop cell in row-major order.
//   - WithRandomStart():   put Start on a loop cell drawn from the RNG.
//
// Errors:
//
//   - ErrTooFewColumns: fewer than one column requested.
//   - ErrBadHeight:     a column height below one.
//   - ErrNeedRandSource: random behavior requested without an RNG.
package builder
