// Package pipegrid builds an immutable rectangular grid of pipe tiles from
// raw text and exposes the adjacency rules the loop algorithms walk on.
//
// What:
//
//   - Grid wraps a validated [][]tile.Tile with at least 3 rows and 3 columns.
//   - Exactly one Start cell is required; Build replaces it with the concrete
//     pipe shape implied by its two jointed neighbors.
//   - MovableNeighbors returns the two cells a pipe is jointed to, checking the
//     connection from both sides so unrelated adjacent pipes are never followed.
//
// Why:
//
//   - Resolving Start once lets every later algorithm treat the start cell as
//     an ordinary pipe.
//   - All structural problems surface from Build, before any traversal runs.
//
// Complexity:
//
//   - Build:            O(W×H) time and memory.
//   - MovableNeighbors: O(1).
//
// Errors (all wrap ErrInvalidInput and are returned as *InputError):
//
//   - tile.ErrInvalidCharacter: a rune outside the glyph set.
//   - ErrTooFewRows, ErrTooFewColumns: grid smaller than 3×3.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrNoStart, ErrMultipleStarts: Start count other than one.
//   - ErrUnresolvedStart: Start is not jointed to exactly two neighbors.
package pipegrid
