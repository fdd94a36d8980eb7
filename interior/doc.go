// Package interior classifies the cells of a pipe maze as enclosed by the
// loop or exterior to it, using a scanline crossing-parity rule.
//
// Algorithm (per row, left to right; inside=false and no open corner at row start):
//
//   - Non-loop cell:     enclosed iff inside.
//   - '|':               toggle inside.
//   - '-':               nothing; a horizontal run does not cross the row.
//   - 'L' or 'F':        open a horizontal run, remember the corner.
//   - 'J' or '7':        close the run opened before it:
//     L…7 and F…J cross the row (toggle); L…J and F…7 bend back (no toggle).
//
// Any other corner sequence cannot occur on a valid grid and panics.
//
// Determinism: the classifier only reads the Grid and a loop membership set,
// so repeated runs over the same Grid produce identical results.
//
// Complexity:
//
//   - New:     O(L) to materialize loop membership.
//   - Full scan (Collect, Count, Set, Classify): O(W×H) time.
package interior
