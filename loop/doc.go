// Package loop walks the single closed pipe loop of a pipegrid.Grid.
//
// What:
//
//   - Iterator is a lazy, single-use, pull-based walk over the loop. It yields
//     the start cell first, then steps to the jointed neighbor that is not the
//     cell just vacated, and stops the moment the next cell would be the start
//     again (the start is not yielded twice).
//   - Walk drives an Iterator to completion with optional hooks and returns
//     the full path together with the farthest cell from the start.
//
// State machine:
//
//	start ──Next()──▶ walking(current, previous) ──next is start──▶ done
//	                       │   ▲
//	                       └───┘ Next()
//
// The first step leaves the start through the first jointed direction in
// N, E, S, W order, so every walk over the same grid is identical.
//
// Why:
//
//   - The loop is a 2-regular cycle: never reversing into the predecessor is
//     enough to visit each loop cell exactly once.
//   - The loop length is always even; the farthest cell is (length+1)/2 steps
//     away from the start.
//
// Complexity (L = loop length):
//
//   - Iterator: O(1) per Next, O(L) for the full walk; O(1) memory.
//   - Walk, Collect, Members: O(L) time and memory.
//
// Errors:
//
//   - ErrOptionViolation: an invalid Option (e.g. negative step limit).
//   - ErrStepLimit:       the walk exceeded WithMaxSteps.
//   - Wrapped errors returned by an OnVisit hook.
//
// A broken grid (a loop cell without a forward neighbor) is a programming
// error and makes Next panic.
package loop
