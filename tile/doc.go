// Package tile defines the catalog of pipe shapes found in a pipe-maze grid
// and the connection rules between them.
//
// What:
//
//   - Tile is a closed set of eight variants: Start, Vertical, Horizontal,
//     NorthEast, NorthWest, SouthWest, SouthEast and Ground.
//   - Every pipe variant connects exactly two of the four Directions.
//   - Ground connects to nothing; Start connects to nothing until the grid
//     resolves it into one of the six pipe shapes.
//
// Glyphs:
//
//	S  Start        |  Vertical     -  Horizontal   .  Ground
//	L  NorthEast    J  NorthWest    7  SouthWest    F  SouthEast
//
// Quick ASCII example of the four corners:
//
//	│      │
//	└─ L  ─┘ J    ─┐ 7   ┌─ F
//	               │     │
//
// Errors:
//
//   - ErrInvalidCharacter: Parse received a rune outside the glyph set.
//
// All functions are pure; Tile and Direction are plain value types.
package tile
