// Package engine implements the rules of a 2048-style tile-merging board:
// the per-line merge pipeline, move application with score tracking, and the
// queue that serializes and debounces directional moves.
//
// The engine is single-threaded. All mutation happens on the caller's
// goroutine; the only suspension point is the debounce continuation, which is
// delivered through an injected Scheduler.
package engine

import "fmt"

// Cell is one board square. The zero value is an empty cell.
type Cell struct {
	value int // 0 means empty
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// Tile returns a cell occupied by a tile with the given value.
// Panics if value is not positive.
func Tile(value int) Cell {
	if value <= 0 {
		panic(fmt.Sprintf("engine: tile value must be positive, got %d", value))
	}
	return Cell{value: value}
}

// IsEmpty reports whether the cell holds no tile.
func (c Cell) IsEmpty() bool {
	return c.value == 0
}

// Value returns the tile value, or 0 for an empty cell.
func (c Cell) Value() int {
	return c.value
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	if c.IsEmpty() {
		return "."
	}
	return fmt.Sprintf("%d", c.value)
}

// Position addresses a cell by row and column, both zero-based.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
