package engine

import (
	"fmt"
	"strings"
)

// Grid is a square board of cells stored in row-major order.
type Grid struct {
	dimension int
	cells     []Cell
}

// NewGrid creates an empty grid with the given side length.
// Panics if dimension is not positive.
func NewGrid(dimension int) *Grid {
	if dimension < 1 {
		panic(fmt.Sprintf("engine: grid dimension must be positive, got %d", dimension))
	}
	return &Grid{
		dimension: dimension,
		cells:     make([]Cell, dimension*dimension),
	}
}

// Dimension returns the side length of the grid.
func (g *Grid) Dimension() int {
	return g.dimension
}

// index converts a coordinate to a flat index, panicking when out of range.
func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.dimension || col < 0 || col >= g.dimension {
		panic(fmt.Sprintf("engine: position (%d,%d) out of range for dimension %d", row, col, g.dimension))
	}
	return row*g.dimension + col
}

// Get returns the cell at (row, col).
func (g *Grid) Get(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// Set stores a cell at (row, col).
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[g.index(row, col)] = c
}

// At returns the cell at p.
func (g *Grid) At(p Position) Cell {
	return g.Get(p.Row, p.Col)
}

// EmptyCells returns all empty positions in row-major order.
func (g *Grid) EmptyCells() []Position {
	var empty []Position
	for row := range g.dimension {
		for col := range g.dimension {
			if g.Get(row, col).IsEmpty() {
				empty = append(empty, Pos(row, col))
			}
		}
	}
	return empty
}

// IsFull reports whether no empty cell remains.
func (g *Grid) IsFull() bool {
	for _, c := range g.cells {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Empty()
	}
}

// Values returns the board as a matrix of tile values, 0 for empty cells.
func (g *Grid) Values() [][]int {
	values := make([][]int, g.dimension)
	for row := range g.dimension {
		values[row] = make([]int, g.dimension)
		for col := range g.dimension {
			values[row][col] = g.Get(row, col).Value()
		}
	}
	return values
}

// Sum returns the total of all tile values on the board.
func (g *Grid) Sum() int {
	total := 0
	for _, c := range g.cells {
		total += c.Value()
	}
	return total
}

// MaxTile returns the largest tile value, or 0 for an empty board.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for _, c := range g.cells {
		maxVal = max(maxVal, c.Value())
	}
	return maxVal
}

// String renders the grid one row per line, "." for empty cells.
func (g *Grid) String() string {
	var b strings.Builder
	for row := range g.dimension {
		for col := range g.dimension {
			if col > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%5s", g.Get(row, col))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
