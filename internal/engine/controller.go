package engine

import (
	"fmt"
	"math/rand"
)

const (
	// MinDimension is the smallest supported board side.
	MinDimension = 2
	// DefaultDimension is the classic 4x4 board.
	DefaultDimension = 4
	// MinWinThreshold is the smallest supported winning tile.
	MinWinThreshold = 8
	// DefaultWinThreshold is the classic winning tile.
	DefaultWinThreshold = 2048
)

// Controller owns the grid and score and applies whole-board moves.
type Controller struct {
	dimension int
	threshold int
	grid      *Grid
	score     int
	observer  Observer
	rng       *rand.Rand
}

// NewController creates a controller with an empty board. Dimension is clamped
// to at least MinDimension and threshold to at least MinWinThreshold.
// A nil observer is replaced by NopObserver.
func NewController(dimension, threshold int, observer Observer, opts ...Option) *Controller {
	o := buildOptions(opts)
	dimension = max(dimension, MinDimension)
	threshold = max(threshold, MinWinThreshold)
	if observer == nil {
		observer = NopObserver{}
	}

	return &Controller{
		dimension: dimension,
		threshold: threshold,
		grid:      NewGrid(dimension),
		observer:  observer,
		rng:       o.rng,
	}
}

// Dimension returns the board side length.
func (c *Controller) Dimension() int {
	return c.dimension
}

// Threshold returns the winning tile value.
func (c *Controller) Threshold() int {
	return c.threshold
}

// Score returns the running score.
func (c *Controller) Score() int {
	return c.score
}

// Grid returns the board. Callers must treat it as read-only.
func (c *Controller) Grid() *Grid {
	return c.grid
}

func (c *Controller) setScore(score int) {
	c.score = score
	c.observer.ScoreChanged(score)
}

// lineCoordinates lists the positions of line i ordered toward the
// destination end of a move in direction dir.
func (c *Controller) lineCoordinates(dir Direction, i int) []Position {
	n := c.dimension
	coords := make([]Position, n)
	for k := range n {
		switch dir {
		case Up:
			coords[k] = Pos(k, i)
		case Down:
			coords[k] = Pos(n-k-1, i)
		case Left:
			coords[k] = Pos(i, k)
		case Right:
			coords[k] = Pos(i, n-k-1)
		default:
			panic(fmt.Sprintf("engine: invalid direction %d", dir))
		}
	}
	return coords
}

// PerformMove slides every line toward dir, applying merges, updating the
// score and notifying the observer. It returns true if any tile moved.
func (c *Controller) PerformMove(dir Direction) bool {
	changed := false
	for i := range c.dimension {
		coords := c.lineCoordinates(dir, i)
		line := make([]Cell, len(coords))
		for k, p := range coords {
			line[k] = c.grid.At(p)
		}

		orders := Merge(line)
		if len(orders) > 0 {
			changed = true
		}
		c.apply(coords, orders)
	}
	return changed
}

// apply writes one line's move orders back to the grid.
func (c *Controller) apply(coords []Position, orders []MoveOrder) {
	for _, order := range orders {
		switch o := order.(type) {
		case SingleMove:
			from, to := coords[o.Source], coords[o.Dest]
			if o.Merged {
				c.setScore(c.score + o.Value)
			}
			c.grid.Set(from.Row, from.Col, Empty())
			c.grid.Set(to.Row, to.Col, Tile(o.Value))
			c.observer.TileMoved(from, to, o.Value)
		case DoubleMove:
			from1, from2, to := coords[o.Source1], coords[o.Source2], coords[o.Dest]
			c.setScore(c.score + o.Value)
			c.grid.Set(from1.Row, from1.Col, Empty())
			c.grid.Set(from2.Row, from2.Col, Empty())
			c.grid.Set(to.Row, to.Col, Tile(o.Value))
			c.observer.TilesMerged([2]Position{from1, from2}, to, o.Value)
		default:
			panic(fmt.Sprintf("engine: unexpected move order %T", order))
		}
	}
}

// InsertTile places a tile at p if that cell is empty. It reports whether the
// tile was placed.
func (c *Controller) InsertTile(p Position, value int) bool {
	if !c.grid.At(p).IsEmpty() {
		return false
	}
	c.grid.Set(p.Row, p.Col, Tile(value))
	c.observer.TileInserted(p, value)
	return true
}

// InsertTileAtRandomLocation places a tile in an empty cell chosen uniformly
// at random. It does nothing when the board is full.
func (c *Controller) InsertTileAtRandomLocation(value int) {
	open := c.grid.EmptyCells()
	if len(open) == 0 {
		return
	}
	c.InsertTile(open[c.rng.Intn(len(open))], value)
}

// HasWon reports whether some tile has reached the threshold, returning the
// first such position in row-major order.
func (c *Controller) HasWon() (Position, bool) {
	for row := range c.dimension {
		for col := range c.dimension {
			if c.grid.Get(row, col).Value() >= c.threshold {
				return Pos(row, col), true
			}
		}
	}
	return Position{}, false
}

// HasLost reports whether the board is full and no two neighbors are equal.
// Checking the neighbor below and to the right of each cell covers every
// adjacent pair.
func (c *Controller) HasLost() bool {
	if !c.grid.IsFull() {
		return false
	}

	n := c.dimension
	for row := range n {
		for col := range n {
			v := c.grid.Get(row, col).Value()
			if row+1 < n && c.grid.Get(row+1, col).Value() == v {
				return false
			}
			if col+1 < n && c.grid.Get(row, col+1).Value() == v {
				return false
			}
		}
	}
	return true
}

// Reset empties the board and zeroes the score.
func (c *Controller) Reset() {
	c.grid.Reset()
	c.setScore(0)
}
