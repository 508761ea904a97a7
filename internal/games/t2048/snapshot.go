package t2048

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/santa2048/internal/engine"
)

// Snapshot captures the complete session state for rendering, replay output
// and determinism tests.
type Snapshot struct {
	Variant   string
	Dimension int
	Threshold int
	Board     [][]int
	Score     int
	MaxTile   int
	Status    Status
	WinAt     *engine.Position // set only when won
	Moves     int
	Pending   int // moves waiting in the queue
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	c := g.engine.Controller()
	s := Snapshot{
		Variant:   g.variant.ID,
		Dimension: c.Dimension(),
		Threshold: c.Threshold(),
		Board:     c.Grid().Values(),
		Score:     c.Score(),
		MaxTile:   c.Grid().MaxTile(),
		Status:    g.status,
		Moves:     g.moves,
		Pending:   g.engine.Queue().Len(),
	}
	if g.status == StatusWon {
		at := g.winAt
		s.WinAt = &at
	}
	return s
}

// String renders the board as aligned text followed by a summary line.
func (s Snapshot) String() string {
	width := len(fmt.Sprint(max(s.MaxTile, 1)))

	var b strings.Builder
	for _, row := range s.Board {
		for col, v := range row {
			if col > 0 {
				b.WriteByte(' ')
			}
			cell := "."
			if v > 0 {
				cell = fmt.Sprint(v)
			}
			fmt.Fprintf(&b, "%*s", width, cell)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "score=%d max=%d moves=%d status=%s", s.Score, s.MaxTile, s.Moves, s.Status)
	if s.WinAt != nil {
		fmt.Fprintf(&b, " win_at=%v", *s.WinAt)
	}
	return b.String()
}
