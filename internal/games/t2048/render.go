package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/santa2048/internal/core"
	"github.com/vovakirdan/santa2048/internal/engine"
)

const (
	cellWidth  = 7 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3
)

// boardSize returns the on-screen width and height of the grid.
func (g *Game) boardSize() (w, h int) {
	n := g.engine.Controller().Dimension()
	return n*cellWidth + 1, n*cellHeight + 1
}

// MinScreenSize returns the smallest screen the board fits on.
func (g *Game) MinScreenSize() (w, h int) {
	boardW, boardH := g.boardSize()
	return boardW + 2, hudHeight + boardH + 4
}

// Resize records the screen size used by Render.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.MinScreenSize()
	g.tooSmall = w < minW || h < minH
}

// Render draws the session state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderTrails(dst, boardX, boardY)
	g.renderStatus(dst, boardY+boardH+1)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := g.MinScreenSize()
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ToneLose)
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minW, minH), core.ToneMuted)
}

// renderHUD draws the title, score and goal.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := fmt.Sprintf("SANTA 2048 - %s", g.variant.Title)
	dst.DrawStyledText(boardX+(boardW-len(title))/2, 0, title, core.ToneTitle)

	score := fmt.Sprintf("Score: %d", g.Score())
	if gain := g.tracker.Gain(); gain > 0 {
		score += fmt.Sprintf(" +%d", gain)
	}
	dst.DrawStyledText(boardX, 1, score, core.ToneScore)

	goal := fmt.Sprintf("Goal: %d", g.variant.WinThreshold)
	dst.DrawStyledText(max(boardX, boardX+boardW-len(goal)), 1, goal, core.ToneMuted)
}

// renderBoard draws the grid lines and tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	c := g.engine.Controller()
	n := c.Dimension()

	for y := range n + 1 {
		for x := range n + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.SetCell(px, py, core.Cell{Rune: gridCorner(x, y, n), Tone: core.ToneFrame})

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, core.Cell{Rune: '─', Tone: core.ToneFrame})
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, core.Cell{Rune: '│', Tone: core.ToneFrame})
				}
			}
		}
	}

	for row := range n {
		for col := range n {
			p := engine.Pos(row, col)
			value := c.Grid().At(p).Value()

			tone := core.TileTone(value)
			if a, ok := g.tracker.Highlight(p); ok && a.Progress() < 1 {
				tone = core.ToneFlash
			}

			inner := core.NewRect(boardX+col*cellWidth+1, boardY+row*cellHeight+1, cellWidth-1, cellHeight-1)
			dst.FillRect(inner, ' ', tone)
			if value == 0 {
				continue
			}

			text := strconv.Itoa(value)
			pad := max((inner.W-len(text))/2, 0)
			dst.DrawStyledText(inner.X+pad, inner.Y, text, tone)
		}
	}
}

// renderTrails marks the cells sliding tiles are passing through.
func (g *Game) renderTrails(dst *core.Screen, boardX, boardY int) {
	grid := g.engine.Controller().Grid()

	for _, a := range g.tracker.Active() {
		if a.Kind != AnimSlide {
			continue
		}
		row, col := a.Position()
		p := engine.Pos(int(math.Round(row)), int(math.Round(col)))
		if p == a.To || !grid.At(p).IsEmpty() {
			continue
		}
		x := boardX + p.Col*cellWidth + cellWidth/2
		y := boardY + p.Row*cellHeight + 1
		dst.SetCell(x, y, core.Cell{Rune: '·', Tone: core.TileTone(a.Value)})
	}
}

// renderStatus draws the end-of-game banner below the board.
func (g *Game) renderStatus(dst *core.Screen, y int) {
	switch g.status {
	case StatusWon:
		dst.DrawTextCentered(y, fmt.Sprintf("YOU WIN! %d reached at %v", g.variant.WinThreshold, g.winAt), core.ToneWin)
		dst.DrawTextCentered(y+1, "R: new game  Esc: menu", core.ToneMuted)
	case StatusLost:
		dst.DrawTextCentered(y, fmt.Sprintf("GAME OVER  Max tile: %d", g.engine.Controller().Grid().MaxTile()), core.ToneLose)
		dst.DrawTextCentered(y+1, "R: new game  Esc: menu", core.ToneMuted)
	}
}

// gridCorner picks the box-drawing rune for grid intersection (x, y).
func gridCorner(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}
