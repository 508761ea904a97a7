package tui

import (
	"strings"

	"github.com/vovakirdan/santa2048/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string with the default
// theme.
func RenderScreen(s *core.Screen) string {
	return defaultTheme.Render(s)
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same tone to minimize ANSI escape sequences.
func (t Theme) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startTone := s.GetCell(x, y).Tone

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Tone != startTone {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(t.Style(startTone).Render(run.String()))
		}
	}
	return sb.String()
}
