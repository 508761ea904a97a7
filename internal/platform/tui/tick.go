// Package tui provides the Bubble Tea front-end for santa2048: the game
// screen, the variant menu, the scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent once per frame. It carries the wall-clock time so the
// model can advance the session clock by the real elapsed time.
type TickMsg time.Time

// frameInterval returns the duration of one frame at fps, defaulting to 30.
func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(fps int) tea.Cmd {
	return tea.Tick(frameInterval(fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
