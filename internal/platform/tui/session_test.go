package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/santa2048/internal/config"
	"github.com/vovakirdan/santa2048/internal/core"
	"github.com/vovakirdan/santa2048/internal/registry"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	require.True(t, ok)
	return sm, cmd
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(nil, config.Default(), core.DefaultConfig(), "alice", quietLogger())

	// pick the first board at hard difficulty
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.gameModel)
	assert.NotNil(t, cmd, "game start must begin the frame loop")
	assert.Equal(t, registry.List()[0].ID, m.gameModel.Game().Variant().ID)
	assert.Contains(t, m.View(), "SANTA 2048")

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.gameModel)
	assert.Equal(t, config.DifficultyHard, m.menu.Difficulty(), "difficulty survives a round trip")

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.NotNil(t, m.scoreboard)
	assert.Contains(t, m.View(), "HIGH SCORES")

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.scoreboard)
	assert.False(t, m.quitting)

	m, cmd = sessionUpdate(t, m, runes("q"))
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestSessionGameToScoreboard(t *testing.T) {
	m := NewSessionModel(nil, config.Default(), core.DefaultConfig(), "bob", quietLogger())
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.gameModel)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, m.gameModel)
	assert.NotNil(t, m.scoreboard)
}

func TestSessionResizeReachesGame(t *testing.T) {
	m := NewSessionModel(nil, config.Default(), core.DefaultConfig(), "carol", quietLogger())
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = sessionUpdate(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	assert.Equal(t, 20, m.config.ScreenW)
	assert.Contains(t, m.View(), "Window too small")
}

func TestNewGame(t *testing.T) {
	cfg := config.Default()
	variant := registry.List()[0]

	game, err := NewGame(cfg, variant, config.DifficultyEasy, 5, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(5), game.Seed())

	_, err = NewGame(cfg, variant, config.DifficultyPreset("brutal"), 5, nil)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
