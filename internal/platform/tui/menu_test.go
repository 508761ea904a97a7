package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/santa2048/internal/config"
	"github.com/vovakirdan/santa2048/internal/core"
	"github.com/vovakirdan/santa2048/internal/games/t2048"
	"github.com/vovakirdan/santa2048/internal/registry"
	"github.com/vovakirdan/santa2048/internal/storage"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	require.True(t, ok)
	return mm, cmd
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DifficultyNormal)
	require.Len(t, m.items, len(registry.List()))
	assert.Equal(t, config.DifficultyNormal, m.Difficulty())

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)

	result := m.Result()
	assert.Equal(t, registry.List()[1].ID, result.VariantID)
	assert.Equal(t, config.DifficultyHard, result.Difficulty)
	assert.False(t, result.Quit)
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), config.DifficultyEasy)

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 0, m.cursor)
	assert.Equal(t, config.DifficultyEasy, m.Difficulty())

	for range len(m.items) + 3 {
		m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, len(m.items)-1, m.cursor)
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(nil, core.DefaultConfig(), "")

	sb, _ := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, sb.Result().WantsScoreboard)

	quit, _ := menuUpdate(t, m, runes("q"))
	assert.True(t, quit.Result().Quit)
	assert.Empty(t, quit.View())
}

func TestMenuShowsBestScore(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveResult(storage.Result{Variant: t2048.DefaultVariant, Score: 4242, MaxTile: 256})
	require.NoError(t, err)

	m := NewMenuModel(store, core.DefaultConfig(), config.DifficultyNormal)
	m, _ = menuUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})

	assert.Contains(t, m.View(), "best 4242")
	assert.Contains(t, m.View(), "Difficulty: normal")
}
