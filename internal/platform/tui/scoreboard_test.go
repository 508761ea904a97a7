package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/santa2048/internal/registry"
	"github.com/vovakirdan/santa2048/internal/storage"
)

func TestScoreboardLoadsVariants(t *testing.T) {
	store := openStore(t)
	variants := registry.List()
	require.GreaterOrEqual(t, len(variants), 2)

	for _, score := range []int{100, 300, 200} {
		_, err := store.SaveResult(storage.Result{Variant: variants[1].ID, Score: score, MaxTile: 64, Moves: 10})
		require.NoError(t, err)
	}
	_, err := store.SaveResult(storage.Result{Variant: variants[1].ID, Score: 50, MaxTile: 32, Won: true})
	require.NoError(t, err)

	m := NewScoreboardModel(store, 100, 30, quietLogger())
	assert.Equal(t, variants[0].ID, m.Variant())
	assert.Empty(t, m.results)
	assert.Contains(t, m.View(), "No games played yet")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, variants[1].ID, m.Variant())
	require.Len(t, m.results, 4)
	assert.Equal(t, 300, m.results[0].Score)
	assert.Equal(t, 4, m.stats.Games)
	assert.Equal(t, 1, m.stats.Wins)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	assert.Equal(t, variants[len(variants)-1].ID, m.Variant(), "selection wraps around")
}

func TestScoreRows(t *testing.T) {
	rows := scoreRows([]storage.Result{
		{Score: 2048, MaxTile: 1024, Moves: 300, Won: true},
		{Score: 12, MaxTile: 8, Moves: 4},
	})

	require.Len(t, rows, 2)
	assert.Equal(t, "#1", rows[0][0])
	assert.Equal(t, "won", rows[0][4])
	assert.Equal(t, "-", rows[1][4])
}

func TestStatsLine(t *testing.T) {
	assert.Equal(t, "No games played yet", statsLine(storage.VariantStats{}))
	assert.Equal(t, "Games: 2  Wins: 1  Best tile: 512  Avg score: 150",
		statsLine(storage.VariantStats{Games: 2, Wins: 1, BestTile: 512, AvgScore: 150}))
}

func TestScoreboardNavigation(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20, quietLogger())
	assert.False(t, m.showSidebar)
	assert.Contains(t, m.View(), "< ")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(ScoreboardModel).IsGoingBack())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, next.(ScoreboardModel).IsQuitting())
}
