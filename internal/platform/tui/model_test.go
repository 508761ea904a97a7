package tui

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/santa2048/internal/config"
	"github.com/vovakirdan/santa2048/internal/core"
	"github.com/vovakirdan/santa2048/internal/games/t2048"
	"github.com/vovakirdan/santa2048/internal/storage"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	require.True(t, ok)
	return gm, cmd
}

// tinyGame loses quickly: a 2x2 board that only ever spawns 4s.
func tinyGame() *t2048.Game {
	return t2048.New(t2048.Custom(2, 2048), t2048.WithSeed(11), t2048.WithSettings(t2048.Settings{
		QueueCapacity:        10,
		SpawnFourProbability: 1,
		OpeningTiles:         2,
	}))
}

func TestGameModelRecordsResultOnce(t *testing.T) {
	store := openStore(t)
	m := NewGameModel(tinyGame(), store, core.DefaultConfig(), quietLogger())
	require.NotNil(t, m.Init())

	moves := []tea.KeyMsg{
		{Type: tea.KeyUp},
		{Type: tea.KeyRight},
		{Type: tea.KeyDown},
		{Type: tea.KeyLeft},
	}
	for i := 0; i < 400 && !m.Game().Over(); i++ {
		m, _ = update(t, m, moves[i%len(moves)])
		m.Game().Settle()
	}
	require.True(t, m.Game().Over(), "a 2x2 board spawning 4s must fill up")

	now := time.Now()
	m, cmd := update(t, m, TickMsg(now))
	assert.NotNil(t, cmd, "tick must schedule the next frame")
	m, _ = update(t, m, TickMsg(now.Add(time.Second)))

	results, err := store.TopScores(config.CustomVariant, 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, m.Game().Score(), results[0].Score)
	assert.False(t, results[0].Won)
	assert.Equal(t, m.Game().Moves(), results[0].Moves)

	m, _ = update(t, m, runes("r"))
	assert.False(t, m.Game().Over())
	assert.False(t, m.resultSaved)
}

func TestGameModelNavigation(t *testing.T) {
	m := NewGameModel(tinyGame(), nil, core.DefaultConfig(), quietLogger())
	m.Init()

	back, _ := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, back.BackToMenu())
	assert.False(t, back.IsQuitting())

	scores, _ := update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, scores.WantsScoreboard())

	quit, cmd := update(t, m, runes("q"))
	assert.True(t, quit.IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, quit.View())
}

func TestGameModelStandaloneBackQuits(t *testing.T) {
	m := NewGameModel(tinyGame(), nil, core.DefaultConfig(), quietLogger())
	m.standalone = true
	m.Init()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.IsQuitting())
	assert.NotNil(t, cmd)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, m.WantsScoreboard())
}

func TestGameModelResizeKeepsBoard(t *testing.T) {
	m := NewGameModel(tinyGame(), nil, core.DefaultConfig(), quietLogger())
	m.Init()
	before := m.Game().Snapshot()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	assert.Equal(t, before.Board, m.Game().Snapshot().Board)
	assert.Equal(t, 100, m.screen.Width())
	assert.Equal(t, 39, m.screen.Height())
	assert.Contains(t, m.View(), "SANTA 2048")
}

func TestGameModelTickAdvancesClock(t *testing.T) {
	game := t2048.New(t2048.Variants[0], t2048.WithSeed(3))
	m := NewGameModel(game, nil, core.DefaultConfig(), quietLogger())
	m.Init()

	// queue moves behind the debounce of the first one
	for _, k := range []tea.KeyType{tea.KeyLeft, tea.KeyRight, tea.KeyLeft, tea.KeyRight} {
		m, _ = update(t, m, tea.KeyMsg{Type: k})
	}
	pending := game.Snapshot().Pending

	start := time.Now()
	m, _ = update(t, m, TickMsg(start))
	for i := 1; i <= 40; i++ {
		m, _ = update(t, m, TickMsg(start.Add(time.Duration(i)*100*time.Millisecond)))
	}

	assert.Zero(t, game.Snapshot().Pending, "started with %d pending", pending)
}
