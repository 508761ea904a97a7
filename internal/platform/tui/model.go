package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/santa2048/internal/core"
	"github.com/vovakirdan/santa2048/internal/games/t2048"
	"github.com/vovakirdan/santa2048/internal/storage"
)

// maxFrameStep caps how far one tick moves the session clock, so a stalled
// terminal does not release a burst of queued moves at once.
const maxFrameStep = 250 * time.Millisecond

// GameModel is the Bubble Tea model for one 2048 session.
type GameModel struct {
	game      *t2048.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	help      help.Model
	logger    *log.Logger

	lastTick        time.Time
	standalone      bool // Back quits the program instead of returning to a menu
	quitting        bool
	backToMenu      bool
	wantsScoreboard bool
	resultSaved     bool // Whether the finished game has been recorded
}

// NewGameModel creates a model around a game that has not been started yet.
func NewGameModel(game *t2048.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if logger == nil {
		logger = log.Default()
	}

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		help:      help.New(),
		logger:    logger,
	}
	m.help.Width = cfg.ScreenW
	game.Resize(cfg.ScreenW, cfg.ScreenH-1)
	return m
}

// Init starts the game and the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Start()
	return tickCmd(m.config.FPS)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if dir, ok := action.Direction(); ok {
		m.game.Move(dir)
		m.recordResult()
		return m, nil
	}

	switch action {
	case core.ActionRestart:
		m.game.Restart()
		m.resultSaved = false
	case core.ActionBack:
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
	case core.ActionScores:
		if !m.standalone {
			m.wantsScoreboard = true
		}
	}

	return m, nil
}

// handleResize processes window resize events. The board is kept; only the
// layout changes.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.game.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the session clock by the real time since the last frame.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameInterval(m.config.FPS)
	if !m.lastTick.IsZero() {
		dt = min(max(now.Sub(m.lastTick), 0), maxFrameStep)
	}
	m.lastTick = now

	m.game.Advance(dt)
	m.recordResult()

	return m, tickCmd(m.config.FPS)
}

// recordResult stores a finished game once.
func (m *GameModel) recordResult() {
	if !m.game.Over() || m.resultSaved {
		return
	}
	m.resultSaved = true

	snap := m.game.Snapshot()
	m.logger.Info("game finished",
		"variant", snap.Variant,
		"status", snap.Status,
		"score", snap.Score,
		"max_tile", snap.MaxTile,
		"moves", snap.Moves,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveResult(storage.Result{
		Variant: snap.Variant,
		Score:   snap.Score,
		MaxTile: snap.MaxTile,
		Won:     snap.Status == t2048.StatusWon,
		Moves:   snap.Moves,
	})
	if err != nil {
		m.logger.Warn("could not save result", "error", err)
	}
}

// saveScreenshot saves the current board to a text file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".santa2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.Variant().ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + defaultTheme.Help.Render(m.help.View(m.keyMapper.Keys()))
}

// Game returns the wrapped session.
func (m GameModel) Game() *t2048.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// WantsScoreboard returns true if user asked for the scoreboard.
func (m GameModel) WantsScoreboard() bool {
	return m.wantsScoreboard
}

// Run plays a single game until the user quits.
func Run(game *t2048.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
