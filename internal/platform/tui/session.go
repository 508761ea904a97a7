package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/santa2048/internal/config"
	"github.com/vovakirdan/santa2048/internal/core"
	"github.com/vovakirdan/santa2048/internal/games/t2048"
	"github.com/vovakirdan/santa2048/internal/registry"
	"github.com/vovakirdan/santa2048/internal/storage"
)

// NewGame builds a session for variant using the configured rules with the
// spawn rate of the chosen difficulty. A zero seed seeds from the clock.
func NewGame(cfg config.Config, variant registry.Variant, difficulty config.DifficultyPreset, seed int64, logger *log.Logger) (*t2048.Game, error) {
	settings := t2048.SettingsFromConfig(cfg)
	if difficulty != "" {
		p, err := config.SpawnFourForPreset(difficulty)
		if err != nil {
			return nil, err
		}
		settings.SpawnFourProbability = p
	}

	opts := []t2048.Option{t2048.WithSettings(settings), t2048.WithSeed(seed)}
	if logger != nil {
		opts = append(opts, t2048.WithLogger(logger))
	}
	return t2048.New(variant, opts...), nil
}

// SessionModel manages the full flow of one player: menu, game, scoreboard
// and back to the menu. It is the top-level model of SSH sessions.
type SessionModel struct {
	store      *storage.Store
	appConfig  config.Config
	config     core.RuntimeConfig
	username   string
	logger     *log.Logger
	menu       MenuModel
	gameModel  *GameModel
	scoreboard *ScoreboardModel
	difficulty config.DifficultyPreset
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, appCfg config.Config, cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.With("user", username)

	return SessionModel{
		store:      store,
		appConfig:  appCfg,
		config:     cfg,
		username:   username,
		logger:     logger,
		difficulty: config.DifficultyNormal,
		menu:       NewMenuModel(store, cfg, config.DifficultyNormal),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.gameModel != nil:
		return m.updateGame(msg)
	case m.scoreboard != nil:
		return m.updateScoreboard(msg)
	}
	return m.updateMenu(msg)
}

// toMenu rebuilds the menu so high scores are fresh.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.gameModel = nil
	m.scoreboard = nil
	m.menu = NewMenuModel(m.store, m.config, m.difficulty)
	return m, m.menu.Init()
}

func (m SessionModel) toScoreboard() (tea.Model, tea.Cmd) {
	sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH, m.logger)
	m.gameModel = nil
	m.scoreboard = &sb
	return m, sb.Init()
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}
	m.difficulty = m.menu.Difficulty()

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		return m.toScoreboard()
	}

	if selected := m.menu.Selected(); selected != nil {
		m.config = m.menu.Config()

		seed := m.config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		game, err := NewGame(m.appConfig, selected.Variant, m.difficulty, seed, nil)
		if err != nil {
			m.logger.Error("cannot create game", "error", err)
			return m.toMenu()
		}
		m.logger.Info("game started", "variant", selected.Variant.ID, "difficulty", m.difficulty, "seed", seed)

		gameModel := NewGameModel(game, m.store, m.config, m.logger)
		m.gameModel = &gameModel
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	switch {
	case m.gameModel.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.gameModel.BackToMenu():
		return m.toMenu()
	case m.gameModel.WantsScoreboard():
		return m.toScoreboard()
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is shown.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		return m.toMenu()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.gameModel != nil:
		return m.gameModel.View()
	case m.scoreboard != nil:
		return m.scoreboard.View()
	}
	return m.menu.View()
}
