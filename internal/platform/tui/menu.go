package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/santa2048/internal/config"
	"github.com/vovakirdan/santa2048/internal/core"
	"github.com/vovakirdan/santa2048/internal/registry"
	"github.com/vovakirdan/santa2048/internal/storage"
)

// MenuItem represents a selectable variant in the menu.
type MenuItem struct {
	Variant registry.Variant
	Best    int // high score, 0 if none or no storage
}

// MenuModel is the Bubble Tea model for the variant picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	presets        []config.DifficultyPreset
	preset         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem // Set when user selects a variant
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a new menu model. difficulty preselects a preset; an
// unknown value selects normal.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) MenuModel {
	variants := registry.List()
	items := make([]MenuItem, 0, len(variants))

	for _, v := range variants {
		item := MenuItem{Variant: v}
		if store != nil {
			if best, err := store.HighScore(v.ID); err == nil {
				item.Best = best
			}
		}
		items = append(items, item)
	}

	presets := config.Presets()
	preset := 1
	for i, p := range presets {
		if p == difficulty {
			preset = i
		}
	}

	return MenuModel{
		items:     items,
		presets:   presets,
		preset:    preset,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionPrev:
		if m.preset > 0 {
			m.preset--
		}

	case MenuActionNext:
		if m.preset < len(m.presets)-1 {
			m.preset++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	theme := defaultTheme
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(theme.MenuTitle.Render("S A N T A   2 0 4 8"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a board", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("%-8s %s", item.Variant.Title, item.Variant.Describe())
		if item.Best > 0 {
			line += fmt.Sprintf("  best %d", item.Best)
		}

		if i == m.cursor {
			b.WriteString(centerText(theme.MenuItemActive.Render("> "+line), m.width))
		} else {
			b.WriteString(centerText(theme.MenuItemNormal.Render("  "+line), m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	difficulty := fmt.Sprintf("< Difficulty: %s >", m.Difficulty())
	b.WriteString(centerText(theme.MenuDescription.Render(difficulty), m.width))
	b.WriteString("\n\n")

	controls := "Up/Down: Board  |  Left/Right: Difficulty  |  Enter: Play  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(theme.Help.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the chosen difficulty preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return m.presets[m.preset]
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, measuring printable cells so
// styled strings center correctly.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	VariantID       string
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, difficulty config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, difficulty)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg, Difficulty: difficulty}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Difficulty: difficulty, Quit: true}, nil
	}

	return m.Result(), nil
}

// Result summarizes what the user chose.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{
		Config:     m.Config(),
		Difficulty: m.Difficulty(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.VariantID = m.Selected().Variant.ID
	}
	return result
}
