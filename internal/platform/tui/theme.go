package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/santa2048/internal/core"
)

// Tile palette, classic 2048 colors.
const (
	colorBoard     = lipgloss.Color("#bbada0")
	colorEmpty     = lipgloss.Color("#cdc1b4")
	colorDarkText  = lipgloss.Color("#776e65")
	colorLightText = lipgloss.Color("#f9f6f2")
)

// Theme contains all visual styles of the front-end.
type Theme struct {
	tones map[core.Tone]lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
	Help            lipgloss.Style
}

func tile(bg, fg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(bg).Foreground(fg).Bold(true)
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		tones: map[core.Tone]lipgloss.Style{
			core.ToneDefault: lipgloss.NewStyle(),
			core.ToneFrame:   lipgloss.NewStyle().Foreground(colorBoard),
			core.ToneMuted:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			core.ToneTitle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#edc22e")).Bold(true),
			core.ToneScore:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
			core.ToneWin:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			core.ToneLose:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

			core.ToneEmpty:     lipgloss.NewStyle().Background(colorEmpty),
			core.ToneTile2:     tile("#eee4da", colorDarkText),
			core.ToneTile4:     tile("#ede0c8", colorDarkText),
			core.ToneTile8:     tile("#f2b179", colorLightText),
			core.ToneTile16:    tile("#f59563", colorLightText),
			core.ToneTile32:    tile("#f67cda", colorLightText),
			core.ToneTile64:    tile("#f65e3b", colorLightText),
			core.ToneTileHigh:  tile("#edcf72", colorLightText),
			core.ToneTileSuper: tile("#3c3a32", colorLightText),
			core.ToneFlash:     tile("#ffffff", colorDarkText),
		},

		MenuTitle:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#edc22e")),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:            lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Style returns the style for a tone, falling back to the default style.
func (t Theme) Style(tone core.Tone) lipgloss.Style {
	if s, ok := t.tones[tone]; ok {
		return s
	}
	return t.tones[core.ToneDefault]
}

var defaultTheme = DefaultTheme()
