// Package styles renders the chatshell command line output with lipgloss.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/chatshell/internal/infrastructure/config"
)

// Palette holds the terminal colors.
type Palette struct {
	Text   string
	Muted  string
	Accent string
	Border string
	Error  string
	Warn   string
}

// DefaultPalette returns the colors used when nothing else applies.
func DefaultPalette() Palette {
	return Palette{
		Text:   "#ececf1",
		Muted:  "#8e8ea0",
		Accent: "#10a37f",
		Border: "#444654",
		Error:  "#ef4444",
		Warn:   "#f59e0b",
	}
}

// Theme holds lipgloss colors and the styles built from them.
type Theme struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Border lipgloss.Color
	Error  lipgloss.Color
	Warn   lipgloss.Color

	Title        lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	Key          lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
	SuccessStyle lipgloss.Style
	Box          lipgloss.Style

	Button       lipgloss.Style
	ButtonActive lipgloss.Style
}

// NewTheme creates a Theme. A prefer-light color scheme switches to colors
// readable on light terminals.
func NewTheme(cfg *config.Config) *Theme {
	p := DefaultPalette()
	if cfg != nil && cfg.Appearance.ColorScheme == config.ThemePreferLight {
		p.Text = "#202123"
		p.Muted = "#6e6e80"
		p.Border = "#d9d9e3"
	}
	return NewThemeFromPalette(p)
}

// NewThemeFromPalette creates a Theme from p.
func NewThemeFromPalette(p Palette) *Theme {
	t := &Theme{
		Text:   lipgloss.Color(p.Text),
		Muted:  lipgloss.Color(p.Muted),
		Accent: lipgloss.Color(p.Accent),
		Border: lipgloss.Color(p.Border),
		Error:  lipgloss.Color(p.Error),
		Warn:   lipgloss.Color(p.Warn),
	}
	t.buildStyles()
	return t
}

func (t *Theme) buildStyles() {
	t.Title = lipgloss.NewStyle().
		Foreground(t.Text).
		Bold(true)

	t.Subtle = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.Highlight = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	t.Key = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error)

	t.WarningStyle = lipgloss.NewStyle().
		Foreground(t.Warn)

	t.SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.Box = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.Button = lipgloss.NewStyle().
		Foreground(t.Muted).
		Padding(0, 2)

	t.ButtonActive = lipgloss.NewStyle().
		Foreground(t.Text).
		Background(t.Accent).
		Padding(0, 2).
		Bold(true)
}
