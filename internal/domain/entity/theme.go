// Package entity defines the domain types shared by the bridge, the gesture
// controller and the host shell.
package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Theme is the light/dark appearance of either the host or the page.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme is assumed when the page has no stored theme.
const DefaultTheme = ThemeLight

// ErrInvalidTheme is returned for values other than light or dark.
var ErrInvalidTheme = errors.New("invalid theme")

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ThemeLight):
		return ThemeLight, nil
	case string(ThemeDark):
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
}

// ThemeFromDark maps a prefers-dark flag to a theme.
func ThemeFromDark(prefersDark bool) Theme {
	if prefersDark {
		return ThemeDark
	}
	return ThemeLight
}

// IsDark reports whether the theme is dark.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// ChromePalette holds the two host chrome colors.
type ChromePalette struct {
	Light string
	Dark  string
}

// DefaultChromePalette matches the background of the hosted chat page.
func DefaultChromePalette() ChromePalette {
	return ChromePalette{
		Light: "#ffffff",
		Dark:  "rgb(52, 53, 65)",
	}
}

// For returns the chrome color for a theme.
func (p ChromePalette) For(t Theme) string {
	if t.IsDark() {
		return p.Dark
	}
	return p.Light
}
