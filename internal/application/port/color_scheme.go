package port

import "github.com/bnema/chatshell/internal/domain/entity"

// ColorSchemePreference represents the resolved host color scheme.
type ColorSchemePreference struct {
	PrefersDark bool

	// Source identifies which detector provided this preference.
	Source string
}

// ColorSchemeDetector detects the desktop's color scheme preference.
type ColorSchemeDetector interface {
	Name() string

	// Priority orders detectors, higher values are asked first.
	Priority() int

	Available() bool

	// Detect returns (preference, true) on success, (_, false) otherwise.
	Detect() (prefersDark bool, ok bool)
}

// ColorSchemeResolver resolves the effective host color scheme.
type ColorSchemeResolver interface {
	Resolve() ColorSchemePreference
	RegisterDetector(detector ColorSchemeDetector)
	// Refresh re-evaluates and notifies OnChange callbacks on a change.
	Refresh() ColorSchemePreference
	// OnChange returns a function that unregisters the callback.
	OnChange(callback func(ColorSchemePreference)) func()
}

// Theme maps the preference to a host theme.
func (p ColorSchemePreference) Theme() entity.Theme {
	return entity.ThemeFromDark(p.PrefersDark)
}
