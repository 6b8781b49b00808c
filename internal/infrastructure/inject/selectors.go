package inject

import (
	"errors"
	"strings"
)

// Selectors maps the roles the shell relies on to CSS selectors of the hosted
// page. They are environment contracts with third-party markup: when the page
// changes, these are the values to update.
type Selectors struct {
	// PanelOpen matches only while the side panel is open.
	PanelOpen string
	// PanelToggle is the control that opens and closes the panel.
	PanelToggle string
	// ThemeToggle is the light/dark switch inside the open panel.
	ThemeToggle string
	// PortalRoot is the element the panel is mounted into.
	PortalRoot string
	// ObserveRoot is watched for DOM changes.
	ObserveRoot string
}

// DefaultSelectors targets the headless-ui based chat page.
func DefaultSelectors() Selectors {
	return Selectors{
		PanelOpen:   `div[data-headlessui-state="open"]`,
		PanelToggle: `button`,
		ThemeToggle: `div[data-headlessui-state="open"] nav > a:nth-of-type(3)`,
		PortalRoot:  `#headlessui-portal-root`,
		ObserveRoot: `body`,
	}
}

// Validate reports every empty selector.
func (s Selectors) Validate() error {
	var errs []error
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, errors.New("selector "+name+" is empty"))
		}
	}
	check("panel_open", s.PanelOpen)
	check("panel_toggle", s.PanelToggle)
	check("theme_toggle", s.ThemeToggle)
	check("portal_root", s.PortalRoot)
	check("observe_root", s.ObserveRoot)
	return errors.Join(errs...)
}
