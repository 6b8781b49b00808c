package port

import "github.com/bnema/chatshell/internal/domain/entity"

// PanelScripts renders the scripts that drive the page's side panel.
type PanelScripts interface {
	SetPanel(dir entity.PanelDirection) string
	QueryPanel(requestID string) string
	SwitchTheme() string
}
