package inject

import (
	"sync/atomic"

	"github.com/bnema/chatshell/internal/domain/entity"
)

// Live renders panel scripts from the latest valid options. The bootstrap
// script is installed once per page load, so only the on-demand scripts
// follow updates.
type Live struct {
	current atomic.Pointer[Builder]
}

// NewLive wraps b.
func NewLive(b *Builder) *Live {
	l := &Live{}
	l.current.Store(b)
	return l
}

// Builder returns the builder currently in use.
func (l *Live) Builder() *Builder {
	return l.current.Load()
}

// Update swaps in a builder for opts. The handler name cannot change once
// the page is loaded and is kept. On error the previous builder stays.
func (l *Live) Update(opts Options) error {
	opts.HandlerName = l.current.Load().HandlerName()
	b, err := NewBuilder(opts)
	if err != nil {
		return err
	}
	l.current.Store(b)
	return nil
}

// SetPanel implements port.PanelScripts.
func (l *Live) SetPanel(dir entity.PanelDirection) string {
	return l.current.Load().SetPanel(dir)
}

// QueryPanel implements port.PanelScripts.
func (l *Live) QueryPanel(requestID string) string {
	return l.current.Load().QueryPanel(requestID)
}

// SwitchTheme implements port.PanelScripts.
func (l *Live) SwitchTheme() string {
	return l.current.Load().SwitchTheme()
}
