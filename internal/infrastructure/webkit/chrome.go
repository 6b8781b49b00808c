package webkit

import (
	"context"
	"fmt"

	"github.com/diamondburned/gotk4-webkitgtk/pkg/javascriptcore/v6"
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/chatshell/internal/logging"
)

const windowCSSClass = "chatshell-window"

// SetChromeColor implements port.HostChrome. The window background and the
// view background both take the color so no seam shows while the page paints.
func (s *Shell) SetChromeColor(ctx context.Context, color string) error {
	rgba := gdk.NewRGBA(0, 0, 0, 1)
	if !rgba.Parse(color) {
		return fmt.Errorf("invalid chrome color %q", color)
	}
	css := fmt.Sprintf("window.%s { background-color: %s; }", windowCSSClass, color)

	logging.FromContext(ctx).Debug().Str("color", color).Msg("painting chrome")

	return s.onMain(func() {
		if s.css == nil {
			s.css = gtk.NewCSSProvider()
			gtk.StyleContextAddProviderForDisplay(
				gdk.DisplayGetDefault(),
				s.css,
				gtk.STYLE_PROVIDER_PRIORITY_APPLICATION,
			)
		}
		s.css.LoadFromString(css)
		s.view.SetBackgroundColor(&rgba)
	})
}

// scriptMessage forwards a posted message to the bridge router. Pages post
// JSON text, which arrives as a string value.
func (s *Shell) scriptMessage(value *javascriptcore.Value) {
	if value == nil {
		return
	}

	var raw string
	if value.IsString() {
		raw = value.ToString()
	} else {
		raw = value.ToJSON(0)
	}
	s.bindings.Router.HandleRaw(raw)
}
