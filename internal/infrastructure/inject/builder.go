// Package inject renders the scripts and styles the shell injects into the
// hosted page.
package inject

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/chatshell/internal/domain/entity"
)

const (
	// DefaultHandlerName is the WebKit script message handler name.
	DefaultHandlerName = "chatshell"
	// DefaultChatPath is the page path where the keyboard stays up.
	DefaultChatPath = "/chat"
	// DefaultScrollEndDebounce is the quiet time that ends a scroll.
	DefaultScrollEndDebounce = time.Second
)

// Options configures a Builder.
type Options struct {
	HandlerName       string
	ChatPath          string
	ScrollEndDebounce time.Duration
	DefaultTheme      entity.Theme
	Selectors         Selectors
	// FontSize is applied to the root element, e.g. "1.2rem". Empty leaves it alone.
	FontSize string
	// CustomCSS is appended verbatim to the stylesheet.
	CustomCSS string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		HandlerName:       DefaultHandlerName,
		ChatPath:          DefaultChatPath,
		ScrollEndDebounce: DefaultScrollEndDebounce,
		DefaultTheme:      entity.DefaultTheme,
		Selectors:         DefaultSelectors(),
		FontSize:          "1.2rem",
	}
}

// Builder renders injection scripts from Options.
type Builder struct {
	opts Options
	post string
}

// NewBuilder validates opts and returns a Builder.
func NewBuilder(opts Options) (*Builder, error) {
	if strings.TrimSpace(opts.HandlerName) == "" {
		return nil, errors.New("handler name is empty")
	}
	if opts.ScrollEndDebounce <= 0 {
		opts.ScrollEndDebounce = DefaultScrollEndDebounce
	}
	if opts.ChatPath == "" {
		opts.ChatPath = DefaultChatPath
	}
	if opts.DefaultTheme == "" {
		opts.DefaultTheme = entity.DefaultTheme
	}
	if err := opts.Selectors.Validate(); err != nil {
		return nil, fmt.Errorf("invalid selectors: %w", err)
	}

	return &Builder{
		opts: opts,
		post: fmt.Sprintf(postFunc, jsString(opts.HandlerName)),
	}, nil
}

// Options returns the effective options.
func (b *Builder) Options() Options {
	return b.opts
}

// HandlerName is the message handler the scripts post to.
func (b *Builder) HandlerName() string {
	return b.opts.HandlerName
}

// Bootstrap is injected at document start: it installs the theme, navigation,
// scroll and connectivity hooks and reports the stored theme once loaded.
func (b *Builder) Bootstrap() string {
	return fmt.Sprintf(bootstrapScript,
		b.post,
		entity.EventThemeSync,
		entity.EventDismissKeyboard,
		entity.EventScrollStarted,
		entity.EventScrollEnded,
		entity.EventReloadRequest,
		jsString(b.opts.ChatPath),
		jsString(b.opts.Selectors.ObserveRoot),
		b.opts.ScrollEndDebounce.Milliseconds(),
		jsString(string(b.opts.DefaultTheme)),
	)
}

// SetPanel opens or closes the side panel if it is not already in that state.
func (b *Builder) SetPanel(dir entity.PanelDirection) string {
	return fmt.Sprintf(setPanelScript,
		jsString(b.opts.Selectors.PanelOpen),
		jsString(b.opts.Selectors.PanelToggle),
		dir == entity.PanelOpen,
	)
}

// QueryPanel posts the panel state back tagged with requestID.
func (b *Builder) QueryPanel(requestID string) string {
	return fmt.Sprintf(queryPanelScript,
		b.post,
		jsString(b.opts.Selectors.PanelOpen),
		entity.EventDrawerOpenQuery,
		jsString(requestID),
	)
}

// SwitchTheme flips the page's theme through its own settings panel.
func (b *Builder) SwitchTheme() string {
	return fmt.Sprintf(switchThemeScript,
		jsString(b.opts.Selectors.ObserveRoot),
		jsString(b.opts.Selectors.ThemeToggle),
		jsString(b.opts.Selectors.PortalRoot),
		jsString(b.opts.Selectors.PanelToggle),
	)
}

// Stylesheet returns the user stylesheet, or "" when there is nothing to add.
func (b *Builder) Stylesheet() string {
	var sb strings.Builder
	if b.opts.FontSize != "" {
		fmt.Fprintf(&sb, "html {\n  font-size: %s;\n}\n", b.opts.FontSize)
	}
	if css := strings.TrimSpace(b.opts.CustomCSS); css != "" {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(css)
		sb.WriteString("\n")
	}
	return sb.String()
}

// DefaultConsoleURL is the in-page console loaded when debugging pages that
// cannot be inspected.
const DefaultConsoleURL = "https://cdn.jsdelivr.net/npm/eruda"

// ConsoleLoader returns a script that loads and starts the console at src.
func ConsoleLoader(src string) string {
	if src == "" {
		src = DefaultConsoleURL
	}
	return fmt.Sprintf(consoleScript, jsString(src))
}

// jsString renders s as a JavaScript string literal.
func jsString(s string) string {
	data, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(data)
}

// BlurActiveElement returns a script that blurs the focused page element.
func BlurActiveElement() string {
	return blurScript
}
