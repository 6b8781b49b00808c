package inject

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatshell/internal/domain/entity"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	b, err := NewBuilder(DefaultOptions())
	require.NoError(t, err)
	return b
}

func TestNewBuilder_Validation(t *testing.T) {
	opts := DefaultOptions()
	opts.HandlerName = " "
	_, err := NewBuilder(opts)
	assert.Error(t, err)

	opts = DefaultOptions()
	opts.Selectors.PanelToggle = ""
	_, err = NewBuilder(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panel_toggle")

	opts = DefaultOptions()
	opts.ScrollEndDebounce = 0
	opts.ChatPath = ""
	opts.DefaultTheme = ""
	b, err := NewBuilder(opts)
	require.NoError(t, err)
	assert.Equal(t, DefaultScrollEndDebounce, b.Options().ScrollEndDebounce)
	assert.Equal(t, DefaultChatPath, b.Options().ChatPath)
	assert.Equal(t, entity.ThemeLight, b.Options().DefaultTheme)
}

func TestBootstrap_ReportsDefaultThemeOnLoad(t *testing.T) {
	p := newPage(t)
	p.run(newTestBuilder(t).Bootstrap())

	assert.Empty(t, p.messages(), "nothing is posted before load")

	p.run(`__fire('load')`)

	msgs := p.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, entity.EventThemeSync, msgs[0].Type)
	theme, ok := msgs[0].StringValue()
	require.True(t, ok)
	assert.Equal(t, "light", theme)
	assert.Zero(t, p.errors())
}

func TestBootstrap_ReportsStoredTheme(t *testing.T) {
	p := newPage(t)
	p.run(`window.localStorage.__data.theme = 'dark'; document.readyState = 'complete';`)
	p.run(newTestBuilder(t).Bootstrap())

	msgs := p.messages()
	require.Len(t, msgs, 1)
	theme, _ := msgs[0].StringValue()
	assert.Equal(t, "dark", theme)
}

func TestBootstrap_StorageHookSyncsTheme(t *testing.T) {
	p := newPage(t)
	p.run(newTestBuilder(t).Bootstrap())

	p.run(`localStorage.setItem('theme', 'dark'); localStorage.setItem('other', 'x');`)

	msgs := p.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, entity.EventThemeSync, msgs[0].Type)
	theme, _ := msgs[0].StringValue()
	assert.Equal(t, "dark", theme)
	assert.Equal(t, "dark", p.run(`localStorage.getItem('theme')`).String(), "original setItem still runs")
	assert.Equal(t, "x", p.run(`localStorage.getItem('other')`).String())
}

func TestBootstrap_IsIdempotent(t *testing.T) {
	p := newPage(t)
	b := newTestBuilder(t)
	p.run(b.Bootstrap())
	p.run(b.Bootstrap())

	p.run(`localStorage.setItem('theme', 'dark')`)
	assert.Len(t, p.messages(), 1)
}

func TestBootstrap_NavigationAwayFromChatDismissesKeyboard(t *testing.T) {
	p := newPage(t)
	p.run(newTestBuilder(t).Bootstrap())
	p.run(`__fire('load')`)

	p.run(`__mutate()`)
	p.run(`__navigate('/chat')`)
	p.run(`__navigate('/c/123')`)
	p.run(`__mutate()`)

	assert.Equal(t, []entity.EventKind{entity.EventThemeSync, entity.EventDismissKeyboard}, p.kinds())
}

func TestBootstrap_HorizontalScrollIsDebounced(t *testing.T) {
	p := newPage(t)
	p.run(newTestBuilder(t).Bootstrap())

	p.run(`__fire('scroll', { target: { scrollLeft: 0 } })`)
	assert.Empty(t, p.messages(), "vertical-only scrolling is ignored")

	p.run(`__fire('scroll', { target: { scrollLeft: 10 } })`)
	p.run(`__fire('scroll', { target: { scrollLeft: 20 } })`)
	p.run(`__fire('scroll', { target: { scrollLeft: 30 } })`)
	assert.Equal(t, []entity.EventKind{entity.EventScrollStarted}, p.kinds())
	assert.Equal(t, int64(1), p.int(`__liveTimers()`), "each scroll restarts the single end timer")
	assert.Equal(t, int64(1000), p.int(`__timers[__timers.length - 1].ms`))

	p.run(`__flushTimers()`)
	assert.Equal(t, []entity.EventKind{entity.EventScrollStarted, entity.EventScrollEnded}, p.kinds())

	p.run(`__fire('scroll', { target: { scrollLeft: 5 } })`)
	assert.Equal(t, entity.EventScrollStarted, p.kinds()[2], "a new burst starts again")
}

func TestBootstrap_ReconnectRequestsReload(t *testing.T) {
	p := newPage(t)
	p.run(newTestBuilder(t).Bootstrap())

	p.run(`__fire('online')`)
	assert.Empty(t, p.messages())

	p.run(`__fire('offline'); __fire('online'); __fire('online')`)
	assert.Equal(t, []entity.EventKind{entity.EventReloadRequest}, p.kinds())
}

func TestSetPanel(t *testing.T) {
	sel := DefaultSelectors()
	b := newTestBuilder(t)

	tests := []struct {
		name       string
		open       bool
		dir        entity.PanelDirection
		wantClicks int64
	}{
		{"open when closed", false, entity.PanelOpen, 1},
		{"open when open", true, entity.PanelOpen, 0},
		{"close when open", true, entity.PanelClose, 1},
		{"close when closed", false, entity.PanelClose, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPage(t)
			p.run(`__put(` + jsString(sel.PanelToggle) + `)`)
			if tt.open {
				p.run(`__put(` + jsString(sel.PanelOpen) + `)`)
			}

			p.run(b.SetPanel(tt.dir))

			assert.Equal(t, tt.wantClicks, p.int(`__dom[`+jsString(sel.PanelToggle)+`].clicks`))
			assert.Empty(t, p.messages(), "mutations do not reply")
			assert.Zero(t, p.errors())
		})
	}
}

func TestSetPanel_MissingToggleIsNoop(t *testing.T) {
	p := newPage(t)
	p.run(newTestBuilder(t).SetPanel(entity.PanelOpen))
	assert.Zero(t, p.errors())
}

func TestQueryPanel(t *testing.T) {
	sel := DefaultSelectors()
	b := newTestBuilder(t)

	p := newPage(t)
	p.run(b.QueryPanel("req-1"))
	p.run(`__put(` + jsString(sel.PanelOpen) + `)`)
	p.run(b.QueryPanel("req-2"))

	msgs := p.messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, entity.EventDrawerOpenQuery, msgs[0].Type)
	assert.Equal(t, "req-1", msgs[0].ID)
	assert.False(t, msgs[0].BoolValue())
	assert.Equal(t, "req-2", msgs[1].ID)
	assert.True(t, msgs[1].BoolValue())
}

func TestQueryPanel_MissingHandlerIsSwallowed(t *testing.T) {
	p := newPage(t)
	p.run(`window.webkit = undefined`)
	p.run(newTestBuilder(t).QueryPanel("x"))
	assert.Equal(t, int64(1), p.errors())
}

func TestSwitchTheme(t *testing.T) {
	sel := DefaultSelectors()
	p := newPage(t)
	p.run(`__put(` + jsString(sel.PanelToggle) + `)`)
	p.run(`__put(` + jsString(sel.PortalRoot) + `)`)

	p.run(newTestBuilder(t).SwitchTheme())
	assert.Equal(t, int64(1), p.int(`__dom[`+jsString(sel.PanelToggle)+`].clicks`), "panel opened")
	assert.Equal(t, int64(1), p.int(`__connectedObservers()`))

	// The panel renders its content.
	p.run(`var themeToggle = __put(` + jsString(sel.ThemeToggle) + `); __mutate(); __mutate();`)
	assert.Equal(t, int64(1), p.int(`themeToggle.clicks`), "toggle clicked exactly once")
	assert.Equal(t, int64(0), p.int(`__connectedObservers()`))

	p.run(`var portal = __dom[` + jsString(sel.PortalRoot) + `]; __flushTimers();`)
	assert.True(t, p.run(`portal.removed`).ToBoolean(), "panel root force-removed")
	assert.Zero(t, p.errors())
}

func TestSwitchTheme_MissingToggleIsSwallowed(t *testing.T) {
	p := newPage(t)
	p.run(`__drop('button')`)
	p.run(newTestBuilder(t).SwitchTheme())
	assert.Equal(t, int64(1), p.errors())
}

func TestScripts_EscapeSelectors(t *testing.T) {
	opts := DefaultOptions()
	opts.Selectors.PanelOpen = `div[data-x="it's"]`
	opts.HandlerName = `my"handler`
	b, err := NewBuilder(opts)
	require.NoError(t, err)

	p := newPage(t)
	p.run(`window.webkit.messageHandlers['my"handler'] = window.webkit.messageHandlers.chatshell`)
	p.run(`__put(` + jsString(opts.Selectors.PanelOpen) + `)`)
	p.run(b.QueryPanel("id"))

	msgs := p.messages()
	require.Len(t, msgs, 1)
	assert.True(t, msgs[0].BoolValue())
}

func TestStylesheet(t *testing.T) {
	opts := DefaultOptions()
	opts.CustomCSS = "  main { margin: 0; }  "
	opts.ScrollEndDebounce = 500 * time.Millisecond
	b, err := NewBuilder(opts)
	require.NoError(t, err)

	css := b.Stylesheet()
	assert.True(t, strings.HasPrefix(css, "html {\n  font-size: 1.2rem;\n}\n"))
	assert.Contains(t, css, "main { margin: 0; }\n")
	assert.Contains(t, b.Bootstrap(), "}, 500);")

	opts.FontSize = ""
	opts.CustomCSS = ""
	b, err = NewBuilder(opts)
	require.NoError(t, err)
	assert.Empty(t, b.Stylesheet())
}

func TestConsoleLoader(t *testing.T) {
	p := newPage(t)
	p.run(`window.eruda = { init: function() { window.__inits = (window.__inits || 0) + 1; } };`)

	src := ConsoleLoader("")
	p.run(src)
	p.run(src)

	assert.Equal(t, int64(1), p.int(`document.body.children.length`))
	assert.Equal(t, DefaultConsoleURL, p.run(`document.body.children[0].src`).String())
	assert.Equal(t, int64(1), p.int(`window.__inits`))
	assert.Zero(t, p.errors())
}

func TestConsoleLoader_CustomURL(t *testing.T) {
	p := newPage(t)
	p.run(ConsoleLoader("https://example.test/console.js"))

	assert.Equal(t, "https://example.test/console.js", p.run(`document.body.children[0].src`).String())
	assert.Zero(t, p.errors(), "missing console global is tolerated")
}

func TestBlurActiveElement(t *testing.T) {
	p := newPage(t)
	p.run(`var input = __put('textarea'); document.activeElement = input;`)

	p.run(BlurActiveElement())

	assert.Equal(t, int64(1), p.int(`input.blurs`))
	assert.True(t, p.run(`document.activeElement === document.body`).ToBoolean())
	assert.Zero(t, p.errors())
}

func TestBlurActiveElement_NothingFocused(t *testing.T) {
	p := newPage(t)

	p.run(BlurActiveElement())

	assert.Equal(t, int64(0), p.int(`document.body.blurs || 0`))
	assert.Zero(t, p.errors())
}
