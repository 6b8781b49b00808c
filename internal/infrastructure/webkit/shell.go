// Package webkit hosts the page in a GTK4 window around a WebKitGTK view and
// implements the shell ports (script runner, reloader, host chrome) on it.
//
// Every GTK call happens on the main loop. Port methods may be called from any
// goroutine: they check the view state and queue the work with glib.IdleAdd.
package webkit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/chatshell/internal/application/bridge"
	"github.com/bnema/chatshell/internal/application/port"
	"github.com/bnema/chatshell/internal/application/usecase"
	"github.com/bnema/chatshell/internal/logging"
)

// ErrAlreadyRunning is returned by Run when the shell already runs.
var ErrAlreadyRunning = errors.New("shell already running")

// Options configures the window and the page content.
type Options struct {
	AppID  string
	Title  string
	Width  int
	Height int
	URL    string

	// HandlerName is the script message handler the page posts to.
	HandlerName string
	// Bootstrap is injected at document start in the top frame.
	Bootstrap string
	// Stylesheet is added as a user stylesheet. Empty adds nothing.
	Stylesheet string

	// TouchOnly restricts panel drags to touchscreens.
	TouchOnly      bool
	EnableDevTools bool
	// ConsoleScript, when set, is injected at document end to start an
	// in-page console.
	ConsoleScript string
	// BlurScript is evaluated on dismiss-keyboard to drop the page's focused
	// element.
	BlurScript string
}

// Bindings are the use cases the shell forwards GTK events to.
type Bindings struct {
	Router    *bridge.Router
	Gesture   *usecase.NavigateGestureUseCase
	Back      *usecase.HandleBackUseCase
	Lifecycle *usecase.ShellLifecycleUseCase
}

// Shell is the native window hosting the page.
type Shell struct {
	opts Options
	ctx  context.Context
	app  *gtk.Application

	// GTK objects, only touched on the main loop.
	window *gtk.ApplicationWindow
	view   *webkit.WebView
	entry  *gtk.Entry
	css    *gtk.CSSProvider

	bindings Bindings
	ready    atomic.Bool
	closed   atomic.Bool
	running  atomic.Bool

	mu         sync.Mutex
	onActivate []func()
}

var (
	_ port.ScriptRunner    = (*Shell)(nil)
	_ port.ContentReloader = (*Shell)(nil)
	_ port.HostChrome      = (*Shell)(nil)
)

// NewShell creates the GTK application. No window exists until Run.
func NewShell(ctx context.Context, opts Options) *Shell {
	return &Shell{
		opts: opts,
		ctx:  logging.WithComponent(ctx, "shell"),
		app:  gtk.NewApplication(opts.AppID, gio.ApplicationFlagsNone),
	}
}

// Bind sets the use cases that receive window events. It must be called
// before Run.
func (s *Shell) Bind(b Bindings) {
	s.bindings = b
}

// OnActivate registers fn to run on the main loop once the window exists.
func (s *Shell) OnActivate(fn func()) {
	s.mu.Lock()
	s.onActivate = append(s.onActivate, fn)
	s.mu.Unlock()
}

// Run builds the window, loads the page and blocks until the application
// quits. It returns the GTK exit status.
func (s *Shell) Run(args []string) (int, error) {
	if !s.running.CompareAndSwap(false, true) {
		return 1, ErrAlreadyRunning
	}
	if s.bindings.Router == nil {
		return 1, errors.New("shell has no bridge router bound")
	}

	s.app.ConnectActivate(s.activate)
	status := s.app.Run(args)
	s.closed.Store(true)

	logging.FromContext(s.ctx).Debug().Int("status", status).Msg("gtk application exited")
	return status, nil
}

func (s *Shell) activate() {
	log := logging.FromContext(s.ctx)

	if s.window != nil {
		s.window.Present()
		return
	}

	s.view = webkit.NewWebView()
	s.view.SetHExpand(true)
	s.view.SetVExpand(true)
	s.applySettings()

	if err := s.setupContent(); err != nil {
		log.Error().Err(err).Msg("failed to set up page content")
	}

	// The entry only exists to take focus away from the page.
	s.entry = gtk.NewEntry()
	s.entry.SetSizeRequest(1, 1)
	s.entry.SetOpacity(0)
	s.entry.SetCanTarget(false)
	s.entry.SetHAlign(gtk.AlignStart)
	s.entry.SetVAlign(gtk.AlignStart)

	overlay := gtk.NewOverlay()
	overlay.SetChild(s.view)
	overlay.AddOverlay(s.entry)

	s.window = gtk.NewApplicationWindow(s.app)
	s.window.SetTitle(s.opts.Title)
	s.window.SetDefaultSize(s.opts.Width, s.opts.Height)
	s.window.AddCSSClass(windowCSSClass)
	s.window.SetChild(overlay)
	s.window.ConnectCloseRequest(func() bool {
		s.closed.Store(true)
		log.Debug().Msg("window close requested")
		return false
	})

	s.attachControllers()
	s.view.ConnectLoadChanged(s.loadChanged)

	s.ready.Store(true)
	s.view.LoadURI(s.opts.URL)
	s.window.Present()

	log.Info().Str("url", s.opts.URL).Msg("shell window presented")

	s.mu.Lock()
	callbacks := append([]func(){}, s.onActivate...)
	s.mu.Unlock()
	for _, fn := range callbacks {
		fn()
	}
}

func (s *Shell) applySettings() {
	settings := s.view.Settings()
	if settings == nil {
		return
	}
	settings.SetEnableJavascript(true)
	settings.SetJavascriptCanAccessClipboard(true)
	if s.opts.EnableDevTools {
		settings.SetEnableDeveloperExtras(true)
	}
}

// setupContent installs the bootstrap script, the stylesheet and the message
// handler before the first load.
func (s *Shell) setupContent() error {
	ucm := s.view.UserContentManager()
	if ucm == nil {
		return errors.New("user content manager unavailable")
	}

	if s.opts.Bootstrap != "" {
		ucm.AddScript(webkit.NewUserScript(
			s.opts.Bootstrap,
			webkit.UserContentInjectTopFrame,
			webkit.UserScriptInjectAtDocumentStart,
			nil,
			nil,
		))
	}

	if s.opts.ConsoleScript != "" {
		ucm.AddScript(webkit.NewUserScript(
			s.opts.ConsoleScript,
			webkit.UserContentInjectTopFrame,
			webkit.UserScriptInjectAtDocumentEnd,
			nil,
			nil,
		))
	}

	if s.opts.Stylesheet != "" {
		ucm.AddStyleSheet(webkit.NewUserStyleSheet(
			s.opts.Stylesheet,
			webkit.UserContentInjectTopFrame,
			webkit.UserStyleLevelUser,
			nil,
			nil,
		))
	}

	ucm.ConnectScriptMessageReceived(s.scriptMessage)
	if !ucm.RegisterScriptMessageHandler(s.opts.HandlerName, "") {
		return fmt.Errorf("register script message handler %q", s.opts.HandlerName)
	}
	return nil
}

func (s *Shell) loadChanged(event webkit.LoadEvent) {
	if event != webkit.LoadFinished || s.bindings.Lifecycle == nil {
		return
	}
	if err := s.bindings.Lifecycle.LoadFinished(s.ctx); err != nil {
		logging.FromContext(s.ctx).Warn().Err(err).Msg("load finished hook failed")
	}
}

// RunScript implements port.ScriptRunner.
func (s *Shell) RunScript(ctx context.Context, script string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.onMain(func() {
		s.evaluate(ctx, script)
	})
}

// evaluate must run on the main loop. Evaluation outlives the caller's
// context, the script reports back through the message handler on its own.
func (s *Shell) evaluate(ctx context.Context, script string) {
	log := logging.FromContext(ctx)
	view := s.view
	view.EvaluateJavascript(s.ctx, script, -1, "", "", func(res gio.AsyncResulter) {
		if _, err := view.EvaluateJavascriptFinish(res); err != nil {
			log.Debug().Err(err).Msg("script evaluation failed")
		}
	})
}

// Reload implements port.ContentReloader.
func (s *Shell) Reload(ctx context.Context) error {
	logging.FromContext(ctx).Debug().Msg("reloading page without cache")
	return s.onMain(func() {
		s.view.ReloadBypassCache()
	})
}

// DismissKeyboard implements port.HostChrome. Focus moves to the hidden entry
// and is then cleared, so neither the entry nor the page element that had
// focus keeps the input method open.
func (s *Shell) DismissKeyboard(ctx context.Context) error {
	return s.onMain(func() {
		s.entry.GrabFocus()
		s.window.SetFocus(nil)
		if s.opts.BlurScript != "" {
			s.evaluate(ctx, s.opts.BlurScript)
		}
	})
}

// FocusContent implements port.HostChrome.
func (s *Shell) FocusContent(_ context.Context) error {
	return s.onMain(func() {
		s.view.GrabFocus()
	})
}

// Exit implements port.HostChrome.
func (s *Shell) Exit(ctx context.Context) {
	logging.FromContext(ctx).Info().Msg("quitting")
	glib.IdleAdd(func() bool {
		s.closed.Store(true)
		s.app.Quit()
		return false
	})
}

// onMain queues fn on the main loop if the view is usable.
func (s *Shell) onMain(fn func()) error {
	if !s.ready.Load() || s.closed.Load() {
		return port.ErrViewClosed
	}
	glib.IdleAdd(func() bool {
		if s.closed.Load() {
			return false
		}
		fn()
		return false
	})
	return nil
}
