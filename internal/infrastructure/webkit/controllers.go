package webkit

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/bnema/chatshell/internal/logging"
)

// attachControllers wires the drag, key and mouse controllers to the view.
// All of them run in the capture phase so they see events before the page.
func (s *Shell) attachControllers() {
	if s.bindings.Gesture != nil {
		s.view.AddController(s.newDragController())
	}
	s.view.AddController(s.newKeyController())
	s.view.AddController(s.newClickController())
}

func (s *Shell) newDragController() *gtk.GestureDrag {
	log := logging.FromContext(s.ctx)
	nav := s.bindings.Gesture

	drag := gtk.NewGestureDrag()
	drag.SetPropagationPhase(gtk.PhaseCapture)
	drag.SetTouchOnly(s.opts.TouchOnly)

	drag.ConnectDragBegin(func(_, _ float64) {
		nav.Begin()
	})

	drag.ConnectDragUpdate(func(offsetX, offsetY float64) {
		wasClaimed := nav.Claimed()
		fired, err := nav.Move(s.ctx, entity.Gesture{DX: offsetX, DY: offsetY})
		if err != nil {
			log.Warn().Err(err).Msg("panel gesture failed")
		}
		if !wasClaimed && nav.Claimed() {
			// The page stops seeing this touch sequence from here on.
			drag.SetState(gtk.EventSequenceClaimed)
		}
		if fired {
			log.Debug().Float64("dx", offsetX).Msg("panel gesture fired")
		}
	})

	drag.ConnectDragEnd(func(_, _ float64) {
		nav.End()
	})

	return drag
}

func (s *Shell) newKeyController() *gtk.EventControllerKey {
	keys := gtk.NewEventControllerKey()
	keys.SetPropagationPhase(gtk.PhaseCapture)

	keys.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		action := shortcutFor(keyval, state.Has(gdk.ControlMask), state.Has(gdk.AltMask))
		switch action {
		case shortcutReload:
			if err := s.Reload(s.ctx); err != nil {
				logging.FromContext(s.ctx).Warn().Err(err).Msg("reload shortcut failed")
			}
			return true
		case shortcutBack:
			return s.back()
		default:
			return false
		}
	})

	return keys
}

func (s *Shell) newClickController() *gtk.GestureClick {
	click := gtk.NewGestureClick()
	click.SetButton(0)
	click.SetPropagationPhase(gtk.PhaseCapture)

	click.ConnectPressed(func(nPress int, _, _ float64) {
		if nPress != 1 || click.CurrentButton() != mouseButtonBack {
			return
		}
		if s.back() {
			click.SetState(gtk.EventSequenceClaimed)
		}
	})

	return click
}

// back reports the back action as consumed right away and asks the page
// about its panel on a goroutine, since the answer arrives through the main
// loop.
func (s *Shell) back() bool {
	if s.bindings.Back == nil {
		return false
	}

	go func() {
		log := logging.FromContext(s.ctx)
		outcome, err := s.bindings.Back.Execute(s.ctx)
		if err != nil {
			log.Warn().Err(err).Msg("back action failed")
		}
		log.Debug().Str("outcome", outcome.String()).Msg("back action")
	}()
	return true
}
