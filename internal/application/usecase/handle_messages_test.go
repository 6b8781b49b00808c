package usecase_test

import (
	"testing"
	"time"

	"github.com/bnema/chatshell/internal/application/bridge"
	"github.com/bnema/chatshell/internal/application/port/mocks"
	"github.com/bnema/chatshell/internal/application/usecase"
	"github.com/bnema/chatshell/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type messageFixture struct {
	router   *bridge.Router
	runner   *mocks.MockScriptRunner
	chrome   *mocks.MockHostChrome
	reloader *mocks.MockContentReloader
	pending  *bridge.Pending
	scroll   *usecase.ScrollState
	sched    *fakeScheduler
}

func newMessageFixture(t *testing.T) *messageFixture {
	t.Helper()
	f := &messageFixture{
		router:   bridge.NewRouter(testContext()),
		runner:   mocks.NewMockScriptRunner(t),
		chrome:   mocks.NewMockHostChrome(t),
		reloader: mocks.NewMockContentReloader(t),
		pending:  bridge.NewPending(),
		scroll:   usecase.NewScrollState(),
		sched:    &fakeScheduler{},
	}

	handlers := &usecase.BridgeHandlers{
		Panel: usecase.NewControlPanelUseCase(f.runner, stubScripts{}, f.pending, time.Second),
		Theme: usecase.NewSyncThemeUseCase(usecase.SyncThemeConfig{
			Runner:    f.runner,
			Scripts:   stubScripts{},
			Chrome:    f.chrome,
			Scheduler: f.sched,
		}),
		Scroll:   f.scroll,
		Chrome:   f.chrome,
		Reloader: f.reloader,
	}
	require.NoError(t, handlers.Register(f.router))
	return f
}

func TestBridgeHandlers_RegistersEveryKind(t *testing.T) {
	f := newMessageFixture(t)
	assert.Equal(t, entity.EventKinds(), f.router.Kinds())
}

func TestBridgeHandlers_ScrollMessages(t *testing.T) {
	f := newMessageFixture(t)

	f.router.HandleRaw(`{"type":3}`)
	assert.True(t, f.scroll.Scrolling())

	f.router.HandleRaw(`"{\"type\":4}"`)
	assert.False(t, f.scroll.Scrolling())
}

func TestBridgeHandlers_DismissKeyboard(t *testing.T) {
	f := newMessageFixture(t)
	f.chrome.EXPECT().DismissKeyboard(mock.Anything).Return(nil).Once()

	f.router.HandleRaw(`{"type":2}`)
}

func TestBridgeHandlers_ReloadRequest(t *testing.T) {
	f := newMessageFixture(t)
	f.reloader.EXPECT().Reload(mock.Anything).Return(nil).Once()

	f.router.HandleRaw(`{"type":5}`)
}

func TestBridgeHandlers_ThemeSync(t *testing.T) {
	f := newMessageFixture(t)
	f.chrome.EXPECT().SetChromeColor(mock.Anything, darkChrome).Return(nil).Once()

	f.router.HandleRaw(`{"type":1,"value":"dark"}`)
	assert.Len(t, f.sched.Scheduled(), 1)
}

func TestBridgeHandlers_DrawerReplyResolvesPending(t *testing.T) {
	f := newMessageFixture(t)
	ticket := f.pending.Begin()

	f.router.HandleRaw(`{"type":0,"value":true,"id":"` + ticket.ID() + `"}`)

	open, err := ticket.Wait(testContext(), time.Second)
	require.NoError(t, err)
	assert.True(t, open)
}

func TestBridgeHandlers_UnknownKindIsDropped(t *testing.T) {
	f := newMessageFixture(t)

	f.router.HandleRaw(`{"type":42}`)
	f.router.HandleRaw(`not json`)
}
