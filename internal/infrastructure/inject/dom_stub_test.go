package inject

import (
	"testing"

	"github.com/grafana/sobek"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chatshell/internal/domain/entity"
)

// domStub is a minimal browser surface: a selector table instead of a DOM
// tree, manual timers and observers, and a message handler that records
// every posted string.
const domStub = `
var __posted = [];
var __errors = [];
var __timers = [];
var __observers = [];
var __listeners = {};
var __dom = {};

var console = {
  log: function() {},
  error: function() { __errors.push(Array.prototype.join.call(arguments, ' ')); }
};

function setTimeout(fn, ms) {
  __timers.push({ fn: fn, ms: ms, live: true });
  return __timers.length;
}
function clearTimeout(id) {
  if (id && __timers[id - 1]) { __timers[id - 1].live = false; }
}
function __flushTimers() {
  var pending = __timers.slice();
  for (var i = 0; i < pending.length; i++) {
    if (pending[i].live) { pending[i].live = false; pending[i].fn(); }
  }
}
function __liveTimers() {
  var n = 0;
  for (var i = 0; i < __timers.length; i++) { if (__timers[i].live) { n++; } }
  return n;
}

function MutationObserver(cb) { this.cb = cb; this.connected = false; __observers.push(this); }
MutationObserver.prototype.observe = function(target, opts) { this.connected = true; this.target = target; this.opts = opts; };
MutationObserver.prototype.disconnect = function() { this.connected = false; };
function __mutate() {
  var obs = __observers.slice();
  for (var i = 0; i < obs.length; i++) { if (obs[i].connected) { obs[i].cb([{}], obs[i]); } }
}
function __connectedObservers() {
  var n = 0;
  for (var i = 0; i < __observers.length; i++) { if (__observers[i].connected) { n++; } }
  return n;
}

function Element(selector) { this.selector = selector; this.clicks = 0; this.removed = false; }
Element.prototype.click = function() { this.clicks++; if (this.onclick) { this.onclick(); } };
Element.prototype.blur = function() { this.blurs = (this.blurs || 0) + 1; if (document.activeElement === this) { document.activeElement = document.body; } };
Element.prototype.remove = function() { this.removed = true; delete __dom[this.selector]; };
Element.prototype.appendChild = function(child) {
  (this.children = this.children || []).push(child);
  if (child.onload) { child.onload(); }
  return child;
};
function __put(selector) { var el = new Element(selector); __dom[selector] = el; return el; }
function __drop(selector) { delete __dom[selector]; }

function Storage() { this.__data = {}; }
Storage.prototype.setItem = function(k, v) { this.__data[k] = String(v); };
Storage.prototype.getItem = function(k) { return Object.prototype.hasOwnProperty.call(this.__data, k) ? this.__data[k] : null; };

var document = {
  readyState: 'loading',
  location: { href: 'https://chat.example/chat', pathname: '/chat' },
  querySelector: function(sel) { return __dom[sel] || null; }
};
document.body = __put('body');
document.activeElement = document.body;
document.createElement = function(tag) { return new Element(tag); };

var window = {
  localStorage: new Storage(),
  addEventListener: function(type, fn) { (__listeners[type] = __listeners[type] || []).push(fn); },
  webkit: { messageHandlers: { chatshell: { postMessage: function(s) { __posted.push(s); } } } }
};
var localStorage = window.localStorage;

function __fire(type, ev) {
  var fns = __listeners[type] || [];
  for (var i = 0; i < fns.length; i++) { fns[i](ev || {}); }
}
function __navigate(path) {
  document.location.href = 'https://chat.example' + path;
  document.location.pathname = path;
  __mutate();
}
`

type page struct {
	t  *testing.T
	vm *sobek.Runtime
}

func newPage(t *testing.T) *page {
	t.Helper()
	vm := sobek.New()
	_, err := vm.RunString(domStub)
	require.NoError(t, err)
	return &page{t: t, vm: vm}
}

func (p *page) run(src string) sobek.Value {
	p.t.Helper()
	v, err := p.vm.RunString(src)
	require.NoError(p.t, err)
	return v
}

func (p *page) int(src string) int64 {
	p.t.Helper()
	return p.run(src).ToInteger()
}

func (p *page) messages() []entity.Message {
	p.t.Helper()
	exported, ok := p.vm.Get("__posted").Export().([]interface{})
	require.True(p.t, ok)

	msgs := make([]entity.Message, 0, len(exported))
	for _, raw := range exported {
		s, ok := raw.(string)
		require.True(p.t, ok, "posted value must be a string")
		msg, err := entity.DecodeMessage([]byte(s))
		require.NoError(p.t, err)
		msgs = append(msgs, msg)
	}
	return msgs
}

func (p *page) kinds() []entity.EventKind {
	p.t.Helper()
	msgs := p.messages()
	kinds := make([]entity.EventKind, 0, len(msgs))
	for _, m := range msgs {
		kinds = append(kinds, m.Type)
	}
	return kinds
}

func (p *page) errors() int64 {
	return p.int("__errors.length")
}
