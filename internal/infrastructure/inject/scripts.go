package inject

// All scripts are ES5 so they run unchanged in any engine, and every body is
// guarded: a markup mismatch logs to the page console and does nothing.

// postFunc is the shared message sender. %[1]s is the JSON-quoted handler name.
const postFunc = `function post(msg) {
    try {
      window.webkit.messageHandlers[%[1]s].postMessage(JSON.stringify(msg));
    } catch (e) {
      console.error('chatshell: post failed', e);
    }
  }`

// bootstrapScript runs at document start.
//
//	%[1]s post function
//	%[2]d theme-sync kind       %[3]d dismiss-keyboard kind
//	%[4]d scroll-started kind   %[5]d scroll-ended kind
//	%[6]d reload-request kind   %[7]s chat path (JSON)
//	%[8]s observe root (JSON)   %[9]d scroll-end debounce ms
//	%[10]s default theme (JSON)
const bootstrapScript = `(function() {
  %[1]s

  try {
    if (window.__chatshell_bootstrapped) { return; }
    window.__chatshell_bootstrapped = true;

    var originalSetItem = Storage.prototype.setItem;
    Storage.prototype.setItem = function(key, value) {
      if (key === 'theme') {
        post({ type: %[2]d, value: value });
      }
      return originalSetItem.apply(this, arguments);
    };

    var scrollEndTimer = 0;
    window.addEventListener('scroll', function(event) {
      var target = event && event.target;
      if (!target || !(target.scrollLeft > 0)) { return; }
      if (scrollEndTimer) {
        clearTimeout(scrollEndTimer);
      } else {
        post({ type: %[4]d });
      }
      scrollEndTimer = setTimeout(function() {
        scrollEndTimer = 0;
        post({ type: %[5]d });
      }, %[9]d);
    }, true);

    var wentOffline = false;
    window.addEventListener('offline', function() { wentOffline = true; });
    window.addEventListener('online', function() {
      if (!wentOffline) { return; }
      wentOffline = false;
      post({ type: %[6]d });
    });

    var onLoad = function() {
      try {
        var lastHref = document.location.href;
        var root = document.querySelector(%[8]s) || document.body;
        if (root) {
          var observer = new MutationObserver(function() {
            var href = document.location.href;
            if (href === lastHref) { return; }
            lastHref = href;
            if (document.location.pathname !== %[7]s) {
              post({ type: %[3]d });
            }
          });
          observer.observe(root, { childList: true, subtree: true });
        }

        var stored = null;
        try { stored = window.localStorage.getItem('theme'); } catch (e) {}
        post({ type: %[2]d, value: stored || %[10]s });
      } catch (e) {
        console.error('chatshell: load hooks failed', e);
      }
    };

    if (document.readyState === 'complete') {
      onLoad();
    } else {
      window.addEventListener('load', onLoad);
    }
  } catch (e) {
    console.error('chatshell: bootstrap failed', e);
  }
})();`

// setPanelScript clicks the toggle only when the panel is not already in the
// wanted state.
//
//	%[1]s panel-open selector   %[2]s panel-toggle selector   %[3]t want open
const setPanelScript = `(function() {
  try {
    var isOpen = !!document.querySelector(%[1]s);
    if (isOpen === %[3]t) { return; }
    var toggle = document.querySelector(%[2]s);
    if (toggle) { toggle.click(); }
  } catch (e) {
    console.error('chatshell: set panel failed', e);
  }
})();`

// queryPanelScript replies with the panel state.
//
//	%[1]s post function   %[2]s panel-open selector
//	%[3]d reply kind      %[4]s request id (JSON)
const queryPanelScript = `(function() {
  %[1]s

  try {
    var isOpen = !!document.querySelector(%[2]s);
    post({ type: %[3]d, value: isOpen, id: %[4]s });
  } catch (e) {
    console.error('chatshell: panel query failed', e);
  }
})();`

// switchThemeScript opens the panel, clicks the theme toggle once it mounts
// and then removes the panel root, since closing it through its button does
// not reliably fire.
//
//	%[1]s observe root   %[2]s theme toggle   %[3]s portal root   %[4]s panel toggle
const switchThemeScript = `(function() {
  try {
    var root = document.querySelector(%[1]s) || document.body;
    var observer = new MutationObserver(function() {
      var themeToggle = document.querySelector(%[2]s);
      if (!themeToggle) { return; }
      observer.disconnect();
      themeToggle.click();
      setTimeout(function() {
        var portal = document.querySelector(%[3]s);
        if (portal) { portal.remove(); }
      }, 0);
    });
    observer.observe(root, { childList: true });
    document.querySelector(%[4]s).click();
  } catch (e) {
    console.error('chatshell: theme switch failed', e);
  }
})();`

// consoleScript loads an in-page console and starts it. %[1]s is the JSON
// quoted script URL.
const consoleScript = `(function() {
  try {
    if (window.__chatshell_console) { return; }
    window.__chatshell_console = true;
    var script = document.createElement('script');
    script.src = %[1]s;
    script.onload = function() {
      if (window.eruda) { window.eruda.init(); }
    };
    document.body.appendChild(script);
  } catch (e) {
    console.error('chatshell: console injection failed', e);
  }
})();`

// blurScript drops focus from the focused page element so WebKit does not
// restore it (and the on-screen keyboard) when the view regains focus.
const blurScript = `(function() {
  try {
    var el = document.activeElement;
    if (el && el !== document.body && typeof el.blur === 'function') { el.blur(); }
  } catch (e) {
    console.error('chatshell: blur failed', e);
  }
})();`
