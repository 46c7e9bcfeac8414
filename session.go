package htmlshot

import (
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// Session owns the shared headless browser used by the embedded backend.
// The browser is launched lazily on first Acquire and reused until
// Release. At most one browser is alive per Session.
//
// A single mutex serializes Acquire and Release; the returned browser
// handle itself must only be used from one goroutine at a time (see the
// package documentation on concurrency).
type Session struct {
	mu  sync.Mutex
	bin string

	noSandbox bool

	probeOnce sync.Once
	available bool
	resolved  string

	// Seams for tests; production values set by NewSession.
	lookPath func() (string, bool)
	launch   func(bin string, noSandbox bool) (*rod.Browser, func() error, error)

	browser *rod.Browser
	stop    func() error
}

// NewSession creates a Session. bin optionally pins the browser binary;
// when empty, detection follows FindBrowser and rod's launcher.
func NewSession(bin string, noSandbox bool) *Session {
	return &Session{
		bin:       bin,
		noSandbox: noSandbox || noSandboxEnabled(),
		lookPath:  lookPathDefault,
		launch:    launchBrowser,
	}
}

// lookPathDefault resolves a browser binary for the embedded backend,
// preferring our own candidate order and falling back to rod's launcher
// detection (which knows additional install locations).
func lookPathDefault() (string, bool) {
	if path, ok := FindBrowser(); ok {
		return path, true
	}
	return launcher.LookPath()
}

// Available reports whether the embedded backend can run at all, i.e. a
// launchable browser binary can be resolved. The probe runs once per
// Session and the result is cached for its lifetime.
func (s *Session) Available() bool {
	s.probeOnce.Do(func() {
		if s.bin != "" {
			s.resolved, s.available = s.bin, true
			return
		}
		s.resolved, s.available = s.lookPath()
	})
	return s.available
}

// Acquire returns the shared browser handle, launching it on first use.
// Calling Acquire again without an intervening Release returns the same
// handle without launching a second browser.
func (s *Session) Acquire() (*rod.Browser, error) {
	if !s.Available() {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, ErrNoBrowser)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.browser != nil {
		return s.browser, nil
	}

	browser, stop, err := s.launch(s.resolved, s.noSandbox)
	if err != nil {
		return nil, err
	}
	s.browser = browser
	s.stop = stop
	return browser, nil
}

// Release closes the browser and kills its process tree, so a later
// Acquire relaunches. Safe to call when no browser is running.
func (s *Session) Release() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.browser == nil {
		return nil
	}

	err := s.stop()
	s.browser = nil
	s.stop = nil
	return err
}

// launchBrowser starts a headless browser via rod's launcher and
// connects to it. The returned stop func closes the browser and kills
// the launcher's process tree.
func launchBrowser(bin string, noSandbox bool) (*rod.Browser, func() error, error) {
	l := launcher.New().Headless(true)
	if bin != "" {
		l = l.Bin(bin)
	}
	if noSandbox {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	stop := func() error {
		err := browser.Close()
		l.Kill()
		return err
	}
	return browser, stop, nil
}
