package htmlshot

import (
	"errors"
	"testing"

	"github.com/go-rod/rod"
)

// fakeSession returns a Session whose probe and launch are stubbed out.
func fakeSession(available bool) (*Session, *int) {
	launches := 0
	s := NewSession("", false)
	s.lookPath = func() (string, bool) {
		if available {
			return "/usr/bin/chromium", true
		}
		return "", false
	}
	s.launch = func(bin string, noSandbox bool) (*rod.Browser, func() error, error) {
		launches++
		return &rod.Browser{}, func() error { return nil }, nil
	}
	return s, &launches
}

func TestSession_AvailableCachesProbe(t *testing.T) {
	probes := 0
	s := NewSession("", false)
	s.lookPath = func() (string, bool) {
		probes++
		return "", false
	}

	if s.Available() {
		t.Fatal("Available() = true, want false")
	}
	if s.Available() {
		t.Fatal("Available() = true on second call, want cached false")
	}
	if probes != 1 {
		t.Errorf("probe ran %d times, want 1", probes)
	}
}

func TestSession_AvailableWithPinnedBinary(t *testing.T) {
	s := NewSession("/opt/chromium", false)
	s.lookPath = func() (string, bool) {
		t.Fatal("lookPath called despite pinned binary")
		return "", false
	}

	if !s.Available() {
		t.Error("Available() = false with pinned binary")
	}
}

func TestSession_AcquireReturnsSingleton(t *testing.T) {
	s, launches := fakeSession(true)

	first, err := s.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	second, err := s.Acquire()
	if err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}

	if first != second {
		t.Error("Acquire() returned different handles without Release")
	}
	if *launches != 1 {
		t.Errorf("launched %d browsers, want 1", *launches)
	}
}

func TestSession_AcquireFailsWhenUnavailable(t *testing.T) {
	s, launches := fakeSession(false)

	_, err := s.Acquire()
	if !errors.Is(err, ErrBrowserConnect) {
		t.Errorf("Acquire() error = %v, want ErrBrowserConnect", err)
	}
	if *launches != 0 {
		t.Errorf("launched %d browsers, want 0", *launches)
	}
}

func TestSession_AcquirePropagatesLaunchError(t *testing.T) {
	s, _ := fakeSession(true)
	launchErr := errors.New("boom")
	s.launch = func(string, bool) (*rod.Browser, func() error, error) {
		return nil, nil, launchErr
	}

	if _, err := s.Acquire(); !errors.Is(err, launchErr) {
		t.Errorf("Acquire() error = %v, want launch error", err)
	}
}

func TestSession_ReleaseIdempotent(t *testing.T) {
	s, _ := fakeSession(true)

	// Release with no live browser.
	if err := s.Release(); err != nil {
		t.Fatalf("Release() error = %v on empty session", err)
	}

	if _, err := s.Acquire(); err != nil {
		t.Fatalf("Acquire() error = %v", err)
	}
	if err := s.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if err := s.Release(); err != nil {
		t.Fatalf("Release() error = %v on second call", err)
	}
}

func TestSession_AcquireRelaunchesAfterRelease(t *testing.T) {
	s, launches := fakeSession(true)

	first, _ := s.Acquire()
	_ = s.Release()
	second, err := s.Acquire()
	if err != nil {
		t.Fatalf("Acquire() after Release error = %v", err)
	}

	if first == second {
		t.Error("Acquire() after Release returned the released handle")
	}
	if *launches != 2 {
		t.Errorf("launched %d browsers, want 2", *launches)
	}
}

func TestSession_ReleaseCallsStop(t *testing.T) {
	stopped := 0
	s, _ := fakeSession(true)
	s.launch = func(string, bool) (*rod.Browser, func() error, error) {
		return &rod.Browser{}, func() error { stopped++; return nil }, nil
	}

	_, _ = s.Acquire()
	_ = s.Release()
	_ = s.Release()

	if stopped != 1 {
		t.Errorf("stop ran %d times, want 1", stopped)
	}
}
