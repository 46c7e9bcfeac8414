package htmlshot

import (
	"fmt"
	"time"
)

// Default viewport dimensions match the 7.3" e-ink panels this library
// was written for.
const (
	DefaultWidth  = 800
	DefaultHeight = 480
)

// DefaultTimeout bounds navigation and capture when the request does not
// supply its own timeout.
const DefaultTimeout = 30 * time.Second

// Request describes a single screenshot. Exactly one of HTML or Target
// must be set. A Request is never mutated after dispatch; defaults are
// applied to a copy.
type Request struct {
	// HTML is an inline HTML document. It is staged to a temporary file
	// and navigated via file:// so relative asset paths resolve.
	HTML string

	// Target is a local file path or URL to navigate to.
	Target string

	// Width and Height are the viewport size in pixels. The captured
	// image has exactly these dimensions at device scale factor 1.
	Width  int
	Height int

	// Timeout bounds the navigation and capture step. Zero means
	// DefaultTimeout.
	Timeout time.Duration
}

// Validate checks that the request is renderable.
func (r Request) Validate() error {
	if r.HTML == "" && r.Target == "" {
		return ErrEmptyRequest
	}
	if r.HTML != "" && r.Target != "" {
		return ErrAmbiguousRequest
	}
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, r.Width, r.Height)
	}
	if r.Timeout < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTimeout, r.Timeout)
	}
	return nil
}

// withDefaults returns a copy with zero fields filled in.
func (r Request) withDefaults() Request {
	if r.Width == 0 {
		r.Width = DefaultWidth
	}
	if r.Height == 0 {
		r.Height = DefaultHeight
	}
	if r.Timeout == 0 {
		r.Timeout = DefaultTimeout
	}
	return r
}

// describe returns a short log-friendly description of the content.
func (r Request) describe() string {
	if r.HTML != "" {
		return fmt.Sprintf("inline html (%d bytes)", len(r.HTML))
	}
	return r.Target
}
