package htmlshot

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
)

// Renderer is the public entry point: it validates requests, tries the
// embedded backend, and falls back to the Chromium subprocess. Create
// with NewRenderer, capture with Capture or the convenience wrappers,
// and Close when done to shut down the shared browser.
type Renderer struct {
	cfg      rendererConfig
	logger   *slog.Logger
	session  *Session
	markdown *markdownConverter

	embedded   renderBackend
	subprocess renderBackend
}

// NewRenderer creates a Renderer with default configuration. Use options
// to customize behavior (e.g., WithTimeout, WithBrowserBin, WithLogger).
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		cfg:    rendererConfig{timeout: DefaultTimeout},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.session == nil {
		r.session = NewSession(r.cfg.bin, r.cfg.noSandbox)
	}
	if r.embedded == nil {
		r.embedded = &rodBackend{session: r.session, logger: r.logger}
	}
	if r.subprocess == nil {
		r.subprocess = &chromiumBackend{bin: r.cfg.bin, logger: r.logger}
	}
	r.markdown = newMarkdownConverter()

	return r
}

// Capture renders the request to a decoded image with exactly the
// requested dimensions. The embedded backend is attempted first when
// available; on any failure the subprocess backend is attempted exactly
// once, and its result is final. Backend errors never propagate raw:
// the returned error wraps ErrRenderFailed when both tiers fail.
func (r *Renderer) Capture(ctx context.Context, req Request) (image.Image, error) {
	if r.cfg.timeout > 0 && req.Timeout == 0 {
		req.Timeout = r.cfg.timeout
	}
	req = req.withDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if r.session.Available() {
		img, err := r.embedded.Render(ctx, req)
		if err == nil {
			return img, nil
		}
		r.logger.Warn("screenshot failed, falling back to subprocess",
			"backend", r.embedded.Name(),
			"target", req.describe(),
			"width", req.Width,
			"height", req.Height,
			"error", err)
	} else {
		r.logger.Warn("embedded browser unavailable, using subprocess backend",
			"target", req.describe())
	}

	img, err := r.subprocess.Render(ctx, req)
	if err != nil {
		r.logger.Error("screenshot failed",
			"backend", r.subprocess.Name(),
			"target", req.describe(),
			"width", req.Width,
			"height", req.Height,
			"error", err)
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return img, nil
}

// CaptureHTML renders an inline HTML document at the given viewport size.
func (r *Renderer) CaptureHTML(ctx context.Context, html string, width, height int) (image.Image, error) {
	return r.Capture(ctx, Request{HTML: html, Width: width, Height: height})
}

// CaptureTarget renders a local file path or URL at the given viewport size.
func (r *Renderer) CaptureTarget(ctx context.Context, target string, width, height int) (image.Image, error) {
	return r.Capture(ctx, Request{Target: target, Width: width, Height: height})
}

// Close shuts down the shared browser session. The Renderer remains
// usable afterwards; the next capture relaunches the browser.
func (r *Renderer) Close() error {
	return r.session.Release()
}
