package htmlshot

import (
	"log/slog"
	"time"
)

// rendererConfig holds renderer-level configuration.
type rendererConfig struct {
	timeout   time.Duration
	bin       string
	noSandbox bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTimeout sets the default per-capture timeout applied when a
// Request does not supply its own.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Renderer) {
		if timeout > 0 {
			r.cfg.timeout = timeout
		}
	}
}

// WithBrowserBin pins the browser binary for both backends, bypassing
// detection. Useful in containers with a preinstalled Chromium.
func WithBrowserBin(path string) Option {
	return func(r *Renderer) {
		r.cfg.bin = path
	}
}

// WithNoSandbox disables the Chrome sandbox. Required in most container
// and CI environments. HTMLSHOT_NO_SANDBOX=1 has the same effect.
func WithNoSandbox(disable bool) Option {
	return func(r *Renderer) {
		r.cfg.noSandbox = disable
	}
}

// WithLogger sets the logger for backend failures and fallback warnings.
// The default discards all output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// withSession injects a Session (for tests).
func withSession(s *Session) Option {
	return func(r *Renderer) {
		r.session = s
	}
}

// withBackends injects render backends (for tests).
func withBackends(embedded, subprocess renderBackend) Option {
	return func(r *Renderer) {
		r.embedded = embedded
		r.subprocess = subprocess
	}
}
