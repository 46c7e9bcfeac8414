package htmlshot

import (
	"context"
	"image"
	"os"
	"path/filepath"
)

// renderBackend abstracts a screenshot strategy so the orchestrator can
// try backends in fixed priority order.
type renderBackend interface {
	// Render captures the request to a decoded image. Implementations
	// return an error instead of propagating panics, and remove every
	// temporary file they create before returning.
	Render(ctx context.Context, req Request) (image.Image, error)

	// Name identifies the backend in logs.
	Name() string
}

// Compile-time interface implementation checks.
var (
	_ renderBackend = (*rodBackend)(nil)
	_ renderBackend = (*chromiumBackend)(nil)
)

// resolveTarget converts an existing local file path to a file:// URL so
// the browser resolves relative assets against the file's directory.
// URLs and non-existent paths pass through unchanged.
func resolveTarget(target string) string {
	info, err := os.Stat(target)
	if err != nil || info.IsDir() {
		return target
	}
	return fileURL(target)
}

// fileURL builds a file:// reference from a local path.
func fileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return "file://" + filepath.ToSlash(abs)
}
