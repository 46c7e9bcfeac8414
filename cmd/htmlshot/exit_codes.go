package main

import (
	"errors"
	"os"

	htmlshot "github.com/alnah/go-htmlshot"
)

// Exit codes for the htmlshot CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful capture
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, htmlshot.ErrBrowserConnect) ||
		errors.Is(err, htmlshot.ErrPageCreate) ||
		errors.Is(err, htmlshot.ErrPageLoad) ||
		errors.Is(err, htmlshot.ErrCapture) ||
		errors.Is(err, htmlshot.ErrNoBrowser) ||
		errors.Is(err, htmlshot.ErrScreenshotExec) ||
		errors.Is(err, htmlshot.ErrRenderFailed) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteImage) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, htmlshot.ErrEmptyRequest) ||
		errors.Is(err, htmlshot.ErrAmbiguousRequest) ||
		errors.Is(err, htmlshot.ErrInvalidViewport) ||
		errors.Is(err, htmlshot.ErrInvalidTimeout) ||
		errors.Is(err, htmlshot.ErrEmptyMarkdown) {
		return ExitUsage
	}

	return ExitGeneral
}
