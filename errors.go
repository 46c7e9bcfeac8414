package htmlshot

import "errors"

// Sentinel errors for library operations.
var (
	// Request validation errors.
	ErrEmptyRequest     = errors.New("request must set HTML or Target")
	ErrAmbiguousRequest = errors.New("request cannot set both HTML and Target")
	ErrInvalidViewport  = errors.New("viewport dimensions must be positive")
	ErrInvalidTimeout   = errors.New("timeout cannot be negative")

	// Markdown conversion errors.
	ErrEmptyMarkdown      = errors.New("markdown content cannot be empty")
	ErrMarkdownConversion = errors.New("markdown conversion failed")

	// Embedded backend errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrCapture        = errors.New("screenshot capture failed")

	// Subprocess backend errors.
	ErrNoBrowser      = errors.New("no browser binary found")
	ErrScreenshotExec = errors.New("browser subprocess failed")

	// Shared errors.
	ErrDecode       = errors.New("failed to decode screenshot")
	ErrRenderFailed = errors.New("all render backends failed")
)
