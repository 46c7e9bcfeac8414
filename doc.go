// Package htmlshot renders HTML documents, local files, and URLs to
// fixed-size PNG rasters using headless Chrome. It is built for e-ink
// display frontends, where content is laid out as an HTML page and
// captured at the exact panel resolution before palette conversion.
//
// # Quick Start
//
// Create a renderer, capture a screenshot, and close when done:
//
//	r := htmlshot.NewRenderer()
//	defer r.Close()
//
//	img, err := r.CaptureHTML(ctx, "<html><body>hi</body></html>", 800, 480)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The result is a decoded image.Image with exactly the requested pixel
// dimensions. CaptureTarget renders a local file path or URL instead of
// inline HTML, and CaptureMarkdown converts a Markdown document to HTML
// (via Goldmark) before rendering.
//
// # Rendering Backends
//
// Two backends are tried in fixed order for every capture:
//
//  1. An embedded browser driven through go-rod. The browser process is
//     launched lazily on first use and shared across captures. HTML
//     content is staged to a temporary file and navigated via file:// so
//     that relative stylesheet and font references resolve.
//  2. A Chromium subprocess invoked with --headless --screenshot. Used
//     when no browser can be launched through rod, or when the embedded
//     capture fails.
//
// Callers never see which backend served a request. If both backends
// fail, Capture returns an error wrapping ErrRenderFailed.
//
// # Concurrency
//
// A Renderer performs one capture at a time from the calling goroutine
// and must not be shared across goroutines. For parallel rendering use
// RendererPool, which gives each worker its own Renderer and browser
// session:
//
//	pool := htmlshot.NewRendererPool(4)
//	defer pool.Close()
//
//	r := pool.Acquire()
//	defer pool.Release(r)
//	img, err := r.CaptureHTML(ctx, page, 800, 480)
//
// # Browser Requirements
//
// Both backends need a Chromium-based browser. Binaries are located on
// PATH (chromium-headless-shell, chromium, chrome, google-chrome) and,
// on macOS, in the standard application bundles. Set HTMLSHOT_BROWSER_BIN
// to point at a specific binary, and HTMLSHOT_NO_SANDBOX=1 to disable the
// Chrome sandbox in containers and CI.
package htmlshot
