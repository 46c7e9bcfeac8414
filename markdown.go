package htmlshot

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdownTemplate wraps Goldmark's fragment output in a complete HTML5
// document. Margins are zeroed so the rendered content fills the panel.
const markdownTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Document</title>
<style>body { margin: 0; padding: 12px; font-family: sans-serif; }</style>
</head>
<body>
%s
</body>
</html>`

// markdownConverter converts Markdown to HTML using goldmark (pure Go).
type markdownConverter struct {
	md goldmark.Markdown
}

// newMarkdownConverter creates a converter with GFM extensions and
// syntax highlighting. Inline styles are used since screenshots have no
// external stylesheet; the github style keeps output legible on light
// e-ink palettes.
func newMarkdownConverter() *markdownConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),     // Self-closing tags
		),
	)
	return &markdownConverter{md: md}
}

// toHTML converts Markdown content to a standalone HTML5 document.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *markdownConverter) toHTML(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrMarkdownConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(markdownTemplate, buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// CaptureMarkdown converts a Markdown document to HTML and renders it at
// the given viewport size. Useful for notes and text dashboards shown on
// e-ink panels.
func (r *Renderer) CaptureMarkdown(ctx context.Context, markdown string, width, height int) (image.Image, error) {
	if markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	htmlContent, err := r.markdown.toHTML(ctx, markdown)
	if err != nil {
		return nil, err
	}
	return r.Capture(ctx, Request{HTML: htmlContent, Width: width, Height: height})
}
