package htmlshot_test

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"sync"
	"time"

	"github.com/alnah/go-htmlshot"
)

// Example demonstrates rendering an inline HTML document to a PNG file.
// Requires Chrome or Chromium on the host.
func Example() {
	r := htmlshot.NewRenderer()
	defer r.Close()

	img, err := r.CaptureHTML(context.Background(), "<h1>Hello World</h1>", 800, 480)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	f, err := os.Create("screenshot.png")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		fmt.Println("error:", err)
	}
}

// ExampleRenderer_CaptureTarget demonstrates rendering a URL with a
// custom viewport and timeout.
func ExampleRenderer_CaptureTarget() {
	r := htmlshot.NewRenderer(htmlshot.WithTimeout(10 * time.Second))
	defer r.Close()

	img, err := r.CaptureTarget(context.Background(), "https://example.com", 1024, 768)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("captured", img.Bounds().Dx(), "x", img.Bounds().Dy())
}

// ExampleRenderer_CaptureMarkdown demonstrates rendering a markdown
// snippet without writing intermediate HTML yourself.
func ExampleRenderer_CaptureMarkdown() {
	r := htmlshot.NewRenderer()
	defer r.Close()

	markdown := `# Status

| Sensor | Reading |
|--------|---------|
| Temp   | 21.3 C  |
`

	img, err := r.CaptureMarkdown(context.Background(), markdown, 800, 480)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("captured", img.Bounds().Dx(), "x", img.Bounds().Dy())
}

// ExampleRendererPool demonstrates parallel rendering with a pool.
// Each renderer owns its own browser session.
func ExampleRendererPool() {
	pool := htmlshot.NewRendererPool(htmlshot.ResolvePoolSize(0))
	defer pool.Close()

	pages := []string{
		"<h1>Dashboard 1</h1>",
		"<h1>Dashboard 2</h1>",
	}

	var wg sync.WaitGroup
	for _, page := range pages {
		wg.Add(1)
		go func(html string) {
			defer wg.Done()

			r := pool.Acquire()
			defer pool.Release(r)

			if _, err := r.CaptureHTML(context.Background(), html, 800, 480); err != nil {
				fmt.Println("error:", err)
			}
		}(page)
	}
	wg.Wait()
}
