package htmlshot

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/alnah/go-htmlshot/internal/fileutil"
)

// chromiumBackend shells out to a Chromium binary in headless screenshot
// mode. It holds no long-lived resources: every render is one child
// process run to completion.
type chromiumBackend struct {
	bin    string // optional override; empty means detect per render
	logger *slog.Logger

	// lookPath seam for tests; defaults to FindBrowser.
	lookPath func() (string, bool)
}

// Name returns the backend name.
func (b *chromiumBackend) Name() string { return "chromium" }

// Render invokes the browser subprocess and decodes the PNG it writes.
// A missing binary is a hard failure — there is no further fallback
// below this tier. Temporary files (staged HTML, screenshot output) are
// removed on every exit path.
func (b *chromiumBackend) Render(ctx context.Context, req Request) (image.Image, error) {
	bin, ok := b.resolveBin()
	if !ok {
		return nil, fmt.Errorf("%w: install chromium, chromium-headless-shell, or chrome", ErrNoBrowser)
	}

	target := req.Target
	if req.HTML != "" {
		path, cleanup, err := fileutil.WriteTempFile(req.HTML, "html")
		if err != nil {
			return nil, err
		}
		defer cleanup()
		target = fileURL(path)
	} else {
		target = resolveTarget(target)
	}

	outPath, cleanup, err := fileutil.ReserveTempFile("png")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	args := screenshotArgs(target, outPath, req)

	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %v: %s", ErrScreenshotExec, err, truncate(stderr.String(), 512))
	}

	data, err := os.ReadFile(outPath) // #nosec G304 -- path from os.CreateTemp
	if err != nil || len(data) == 0 {
		return nil, fmt.Errorf("%w: no screenshot output produced", ErrScreenshotExec)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}

// resolveBin picks the browser binary for this render.
func (b *chromiumBackend) resolveBin() (string, bool) {
	if b.bin != "" {
		return b.bin, true
	}
	if b.lookPath != nil {
		return b.lookPath()
	}
	return FindBrowser()
}

// screenshotArgs builds the headless invocation. The flag set pins the
// window to the requested size, forces software rasterization with a
// single renderer process, and strips extensions, plugins, audio, and
// JIT execution. LCD text and subpixel positioning are disabled so the
// output stays sharp under monochrome/palette conversion.
func screenshotArgs(target, outPath string, req Request) []string {
	args := []string{
		target,
		"--headless",
		"--screenshot=" + outPath,
		fmt.Sprintf("--window-size=%d,%d", req.Width, req.Height),
		"--disable-dev-shm-usage",
		"--disable-gpu",
		"--use-gl=swiftshader",
		"--hide-scrollbars",
		"--in-process-gpu",
		"--js-flags=--jitless",
		"--disable-zero-copy",
		"--disable-gpu-memory-buffer-compositor-resources",
		"--disable-extensions",
		"--disable-plugins",
		"--mute-audio",
		"--renderer-process-limit=1",
		"--no-zygote",
		"--no-sandbox",
		"--disable-lcd-text",
		"--disable-font-subpixel-positioning",
	}
	if req.Timeout > 0 {
		args = append(args, fmt.Sprintf("--timeout=%d", req.Timeout.Milliseconds()))
	}
	return args
}

// truncate caps s at n bytes for log and error messages.
func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
