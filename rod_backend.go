package htmlshot

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"time"

	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-htmlshot/internal/fileutil"
)

// rodBackend renders through the shared embedded browser session.
type rodBackend struct {
	session *Session
	logger  *slog.Logger
}

// Name returns the backend name.
func (b *rodBackend) Name() string { return "rod" }

// Render navigates a fresh page to the request content and captures a
// viewport PNG. Inline HTML is staged to a temporary file and loaded via
// file:// — setting the document content on about:blank would break
// resolution of relative stylesheet and font references. The temp file
// is always removed, whatever the outcome.
func (b *rodBackend) Render(ctx context.Context, req Request) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser, err := b.session.Acquire()
	if err != nil {
		return nil, err
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

	page, err := browser.Page(proto.TargetCreateTarget{URL: target})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Exact output size: viewport = requested dimensions, scale factor 1.
	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             req.Width,
		Height:            req.Height,
		DeviceScaleFactor: 1,
		Mobile:            false,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}

	// The request timeout bounds load, idle wait, and capture; a sooner
	// context deadline tightens it further.
	timeout := req.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	bounded := page.Timeout(timeout)
	if err := bounded.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := bounded.WaitIdle(timeout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	buf, err := bounded.Screenshot(false, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCapture, err)
	}

	img, err := png.Decode(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return img, nil
}
