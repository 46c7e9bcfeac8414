package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	htmlshot "github.com/alnah/go-htmlshot"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput    = errors.New("no target given (expected a URL, file path, or \"-\" for stdin)")
	ErrReadInput  = errors.New("failed to read input")
	ErrWriteImage = errors.New("failed to write output image")
)

// run executes a single capture: merge flags and config, build the
// renderer, render, and write the PNG.
func run(flags *cliFlags, args []string, env *Environment) error {
	if len(args) != 1 {
		return ErrNoInput
	}
	target := args[0]

	cfg := DefaultConfig()
	if flags.config != "" {
		loaded, err := LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	opts, err := rendererOptions(flags, cfg, env)
	if err != nil {
		return err
	}

	renderer := htmlshot.NewRenderer(opts...)
	defer renderer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	width := firstPositive(flags.width, cfg.Render.Width)
	height := firstPositive(flags.height, cfg.Render.Height)

	img, err := capture(ctx, renderer, flags, env, target, width, height)
	if err != nil {
		return err
	}

	outPath := outputPath(flags, cfg, target)
	if err := writePNG(outPath, img); err != nil {
		return err
	}

	if flags.verbose {
		bounds := img.Bounds()
		fmt.Fprintf(env.Stderr, "wrote %s (%dx%d)\n", outPath, bounds.Dx(), bounds.Dy())
	}
	return nil
}

// capture dispatches to the right renderer entry point for the target.
func capture(ctx context.Context, renderer *htmlshot.Renderer, flags *cliFlags, env *Environment, target string, width, height int) (image.Image, error) {
	if flags.markdown {
		content, err := readInput(env, target)
		if err != nil {
			return nil, err
		}
		return renderer.CaptureMarkdown(ctx, content, width, height)
	}

	if target == "-" {
		content, err := readInput(env, target)
		if err != nil {
			return nil, err
		}
		return renderer.CaptureHTML(ctx, content, width, height)
	}

	return renderer.CaptureTarget(ctx, target, width, height)
}

// rendererOptions builds library options from flags and config.
func rendererOptions(flags *cliFlags, cfg *Config, env *Environment) ([]htmlshot.Option, error) {
	var opts []htmlshot.Option

	timeout := flags.timeout
	if timeout == 0 {
		parsed, err := cfg.ParsedTimeout()
		if err != nil {
			return nil, err
		}
		timeout = parsed
	}
	if timeout > 0 {
		opts = append(opts, htmlshot.WithTimeout(timeout))
	}

	if bin := firstNonEmpty(flags.browser, cfg.Render.BrowserBin); bin != "" {
		opts = append(opts, htmlshot.WithBrowserBin(bin))
	}
	if flags.noSandbox || cfg.Render.NoSandbox {
		opts = append(opts, htmlshot.WithNoSandbox(true))
	}
	if flags.verbose {
		logger := slog.New(slog.NewTextHandler(env.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, htmlshot.WithLogger(logger))
	}

	return opts, nil
}

// readInput reads the capture source: a file path or stdin for "-".
func readInput(env *Environment, target string) (string, error) {
	if target == "-" {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(target) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return string(data), nil
}

// outputPath derives the PNG destination from flags, config, and target.
func outputPath(flags *cliFlags, cfg *Config, target string) string {
	if flags.out != "" {
		return flags.out
	}

	name := "screenshot.png"
	if target != "-" && !strings.Contains(target, "://") {
		base := filepath.Base(target)
		name = strings.TrimSuffix(base, filepath.Ext(base)) + ".png"
	}

	if cfg.Output.Dir != "" {
		return filepath.Join(cfg.Output.Dir, name)
	}
	return name
}

// writePNG encodes img to path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path) // #nosec G304 -- user-provided output path
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteImage, err)
	}

	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %v", ErrWriteImage, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteImage, err)
	}
	return nil
}

// firstPositive returns the first value > 0, or 0.
func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

// firstNonEmpty returns the first non-empty string, or "".
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
