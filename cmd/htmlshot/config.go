package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alnah/go-htmlshot/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds file-based configuration for the CLI.
// Precedence: command-line flags > config file > library defaults.
type Config struct {
	Render RenderConfig `yaml:"render"`
	Output OutputConfig `yaml:"output"`
}

// RenderConfig defines screenshot rendering options.
type RenderConfig struct {
	Width      int    `yaml:"width"`      // Viewport width in pixels (0 = library default)
	Height     int    `yaml:"height"`     // Viewport height in pixels (0 = library default)
	Timeout    string `yaml:"timeout"`    // Go duration string, e.g. "30s" (empty = default)
	BrowserBin string `yaml:"browserBin"` // Browser binary path (empty = detect)
	NoSandbox  bool   `yaml:"noSandbox"`  // Disable the Chrome sandbox
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Default output directory (empty = current directory)
}

// DefaultConfig returns a neutral configuration deferring to library defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads and parses a YAML config file. Unknown fields are
// rejected to surface typos early.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// ParsedTimeout returns the configured timeout as a duration.
// An empty value yields zero (library default applies).
func (c *Config) ParsedTimeout() (time.Duration, error) {
	if c.Render.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Render.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: render.timeout: %v", ErrConfigParse, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: render.timeout cannot be negative", ErrConfigParse)
	}
	return d, nil
}
