package main

import (
	"time"

	flag "github.com/spf13/pflag"
)

// cliFlags holds parsed command-line flags.
type cliFlags struct {
	width     int
	height    int
	timeout   time.Duration
	out       string
	markdown  bool
	config    string
	browser   string
	noSandbox bool
	verbose   bool
	version   bool
}

const usageText = `Usage: htmlshot [flags] <target>

Renders an HTML document to a PNG screenshot using headless Chrome.

Target:
  a URL, a local HTML file path, or "-" to read HTML from stdin.

Commands:
  doctor        check browser detection and environment (--json for JSON)

Flags:
`

// parseFlags parses args and returns flags plus remaining positional args.
// Flag values of zero mean "not set"; merging with config happens in run.
func parseFlags(args []string) (*cliFlags, []string, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet("htmlshot", flag.ContinueOnError)
	fs.SortFlags = false

	fs.IntVarP(&flags.width, "width", "W", 0, "viewport width in pixels (default 800)")
	fs.IntVarP(&flags.height, "height", "H", 0, "viewport height in pixels (default 480)")
	fs.DurationVarP(&flags.timeout, "timeout", "t", 0, "navigation/capture timeout (default 30s)")
	fs.StringVarP(&flags.out, "out", "o", "", "output PNG path (default derived from target)")
	fs.BoolVarP(&flags.markdown, "markdown", "m", false, "treat input as Markdown")
	fs.StringVarP(&flags.config, "config", "c", "", "YAML config file path")
	fs.StringVar(&flags.browser, "browser", "", "browser binary path (overrides detection)")
	fs.BoolVar(&flags.noSandbox, "no-sandbox", false, "disable the Chrome sandbox (containers/CI)")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose logging to stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	fs.Usage = func() {
		out := fs.Output()
		_, _ = out.Write([]byte(usageText))
		_, _ = out.Write([]byte(fs.FlagUsages()))
	}

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return flags, fs.Args(), nil
}
