package htmlshot

import (
	"os"
	"os/exec"
	"runtime"
)

// Environment variables recognized by the library.
const (
	// EnvBrowserBin overrides browser binary detection for both backends.
	EnvBrowserBin = "HTMLSHOT_BROWSER_BIN"

	// EnvNoSandbox disables the Chrome sandbox when set to "1".
	// Required in most containers and CI environments.
	EnvNoSandbox = "HTMLSHOT_NO_SANDBOX"
)

// pathCandidates are probed against PATH in order. headless-shell first:
// it is the smallest install and the usual choice on e-ink devices.
var pathCandidates = []string{
	"chromium-headless-shell",
	"chromium",
	"chrome",
	"google-chrome",
}

// darwinAppPaths cover macOS installs, where Chrome is typically an app
// bundle rather than on PATH.
var darwinAppPaths = []string{
	"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	"/Applications/Chromium.app/Contents/MacOS/Chromium",
}

// FindBrowser locates a Chromium-based browser binary. Search order:
// the HTMLSHOT_BROWSER_BIN override, PATH candidates, then on macOS the
// well-known application bundles. Returns false if nothing is found.
// No side effects; deterministic for a fixed PATH and filesystem state.
func FindBrowser() (string, bool) {
	if bin := os.Getenv(EnvBrowserBin); bin != "" {
		return bin, true
	}

	for _, candidate := range pathCandidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, true
		}
	}

	if runtime.GOOS == "darwin" {
		for _, path := range darwinAppPaths {
			if isExecutable(path) {
				return path, true
			}
		}
	}

	return "", false
}

// isExecutable reports whether path is a regular file with an execute bit.
func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return info.Mode().Perm()&0o111 != 0
}

// noSandboxEnabled reports whether the sandbox is disabled via env.
func noSandboxEnabled() bool {
	return os.Getenv(EnvNoSandbox) == "1"
}
