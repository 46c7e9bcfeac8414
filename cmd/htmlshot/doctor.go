package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	htmlshot "github.com/alnah/go-htmlshot"
)

// doctorResult holds all diagnostic information.
type doctorResult struct {
	Status   string      `json:"status"` // "ready", "warnings", "errors"
	Browser  browserInfo `json:"browser"`
	Env      envInfo     `json:"environment"`
	System   systemInfo  `json:"system"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

// browserInfo holds Chrome/Chromium detection results.
type browserInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// envInfo holds environment detection results.
type envInfo struct {
	OS         string `json:"os"`
	Arch       string `json:"arch"`
	NoSandbox  string `json:"htmlshot_no_sandbox"`
	BrowserBin string `json:"htmlshot_browser_bin"`
}

// systemInfo holds system check results.
type systemInfo struct {
	TempWritable bool `json:"temp_writable"`
}

// runDoctorCmd executes the doctor command and returns an exit code.
// Exit codes: 0 = OK (including warnings), 1 = errors found.
func runDoctorCmd(args []string, env *Environment) int {
	jsonOutput := false
	for _, arg := range args {
		if arg == "--json" {
			jsonOutput = true
		}
	}

	result := runDoctor()

	if jsonOutput {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor performs all diagnostic checks.
func runDoctor() *doctorResult {
	result := &doctorResult{
		Status: "ready",
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  os.Getenv(htmlshot.EnvNoSandbox),
			BrowserBin: os.Getenv(htmlshot.EnvBrowserBin),
		},
	}

	checkBrowser(result)
	checkSystem(result)

	if len(result.Errors) > 0 {
		result.Status = "errors"
	} else if len(result.Warnings) > 0 {
		result.Status = "warnings"
	}

	return result
}

// checkBrowser detects a Chromium-based browser installation.
func checkBrowser(result *doctorResult) {
	path, found := htmlshot.FindBrowser()
	if !found {
		result.Errors = append(result.Errors,
			"no browser found. Install chromium, chromium-headless-shell, or chrome, or set "+htmlshot.EnvBrowserBin)
		return
	}

	if _, err := os.Stat(path); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("browser not found at %s", path))
		return
	}

	result.Browser.Found = true
	result.Browser.Path = path

	cmd := exec.Command(path, "--version")
	out, err := cmd.Output()
	if err == nil {
		result.Browser.Version = strings.TrimSpace(string(out))
	} else {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("could not get browser version: %v", err))
	}

	result.Browser.Sandbox = os.Getenv(htmlshot.EnvNoSandbox) != "1"
}

// checkSystem verifies the temp directory is writable; both backends
// stage HTML and screenshot files there.
func checkSystem(result *doctorResult) {
	probe := filepath.Join(os.TempDir(), "htmlshot-doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
		result.Errors = append(result.Errors,
			fmt.Sprintf("temp directory not writable: %v", err))
		return
	}
	_ = os.Remove(probe)
	result.System.TempWritable = true
}

// printDoctorResult writes a human-readable report.
func printDoctorResult(w io.Writer, result *doctorResult) {
	fmt.Fprintf(w, "htmlshot doctor\n\n")

	if result.Browser.Found {
		fmt.Fprintf(w, "  browser:       %s\n", result.Browser.Path)
		if result.Browser.Version != "" {
			fmt.Fprintf(w, "  version:       %s\n", result.Browser.Version)
		}
		fmt.Fprintf(w, "  sandbox:       %v\n", result.Browser.Sandbox)
	} else {
		fmt.Fprintf(w, "  browser:       not found\n")
	}
	fmt.Fprintf(w, "  os/arch:       %s/%s\n", result.Env.OS, result.Env.Arch)
	fmt.Fprintf(w, "  temp writable: %v\n", result.System.TempWritable)

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "\nWARNING: %s\n", warning)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(w, "\nERROR: %s\n", e)
	}

	fmt.Fprintf(w, "\nstatus: %s\n", result.Status)
}
