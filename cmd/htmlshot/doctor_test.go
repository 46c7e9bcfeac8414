package main

import (
	"bytes"
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

func TestRunDoctor_Environment(t *testing.T) {
	result := runDoctor()

	if result.Env.OS != runtime.GOOS {
		t.Errorf("Env.OS = %q, want %q", result.Env.OS, runtime.GOOS)
	}
	if result.Env.Arch != runtime.GOARCH {
		t.Errorf("Env.Arch = %q, want %q", result.Env.Arch, runtime.GOARCH)
	}
	if !result.System.TempWritable {
		t.Error("System.TempWritable = false")
	}
}

func TestRunDoctor_StatusReflectsFindings(t *testing.T) {
	result := runDoctor()

	switch result.Status {
	case "ready":
		if len(result.Errors) != 0 || len(result.Warnings) != 0 {
			t.Errorf("status ready with errors=%v warnings=%v", result.Errors, result.Warnings)
		}
	case "warnings":
		if len(result.Warnings) == 0 {
			t.Error("status warnings with no warnings recorded")
		}
	case "errors":
		if len(result.Errors) == 0 {
			t.Error("status errors with no errors recorded")
		}
	default:
		t.Errorf("unknown status %q", result.Status)
	}
}

func TestRunDoctorCmd_JSON(t *testing.T) {
	var stdout bytes.Buffer
	env := &Environment{Stdout: &stdout, Stderr: &bytes.Buffer{}}

	runDoctorCmd([]string{"--json"}, env)

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("doctor --json produced invalid JSON: %v\n%s", err, stdout.String())
	}
	if result.Env.OS == "" {
		t.Error("JSON output missing environment.os")
	}
}

func TestRunDoctorCmd_Text(t *testing.T) {
	var stdout bytes.Buffer
	env := &Environment{Stdout: &stdout, Stderr: &bytes.Buffer{}}

	runDoctorCmd(nil, env)

	out := stdout.String()
	for _, want := range []string{"htmlshot doctor", "os/arch:", "temp writable:", "status:"} {
		if !strings.Contains(out, want) {
			t.Errorf("doctor output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintDoctorResult_BrowserMissing(t *testing.T) {
	var buf bytes.Buffer
	printDoctorResult(&buf, &doctorResult{
		Status: "errors",
		Errors: []string{"no browser found"},
	})

	out := buf.String()
	if !strings.Contains(out, "browser:       not found") {
		t.Errorf("output missing browser line:\n%s", out)
	}
	if !strings.Contains(out, "ERROR: no browser found") {
		t.Errorf("output missing error line:\n%s", out)
	}
}
