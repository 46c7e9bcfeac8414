package htmlshot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveTarget(t *testing.T) {
	dir := t.TempDir()
	local := filepath.Join(dir, "page.html")
	if err := os.WriteFile(local, []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		target     string
		wantPrefix string
		wantSame   bool
	}{
		{
			name:       "existing file becomes file url",
			target:     local,
			wantPrefix: "file://",
		},
		{
			name:     "url passes through",
			target:   "https://example.com/page",
			wantSame: true,
		},
		{
			name:     "missing path passes through",
			target:   filepath.Join(dir, "missing.html"),
			wantSame: true,
		},
		{
			name:     "directory passes through",
			target:   dir,
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveTarget(tt.target)
			if tt.wantSame {
				if got != tt.target {
					t.Errorf("resolveTarget(%q) = %q, want unchanged", tt.target, got)
				}
				return
			}
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("resolveTarget(%q) = %q, want %q prefix", tt.target, got, tt.wantPrefix)
			}
			if !strings.HasSuffix(got, "page.html") {
				t.Errorf("resolveTarget(%q) = %q, want path preserved", tt.target, got)
			}
		})
	}
}

func TestFileURL_Absolute(t *testing.T) {
	got := fileURL("/tmp/page.html")
	if got != "file:///tmp/page.html" {
		t.Errorf("fileURL() = %q", got)
	}
}

func TestFileURL_RelativeBecomesAbsolute(t *testing.T) {
	got := fileURL("page.html")
	if !strings.HasPrefix(got, "file://") {
		t.Errorf("fileURL() = %q, want file:// prefix", got)
	}
	if strings.HasPrefix(got, "file://page") {
		t.Errorf("fileURL() = %q, want absolute path", got)
	}
}
