package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTempFile(t *testing.T) {
	path, cleanup, err := WriteTempFile("<html></html>", "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}
	defer cleanup()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if got := string(content); got != "<html></html>" {
		t.Errorf("content = %q, want %q", got, "<html></html>")
	}
	if !strings.HasSuffix(path, ".html") {
		t.Errorf("path %q missing .html suffix", path)
	}
	if base := filepath.Base(path); !strings.HasPrefix(base, "htmlshot-") {
		t.Errorf("basename %q missing htmlshot- prefix", base)
	}
}

func TestWriteTempFile_Cleanup(t *testing.T) {
	path, cleanup, err := WriteTempFile("x", "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}

	cleanup()
	if FileExists(path) {
		t.Error("file still exists after cleanup")
	}

	// Cleanup tolerates the file already being gone.
	cleanup()
}

func TestWriteTempFile_InvalidExtension(t *testing.T) {
	if _, _, err := WriteTempFile("x", ""); !errors.Is(err, ErrExtensionEmpty) {
		t.Errorf("WriteTempFile() error = %v, want ErrExtensionEmpty", err)
	}
}

func TestReserveTempFile(t *testing.T) {
	path, cleanup, err := ReserveTempFile("png")
	if err != nil {
		t.Fatalf("ReserveTempFile() error = %v", err)
	}
	defer cleanup()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat reserved file: %v", err)
	}
	if info.Size() != 0 {
		t.Errorf("reserved file size = %d, want 0", info.Size())
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("path %q missing .png suffix", path)
	}

	cleanup()
	if FileExists(path) {
		t.Error("file still exists after cleanup")
	}
}

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{name: "valid html", extension: "html", wantErr: nil},
		{name: "valid png", extension: "png", wantErr: nil},
		{name: "empty", extension: "", wantErr: ErrExtensionEmpty},
		{name: "forward slash", extension: "a/b", wantErr: ErrExtensionPathTraversal},
		{name: "backslash", extension: `a\b`, wantErr: ErrExtensionPathTraversal},
		{name: "null byte", extension: "a\x00b", wantErr: ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtension(tt.extension)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateExtension(%q) error = %v, want nil", tt.extension, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) error = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "exists.txt")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists() = false for regular file")
	}
	if FileExists(filepath.Join(dir, "missing.txt")) {
		t.Error("FileExists() = true for missing file")
	}
	if FileExists(dir) {
		t.Error("FileExists() = true for directory")
	}
}
