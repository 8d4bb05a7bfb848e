package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCollectMediaFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.mp4", "b.mkv", "c.mp3", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("directory argument picks media files only", func(t *testing.T) {
		files, err := collectMediaFiles([]string{dir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 3 {
			t.Errorf("got %d files, want 3: %v", len(files), files)
		}
	})

	t.Run("explicit media file", func(t *testing.T) {
		files, err := collectMediaFiles([]string{filepath.Join(dir, "a.mp4")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(files) != 1 {
			t.Errorf("got %d files, want 1", len(files))
		}
	})

	t.Run("non-media file rejected", func(t *testing.T) {
		if _, err := collectMediaFiles([]string{filepath.Join(dir, "notes.txt")}); err == nil {
			t.Error("expected error for unsupported file type")
		}
	})

	t.Run("missing file rejected", func(t *testing.T) {
		if _, err := collectMediaFiles([]string{filepath.Join(dir, "missing.mp4")}); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("directory without media files", func(t *testing.T) {
		empty := t.TempDir()
		if _, err := collectMediaFiles([]string{empty}); err == nil {
			t.Error("expected error for empty directory")
		}
	})
}

func TestModelKnown(t *testing.T) {
	tests := []struct {
		provider string
		model    string
		want     bool
	}{
		{"openai", "whisper-1", true},
		{"openai", "gemini-2.5-flash", false},
		{"gemini", "gemini-2.5-flash", true},
		{"gemini", "whisper-1", false},
		{"unknown", "whisper-1", false},
	}

	for _, tt := range tests {
		if got := modelKnown(tt.provider, tt.model); got != tt.want {
			t.Errorf("modelKnown(%q, %q) = %v, want %v", tt.provider, tt.model, got, tt.want)
		}
	}
}

func TestDefaultModel(t *testing.T) {
	if got := defaultModel("openai"); got != "whisper-1" {
		t.Errorf("defaultModel(openai) = %q", got)
	}
	if got := defaultModel("gemini"); got != "gemini-2.5-flash" {
		t.Errorf("defaultModel(gemini) = %q", got)
	}
}
