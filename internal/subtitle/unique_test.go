package subtitle

import (
	"os"
	"path/filepath"
	"testing"
)

func TestUniquePathAlwaysSuffixes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "video_full.srt")

	// Even with no collision, the base name is never returned unsuffixed.
	got := UniquePath(path)
	want := filepath.Join(dir, "video_full(1).srt")
	if got != want {
		t.Errorf("UniquePath(%q) = %q, want %q", path, got, want)
	}
}

func TestUniquePathIncrementsExistingSuffix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "video(3).srt")

	got := UniquePath(path)
	want := filepath.Join(dir, "video(4).srt")
	if got != want {
		t.Errorf("UniquePath(%q) = %q, want %q", path, got, want)
	}
}

func TestUniquePathSkipsOccupiedNames(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"video(1).srt", "video(2).srt"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	got := UniquePath(filepath.Join(dir, "video.srt"))
	want := filepath.Join(dir, "video(3).srt")
	if got != want {
		t.Errorf("UniquePath() = %q, want %q", got, want)
	}
}

func TestUniquePathRepeatedCallsIncrement(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "clip.srt")

	want := []string{"clip(1).srt", "clip(2).srt", "clip(3).srt"}
	for _, name := range want {
		got := UniquePath(base)
		if got != filepath.Join(dir, name) {
			t.Fatalf("UniquePath() = %q, want %q", got, filepath.Join(dir, name))
		}
		if err := os.WriteFile(got, nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
}
