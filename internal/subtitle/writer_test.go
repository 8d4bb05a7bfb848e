package subtitle

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestWriteToSentenceStyle(t *testing.T) {
	cues := []Cue{
		{Index: 1, Start: 0.0, End: 1.5, Text: "Hello there."},
		{Index: 2, Start: 1.5, End: 3.0, Text: "How are you?"},
	}

	var sb strings.Builder
	w := &Writer{}
	if err := w.WriteTo(cues, &sb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "1\n" +
		"00:00:00,000 --> 00:00:01,500\n" +
		"Hello there.\n" +
		"\n" +
		"2\n" +
		"00:00:01,500 --> 00:00:03,000\n" +
		"How are you?\n" +
		"\n"
	if sb.String() != want {
		t.Errorf("WriteTo() = %q, want %q", sb.String(), want)
	}
}

func TestWriteToWordStyleOmitsFinalSeparator(t *testing.T) {
	cues := []Cue{
		{Index: 1, Start: 0.0, End: 0.5, Text: "Hello"},
		{Index: 2, Start: 0.5, End: 2.0, Text: "world today"},
	}

	var sb strings.Builder
	w := &Writer{OmitFinalSeparator: true}
	if err := w.WriteTo(cues, &sb); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "1\n" +
		"00:00:00,000 --> 00:00:00,500\n" +
		"Hello\n" +
		"\n" +
		"2\n" +
		"00:00:00,500 --> 00:00:02,000\n" +
		"world today\n"
	if sb.String() != want {
		t.Errorf("WriteTo() = %q, want %q", sb.String(), want)
	}
}

func TestWriteEmptyCueList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.srt")

	w := &Writer{}
	if err := w.Write(nil, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file not created: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty file, got %q", data)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	cues := []Cue{
		{Index: 1, Start: 0.0, End: 1.25, Text: "First line"},
		{Index: 2, Start: 1.25, End: 3.5, Text: "Second line"},
		{Index: 3, Start: 3.5, End: 7.0, Text: "Third line"},
	}

	for _, omit := range []bool{false, true} {
		path := filepath.Join(t.TempDir(), "out.srt")
		w := &Writer{OmitFinalSeparator: omit}
		if err := w.Write(cues, path); err != nil {
			t.Fatalf("write failed: %v", err)
		}

		parsed, err := ParseSRT(path)
		if err != nil {
			t.Fatalf("parse failed: %v", err)
		}
		if !reflect.DeepEqual(parsed, cues) {
			t.Errorf("omit=%v: round trip = %+v, want %+v", omit, parsed, cues)
		}
	}
}
