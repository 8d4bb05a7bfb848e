package subtitle

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Writer serializes cues to the SubRip text format.
type Writer struct {
	// OmitFinalSeparator drops the blank line after the last cue.
	// Word-level output files are written this way; sentence-level files
	// terminate every cue with a blank line.
	OmitFinalSeparator bool
}

// Write serializes the cues to a UTF-8 SRT file at path. The file handle
// is scoped to this call: it is flushed and closed on every return path,
// including an empty cue list.
func (w *Writer) Write(cues []Cue, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create SRT file: %w", err)
	}

	buf := bufio.NewWriter(file)
	writeErr := w.WriteTo(cues, buf)
	if err := buf.Flush(); writeErr == nil {
		writeErr = err
	}
	if err := file.Close(); writeErr == nil {
		writeErr = err
	}
	if writeErr != nil {
		return fmt.Errorf("failed to write SRT file: %w", writeErr)
	}
	return nil
}

// WriteTo serializes the cues to out.
func (w *Writer) WriteTo(cues []Cue, out io.Writer) error {
	for i, cue := range cues {
		last := i == len(cues)-1

		if _, err := fmt.Fprintf(out, "%d\n", cue.Index); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s --> %s\n",
			FormatTimestamp(cue.Start),
			FormatTimestamp(cue.End)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s\n", cue.Text); err != nil {
			return err
		}

		if last && w.OmitFinalSeparator {
			continue
		}
		if _, err := fmt.Fprint(out, "\n"); err != nil {
			return err
		}
	}
	return nil
}
