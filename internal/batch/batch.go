package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/srtgen/srtgen/internal/audio"
	"github.com/srtgen/srtgen/internal/logging"
	"github.com/srtgen/srtgen/internal/subtitle"
	"github.com/srtgen/srtgen/internal/transcribe"
	"github.com/srtgen/srtgen/internal/video"
)

// Output filename suffixes distinguishing the two modes.
const (
	WordSuffix     = "_full"
	SentenceSuffix = "_cropped"
)

// Job describes one batch run. The values are fixed for the whole run;
// nothing mutates them while files are being processed.
type Job struct {
	Files         []string
	OutputDir     string
	WordLevel     bool
	SentenceLevel bool
	CharLimit     int
	Removals      []string
}

// Runner processes a batch of media files strictly sequentially: each file
// is transcribed and its subtitle files written before the next file
// starts. The first failure aborts the remaining batch; outputs already
// written stay in place.
type Runner struct {
	// Engine used for word-level output; must report word timestamps.
	Word transcribe.Transcriber
	// Engine used for sentence-level output.
	Sentence transcribe.Transcriber

	Logger *logging.Logger

	// OnProgress is called after each input file completes.
	OnProgress func(done, total int)
}

// Run validates the job preconditions and processes every file in order.
func (r *Runner) Run(ctx context.Context, job Job) error {
	if err := r.validate(job); err != nil {
		return err
	}

	total := len(job.Files)
	for i, file := range job.Files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := r.processFile(ctx, file, job); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(file), err)
		}
		if r.OnProgress != nil {
			r.OnProgress(i+1, total)
		}
	}

	return nil
}

// validate checks the run preconditions before any engine work happens.
func (r *Runner) validate(job Job) error {
	if len(job.Files) == 0 {
		return fmt.Errorf("no input files selected")
	}
	if job.OutputDir == "" {
		return fmt.Errorf("no output folder selected")
	}
	if !job.WordLevel && !job.SentenceLevel {
		return fmt.Errorf("select at least one transcription mode")
	}
	if job.WordLevel {
		if r.Word == nil {
			return fmt.Errorf("no word-level transcriber configured")
		}
		if job.CharLimit < 1 {
			return fmt.Errorf("character limit must be at least 1, got %d", job.CharLimit)
		}
	}
	if job.SentenceLevel && r.Sentence == nil {
		return fmt.Errorf("no sentence-level transcriber configured")
	}
	return nil
}

func (r *Runner) processFile(ctx context.Context, path string, job Job) error {
	tempDir, err := os.MkdirTemp("", "srtgen-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	audioPath, err := r.prepareAudio(ctx, path, tempDir)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	if job.WordLevel {
		result, err := r.Word.Transcribe(ctx, audioPath)
		if err != nil {
			return fmt.Errorf("word-level transcription failed: %w", err)
		}

		cues := subtitle.SegmentWords(result.Segments, job.CharLimit, job.Removals)
		outPath := subtitle.UniquePath(
			filepath.Join(job.OutputDir, base+WordSuffix+".srt"),
		)

		writer := &subtitle.Writer{OmitFinalSeparator: true}
		if err := writer.Write(cues, outPath); err != nil {
			return err
		}

		if r.Logger != nil {
			r.Logger.Infow("Wrote word-level subtitles",
				"output", outPath,
				"cues", len(cues),
			)
		}
	}

	if job.SentenceLevel {
		result, err := r.Sentence.Transcribe(ctx, audioPath)
		if err != nil {
			return fmt.Errorf("sentence-level transcription failed: %w", err)
		}

		cues := subtitle.SegmentSentences(result.Segments, job.Removals)
		outPath := subtitle.UniquePath(
			filepath.Join(job.OutputDir, base+SentenceSuffix+".srt"),
		)

		writer := &subtitle.Writer{}
		if err := writer.Write(cues, outPath); err != nil {
			return err
		}

		if r.Logger != nil {
			r.Logger.Infow("Wrote sentence-level subtitles",
				"output", outPath,
				"cues", len(cues),
			)
		}
	}

	return nil
}

// prepareAudio converts the input into a compressed mono audio file the
// engines accept. Video inputs have their audio track extracted; audio
// inputs are recompressed.
func (r *Runner) prepareAudio(ctx context.Context, path, tempDir string) (string, error) {
	audioPath := filepath.Join(tempDir, "audio.mp3")

	if audio.IsVideoFile(path) {
		opts := video.DefaultExtractAudioOptions()
		if err := video.ExtractAudio(ctx, path, audioPath, opts); err != nil {
			return "", fmt.Errorf("failed to extract audio: %w", err)
		}
		return audioPath, nil
	}

	if err := audio.CompressAudio(ctx, path, audioPath, audio.DefaultCompressionOptions()); err != nil {
		return "", fmt.Errorf("failed to compress audio: %w", err)
	}
	return audioPath, nil
}
