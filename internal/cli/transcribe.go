package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/srtgen/srtgen/internal/audio"
	"github.com/srtgen/srtgen/internal/batch"
	"github.com/srtgen/srtgen/internal/settings"
	"github.com/srtgen/srtgen/internal/subtitle"
	"github.com/srtgen/srtgen/internal/transcribe"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe [media files or directories]",
	Short: "Transcribe video files into SRT subtitle files",
	Long: `Transcribe the given video (or audio) files into SRT subtitle files.

Each input produces up to two outputs in the output directory, depending
on the enabled modes:
  <name>_full.srt     word-level captions packed under the character limit
  <name>_cropped.srt  one caption per recognized sentence

Output names never collide with existing files: a numeric suffix like
"(1)" is always appended and incremented as needed.

Options not given as flags come from the settings file; the values used
for a run are saved back so the next run remembers them.

Examples:
  srtgen transcribe lecture.mp4 -o ./subs
  srtgen transcribe ./recordings -o ./subs --sentence-level --language German
  srtgen transcribe talk.mp4 -o ./subs --char-limit 32 --remove-chars ". ,"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTranscribe,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)

	transcribeCmd.Flags().
		StringP("output-dir", "o", "", "Directory for generated SRT files")
	transcribeCmd.Flags().
		StringP("language", "l", "", "Spoken language (English, Dutch, German, Slovak)")
	transcribeCmd.Flags().
		StringP("model", "m", "", "Transcription model to use")
	transcribeCmd.Flags().
		String("provider", "", "Transcription provider (openai, gemini)")
	transcribeCmd.Flags().
		StringP("api-key", "k", "", "Provider API key (or set OPENAI_API_KEY / GEMINI_API_KEY)")
	transcribeCmd.Flags().
		Bool("word-level", false, "Write word-level output")
	transcribeCmd.Flags().
		Bool("sentence-level", false, "Write sentence-level output")
	transcribeCmd.Flags().
		Int("char-limit", 0, "Character budget per word-level caption line")
	transcribeCmd.Flags().
		String("remove-chars", "", "Whitespace-separated substrings to strip from captions")
	transcribeCmd.Flags().
		Bool("no-progress", false, "Disable the progress bar")
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	files, err := collectMediaFiles(args)
	if err != nil {
		return err
	}

	settingsPath := settings.DefaultPath()
	opts := settings.Load(settingsPath)
	applyFlagOverrides(cmd, &opts)

	if lang, ok := settings.NormalizeLanguage(opts.Language); ok {
		opts.Language = lang
	}
	if !cmd.Flags().Changed("model") && !modelKnown(opts.Provider, opts.Model) {
		opts.Model = defaultModel(opts.Provider)
	}

	if opts.OutputDirectory == "" {
		return fmt.Errorf("no output folder selected: use --output-dir")
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	if len(files) > 0 {
		opts.InputDirectory = filepath.Dir(files[0])
	}
	if err := settings.Save(opts, settingsPath); err != nil {
		logger.Warnw("Failed to save settings", "error", err)
	}

	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = apiKeyFromEnv(opts.Provider)
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required: use --api-key or set %s", apiKeyEnvVar(opts.Provider))
	}

	runner := &batch.Runner{Logger: logger}
	provider := transcribe.Provider(opts.Provider)

	if opts.WordLevel {
		runner.Word, err = transcribe.Factory(ctx, provider, apiKey, transcribe.Options{
			Language:       opts.Language,
			Model:          opts.Model,
			WordTimestamps: true,
		})
		if err != nil {
			return fmt.Errorf("failed to create word-level transcriber: %w", err)
		}
	}
	if opts.SentenceLevel {
		runner.Sentence, err = transcribe.Factory(ctx, provider, apiKey, transcribe.Options{
			Language: opts.Language,
			Model:    opts.Model,
		})
		if err != nil {
			return fmt.Errorf("failed to create sentence-level transcriber: %w", err)
		}
	}

	logger.Infow("Starting transcription",
		"files", len(files),
		"output_dir", opts.OutputDirectory,
		"provider", opts.Provider,
		"model", opts.Model,
		"language", opts.Language,
		"word_level", opts.WordLevel,
		"sentence_level", opts.SentenceLevel,
	)

	noProgress, _ := cmd.Flags().GetBool("no-progress")
	if !noProgress {
		bar := progressbar.Default(int64(len(files)), "transcribing")
		runner.OnProgress = func(done, total int) {
			_ = bar.Set(done)
		}
	}

	job := batch.Job{
		Files:         files,
		OutputDir:     opts.OutputDirectory,
		WordLevel:     opts.WordLevel,
		SentenceLevel: opts.SentenceLevel,
		CharLimit:     opts.CharLimit,
		Removals:      subtitle.ParseRemovals(opts.CharsToRemove),
	}

	if err := runner.Run(ctx, job); err != nil {
		return err
	}

	fmt.Printf("Transcription completed: %d file(s)\n", len(files))
	return nil
}

// applyFlagOverrides layers explicitly set flags over the loaded settings.
func applyFlagOverrides(cmd *cobra.Command, opts *settings.Settings) {
	if cmd.Flags().Changed("output-dir") {
		opts.OutputDirectory, _ = cmd.Flags().GetString("output-dir")
	}
	if cmd.Flags().Changed("language") {
		opts.Language, _ = cmd.Flags().GetString("language")
	}
	if cmd.Flags().Changed("model") {
		opts.Model, _ = cmd.Flags().GetString("model")
	}
	if cmd.Flags().Changed("provider") {
		opts.Provider, _ = cmd.Flags().GetString("provider")
	}
	if cmd.Flags().Changed("word-level") {
		opts.WordLevel, _ = cmd.Flags().GetBool("word-level")
	}
	if cmd.Flags().Changed("sentence-level") {
		opts.SentenceLevel, _ = cmd.Flags().GetBool("sentence-level")
	}
	if cmd.Flags().Changed("char-limit") {
		opts.CharLimit, _ = cmd.Flags().GetInt("char-limit")
	}
	if cmd.Flags().Changed("remove-chars") {
		opts.CharsToRemove, _ = cmd.Flags().GetString("remove-chars")
	}
}

// collectMediaFiles expands the positional arguments into a flat list of
// media files. Directory arguments contribute their directly contained
// media files; non-media file arguments are rejected.
func collectMediaFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("file not found: %s", arg)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(arg)
			if err != nil {
				return nil, fmt.Errorf("failed to read directory %s: %w", arg, err)
			}
			for _, entry := range entries {
				if entry.IsDir() {
					continue
				}
				path := filepath.Join(arg, entry.Name())
				if audio.IsMediaFile(path) {
					files = append(files, path)
				}
			}
			continue
		}

		if !audio.IsMediaFile(arg) {
			return nil, fmt.Errorf("unsupported file type: %s (expected audio or video file)", filepath.Ext(arg))
		}
		files = append(files, arg)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no input files selected")
	}
	return files, nil
}

func modelKnown(provider, model string) bool {
	for _, m := range settings.ProviderModels[provider] {
		if m == model {
			return true
		}
	}
	return false
}

func defaultModel(provider string) string {
	switch provider {
	case "gemini":
		return "gemini-2.5-flash"
	default:
		return "whisper-1"
	}
}

func apiKeyFromEnv(provider string) string {
	return os.Getenv(apiKeyEnvVar(provider))
}

func apiKeyEnvVar(provider string) string {
	if provider == "gemini" {
		return "GEMINI_API_KEY"
	}
	return "OPENAI_API_KEY"
}
