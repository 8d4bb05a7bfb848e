package transcribe

import (
	"context"
	"fmt"

	"github.com/srtgen/srtgen/internal/subtitle"
)

// transcription result
type Result struct {
	Segments []subtitle.Segment
	Language string
	Duration float64
}

// interface for audio transcription
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (*Result, error)
}

// transcription service provider
type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderGemini Provider = "gemini"
)

// transcription options
type Options struct {
	Language string // Source language of the audio (canonical name, e.g. "English")
	Model    string
	Prompt   string
	// WordTimestamps requests per-word timing nested inside each segment.
	// Only providers that can report word-level timing accept it.
	WordTimestamps bool
}

// ISO 639-1 codes for the supported languages.
var languageCodes = map[string]string{
	"english": "en",
	"dutch":   "nl",
	"german":  "de",
	"slovak":  "sk",
}

// LanguageCode maps a language name onto its ISO 639-1 code. Unknown
// languages pass through unchanged so the engine can reject them.
func LanguageCode(language string) string {
	if code, ok := languageCodes[normalizeKey(language)]; ok {
		return code
	}
	return language
}

func normalizeKey(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r != ' ' {
			out = append(out, r)
		}
	}
	return string(out)
}

// creates transcriber based on provider
func Factory(
	ctx context.Context,
	provider Provider,
	apiKey string,
	opts Options,
) (Transcriber, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAITranscriber(ctx, apiKey, opts)
	case ProviderGemini:
		if opts.WordTimestamps {
			return nil, fmt.Errorf("provider gemini does not support word timestamps")
		}
		return NewGeminiTranscriber(ctx, apiKey, opts)
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
