package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds the options remembered between runs. Every field maps to
// one key in the settings file.
type Settings struct {
	InputDirectory  string `toml:"input_directory"`
	OutputDirectory string `toml:"output_directory"`
	Language        string `toml:"language"`
	Model           string `toml:"model"`
	Provider        string `toml:"provider"`
	WordLevel       bool   `toml:"word_level"`
	SentenceLevel   bool   `toml:"sentence_level"`
	CharLimit       int    `toml:"char_limit"`
	CharsToRemove   string `toml:"chars_to_remove"`
}

// Supported transcription languages.
var Languages = []string{"English", "Dutch", "German", "Slovak"}

// Models accepted per provider.
var ProviderModels = map[string][]string{
	"openai": {"whisper-1", "gpt-4o-transcribe", "gpt-4o-mini-transcribe"},
	"gemini": {"gemini-2.5-flash", "gemini-2.5-pro"},
}

// Default returns the built-in settings used when no file exists or the
// existing file cannot be parsed.
func Default() Settings {
	return Settings{
		Language:      "English",
		Model:         "whisper-1",
		Provider:      "openai",
		WordLevel:     true,
		SentenceLevel: false,
		CharLimit:     20,
	}
}

// DefaultPath returns the settings file location: $SRTGEN_CONFIG if set,
// otherwise srtgen.toml under the user config directory.
func DefaultPath() string {
	if p := os.Getenv("SRTGEN_CONFIG"); p != "" {
		return p
	}
	configDir, err := os.UserConfigDir()
	if err != nil || configDir == "" {
		configDir = os.TempDir()
	}
	return filepath.Join(configDir, "srtgen", "srtgen.toml")
}

// Load reads settings from path. A missing or malformed file is treated as
// absent and yields the defaults; load problems are never surfaced.
func Load(path string) Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default()
	}

	s := Default()
	if err := toml.Unmarshal(data, &s); err != nil {
		return Default()
	}
	return s
}

// Save writes the settings to path, creating parent directories as needed.
func Save(s Settings, path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// NormalizeLanguage maps a user-entered language onto the canonical name,
// matching case-insensitively. Returns false for unsupported languages.
func NormalizeLanguage(lang string) (string, bool) {
	lang = strings.TrimSpace(lang)
	for _, candidate := range Languages {
		if strings.EqualFold(candidate, lang) {
			return candidate, true
		}
	}
	return "", false
}

// Validate checks the per-run invariants the pipeline depends on.
func (s Settings) Validate() error {
	if _, ok := NormalizeLanguage(s.Language); !ok {
		return fmt.Errorf("unsupported language %q: supported languages are %s",
			s.Language, strings.Join(Languages, ", "))
	}

	models, ok := ProviderModels[s.Provider]
	if !ok {
		return fmt.Errorf("unsupported provider %q: use openai or gemini", s.Provider)
	}

	valid := false
	for _, m := range models {
		if m == s.Model {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unsupported model %q for provider %s: supported models are %s",
			s.Model, s.Provider, strings.Join(models, ", "))
	}

	if !s.WordLevel && !s.SentenceLevel {
		return fmt.Errorf("select at least one transcription mode")
	}
	if s.WordLevel && s.CharLimit < 1 {
		return fmt.Errorf("character limit must be at least 1, got %d", s.CharLimit)
	}

	return nil
}
