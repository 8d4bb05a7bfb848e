package transcribe

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/srtgen/srtgen/internal/audio"
	"github.com/srtgen/srtgen/internal/subtitle"
)

// implements Transcriber interface using OpenAI Audio API
type OpenAITranscriber struct {
	client  openai.Client
	model   string
	options Options
}

// word from an OpenAI Whisper verbose_json response
type whisperWord struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// segment from an OpenAI Whisper verbose_json response
type whisperSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// verbose_json response structure from Whisper
type whisperVerboseResponse struct {
	Text     string           `json:"text"`
	Segments []whisperSegment `json:"segments"`
	Words    []whisperWord    `json:"words"`
	Language string           `json:"language"`
	Duration float64          `json:"duration"`
}

func NewOpenAITranscriber(
	ctx context.Context,
	apiKey string,
	opts Options,
) (*OpenAITranscriber, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	model := opts.Model
	if model == "" {
		model = "whisper-1"
	}

	return &OpenAITranscriber{
		client:  client,
		model:   model,
		options: opts,
	}, nil
}

// transcribes a single audio file
func (t *OpenAITranscriber) Transcribe(
	ctx context.Context,
	audioPath string,
) (*Result, error) {
	if _, err := os.Stat(audioPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("audio file not found: %s", audioPath)
	}

	file, err := os.Open(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer file.Close()

	duration, _ := audio.GetDuration(audioPath)

	granularities := []string{"segment"}
	if t.options.WordTimestamps {
		granularities = []string{"word", "segment"}
	}

	params := openai.AudioTranscriptionNewParams{
		File:                   file,
		Model:                  openai.AudioModel(t.model),
		ResponseFormat:         openai.AudioResponseFormatVerboseJSON,
		TimestampGranularities: granularities,
	}

	if t.options.Language != "" {
		params.Language = openai.String(LanguageCode(t.options.Language))
	}
	if t.options.Prompt != "" {
		params.Prompt = openai.String(t.options.Prompt)
	}

	resp, err := t.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	segments, err := t.parseVerboseJSONResponse(resp.RawJSON(), duration.Seconds())
	if err != nil {
		segments = []subtitle.Segment{{
			Start: 0,
			End:   duration.Seconds(),
			Text:  strings.TrimSpace(resp.Text),
		}}
	}

	return &Result{
		Segments: segments,
		Language: t.options.Language,
		Duration: duration.Seconds(),
	}, nil
}

func (t *OpenAITranscriber) parseVerboseJSONResponse(
	rawJSON string,
	fallbackDuration float64,
) ([]subtitle.Segment, error) {
	if rawJSON == "" {
		return nil, fmt.Errorf("empty response")
	}

	var verboseResp whisperVerboseResponse
	if err := json.Unmarshal([]byte(rawJSON), &verboseResp); err != nil {
		return nil, fmt.Errorf("failed to parse verbose_json response: %w", err)
	}

	if len(verboseResp.Segments) == 0 {
		if verboseResp.Text == "" {
			return nil, fmt.Errorf("no segments or text in response")
		}
		dur := fallbackDuration
		if verboseResp.Duration > 0 {
			dur = verboseResp.Duration
		}
		return []subtitle.Segment{{
			Start: 0,
			End:   dur,
			Text:  strings.TrimSpace(verboseResp.Text),
		}}, nil
	}

	segments := make([]subtitle.Segment, 0, len(verboseResp.Segments))
	for _, seg := range verboseResp.Segments {
		segments = append(segments, subtitle.Segment{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}

	if t.options.WordTimestamps {
		nestWords(segments, verboseResp.Words)
	}

	return segments, nil
}

// nestWords distributes the flat word list of a verbose_json response into
// the segments, assigning each word to the first segment whose end time it
// starts before. Words starting at or after the last segment's end are
// attached to the last segment.
func nestWords(segments []subtitle.Segment, words []whisperWord) {
	if len(segments) == 0 {
		return
	}

	wi := 0
	for i := range segments {
		for wi < len(words) && words[wi].Start < segments[i].End {
			segments[i].Words = append(segments[i].Words, subtitle.Word{
				Start: words[wi].Start,
				End:   words[wi].End,
				Text:  words[wi].Word,
			})
			wi++
		}
	}

	last := len(segments) - 1
	for ; wi < len(words); wi++ {
		segments[last].Words = append(segments[last].Words, subtitle.Word{
			Start: words[wi].Start,
			End:   words[wi].End,
			Text:  words[wi].Word,
		})
	}
}
