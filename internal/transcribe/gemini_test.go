package transcribe

import (
	"testing"

	"google.golang.org/genai"
)

func TestParseTranscriptionResponse(t *testing.T) {
	transcriber := &GeminiTranscriber{}

	tests := []struct {
		name      string
		text      string
		wantCount int
		wantErr   bool
	}{
		{
			name: "plain valid array",
			text: `[
				{"start": 0.0, "end": 2.5, "text": "Hello world"},
				{"start": 2.5, "end": 5.0, "text": "How are you"}
			]`,
			wantCount: 2,
		},
		{
			name: "json code fence",
			text: "```json\n[{\"start\": 0.0, \"end\": 1.5, \"text\": \"Fenced\"}]\n```",
			wantCount: 1,
		},
		{
			name: "plain code fence",
			text: "```\n[{\"start\": 0.0, \"end\": 1.5, \"text\": \"Fenced\"}]\n```",
			wantCount: 1,
		},
		{
			name:      "empty array",
			text:      `[]`,
			wantCount: 0,
		},
		{
			name:    "no JSON at all",
			text:    `This is just plain text with no JSON content.`,
			wantErr: true,
		},
		{
			name:    "invalid JSON",
			text:    `[{"start": 0.0, "end": 2.0, "text": "incomplete"`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{
						Content: &genai.Content{
							Parts: []*genai.Part{{Text: tt.text}},
						},
					},
				},
			}

			segments, err := transcriber.parseTranscriptionResponse(resp)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(segments) != tt.wantCount {
				t.Errorf("got %d segments, want %d", len(segments), tt.wantCount)
			}
		})
	}
}

func TestParseTranscriptionResponseEmpty(t *testing.T) {
	transcriber := &GeminiTranscriber{}

	if _, err := transcriber.parseTranscriptionResponse(nil); err == nil {
		t.Error("expected error for nil response")
	}

	resp := &genai.GenerateContentResponse{}
	if _, err := transcriber.parseTranscriptionResponse(resp); err == nil {
		t.Error("expected error for response without candidates")
	}
}

func TestCleanJSONResponse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON",
			input: `[{"start": 0, "end": 1, "text": "hello"}]`,
			want:  `[{"start": 0, "end": 1, "text": "hello"}]`,
		},
		{
			name:  "json code fence",
			input: "```json\n[{\"start\": 0, \"end\": 1, \"text\": \"hello\"}]\n```",
			want:  `[{"start": 0, "end": 1, "text": "hello"}]`,
		},
		{
			name:  "plain code fence",
			input: "```\n[{\"start\": 0, \"end\": 1, \"text\": \"hello\"}]\n```",
			want:  `[{"start": 0, "end": 1, "text": "hello"}]`,
		},
		{
			name:  "with leading/trailing whitespace",
			input: "  \n\n```json\n[{\"start\": 0}]\n```\n\n  ",
			want:  `[{"start": 0}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanJSONResponse(tt.input); got != tt.want {
				t.Errorf("cleanJSONResponse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	if got := truncateString("short", 10); got != "short" {
		t.Errorf("truncateString() = %q, want %q", got, "short")
	}
	if got := truncateString("a longer string", 8); got != "a longer..." {
		t.Errorf("truncateString() = %q, want %q", got, "a longer...")
	}
}
