package subtitle

import "testing"

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0.0, "00:00:00,000"},
		{0.001, "00:00:00,001"},
		{0.5, "00:00:00,500"},
		{1.0, "00:00:01,000"},
		{59.0, "00:00:59,000"},
		{60.0, "00:01:00,000"},
		{61.25, "00:01:01,250"},
		{3600.0, "01:00:00,000"},
		{3661.5, "01:01:01,500"},
		{7322.125, "02:02:02,125"},
		{36000.0, "10:00:00,000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatTimestamp(tt.seconds); got != tt.want {
				t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestFormatTimestampTruncates(t *testing.T) {
	// Milliseconds truncate; they never round up into the next second.
	if got := FormatTimestamp(59.9996); got != "00:00:59,999" {
		t.Errorf("FormatTimestamp(59.9996) = %q, want 00:00:59,999", got)
	}
	if got := FormatTimestamp(0.0009); got != "00:00:00,000" {
		t.Errorf("FormatTimestamp(0.0009) = %q, want 00:00:00,000", got)
	}
}
