package subtitle

import (
	"fmt"
	"math"
)

// FormatTimestamp converts a time in seconds to the SRT form HH:MM:SS,mmm.
// Every field truncates: 59.9996 formats as 00:00:59,999, never rolling
// over into the next second.
func FormatTimestamp(seconds float64) string {
	hours := int(seconds / 3600)
	minutes := int(math.Mod(seconds, 3600) / 60)
	secs := int(math.Mod(seconds, 60))
	millis := int((seconds - math.Floor(seconds)) * 1000)

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
