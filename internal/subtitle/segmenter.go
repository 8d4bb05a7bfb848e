package subtitle

import (
	"strings"
	"unicode/utf8"
)

// SegmentWords packs per-word timestamps into character-budgeted cues.
//
// Words are consumed in document order and greedily appended to a pending
// line. When adding the next cleaned word would push the pending line past
// charLimit, the pending line is closed as a cue ending at that word's
// start time, and the word opens a new line. A single word longer than the
// budget is never split; it is emitted on its own once the following word
// arrives, or at end of stream.
//
// The trailing cue ends at the last iterated segment's end time rather
// than the last word's own end, so the final caption stays on screen until
// the speech segment is over.
func SegmentWords(segments []Segment, charLimit int, removals []string) []Cue {
	var (
		cues         []Cue
		pending      string
		pendingStart float64
		index        = 1
		segmentEnd   float64
	)

	for _, seg := range segments {
		segmentEnd = seg.End

		for _, word := range seg.Words {
			cleaned := Clean(word.Text, removals)
			if strings.TrimSpace(cleaned) == "" {
				continue
			}

			if pending == "" {
				pendingStart = word.Start
			}

			if utf8.RuneCountInString(pending+cleaned) > charLimit {
				cues = append(cues, Cue{
					Index: index,
					Start: pendingStart,
					End:   word.Start,
					Text:  strings.TrimSpace(pending),
				})
				index++
				pending = cleaned + " "
				pendingStart = word.Start
			} else {
				pending += cleaned + " "
			}
		}
	}

	if pending != "" {
		cues = append(cues, Cue{
			Index: index,
			Start: pendingStart,
			End:   segmentEnd,
			Text:  strings.TrimSpace(pending),
		})
	}

	return cues
}

// SegmentSentences emits one cue per non-empty segment, keeping the
// segment's own timing. Segments whose text is empty after cleaning are
// skipped entirely; emitted cue indices stay contiguous from 1.
func SegmentSentences(segments []Segment, removals []string) []Cue {
	var cues []Cue
	index := 1

	for _, seg := range segments {
		text := strings.TrimSpace(Clean(seg.Text, removals))
		if text == "" {
			continue
		}

		cues = append(cues, Cue{
			Index: index,
			Start: seg.Start,
			End:   seg.End,
			Text:  text,
		})
		index++
	}

	return cues
}
