package subtitle

// represents a single recognized word with its own timing
type Word struct {
	Start float64
	End   float64
	Text  string
}

// represents a contiguous span of recognized speech
type Segment struct {
	Start float64
	End   float64
	Text  string
	// populated only by engines that report per-word timestamps
	Words []Word
}

// represents one SRT cue: index, time range, text
type Cue struct {
	Index int
	Start float64
	End   float64
	Text  string
}
