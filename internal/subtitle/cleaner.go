package subtitle

import "strings"

// ParseRemovals splits the user's raw character filter into removal tokens.
// Tokens are whitespace separated; an empty filter yields no removals.
func ParseRemovals(raw string) []string {
	return strings.Fields(raw)
}

// Clean removes every occurrence of each removal token from text.
// Tokens are applied in order, each over the result of the previous one,
// as literal substrings (no regex semantics). The same function is used
// for output text and for the character-budget accounting, so it must be
// deterministic for identical input.
func Clean(text string, removals []string) string {
	for _, token := range removals {
		text = strings.ReplaceAll(text, token, "")
	}
	return text
}
