package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var suffixRegex = regexp.MustCompile(`^(.*?)\((\d+)\)$`)

// UniquePath returns a variant of path that does not exist on disk.
//
// The returned name always carries a numeric suffix: a free "name.srt"
// still becomes "name(1).srt", and a stem already ending in "(n)" is
// bumped to "(n+1)". The suffix keeps incrementing until the candidate
// does not exist. The base name is never returned unsuffixed, so output
// names are stable across reruns into the same directory.
func UniquePath(path string) string {
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	stem = bumpSuffix(stem)
	candidate := filepath.Join(dir, stem+ext)

	for {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
		stem = bumpSuffix(stem)
		candidate = filepath.Join(dir, stem+ext)
	}
}

func bumpSuffix(stem string) string {
	matches := suffixRegex.FindStringSubmatch(stem)
	if matches == nil {
		return stem + "(1)"
	}
	n, err := strconv.Atoi(matches[2])
	if err != nil {
		return stem + "(1)"
	}
	return fmt.Sprintf("%s(%d)", matches[1], n+1)
}
