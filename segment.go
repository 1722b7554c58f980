package chandas

import (
	"regexp"
	"strings"
)

// reSegment splits verse text on dandas, vertical bars and line breaks,
// any run of which counts as a single boundary.
var reSegment = regexp.MustCompile(`[|।॥\n\r]+`)

// SplitSegments splits normalized text into its ordered line/phrase
// segments, dropping segments that are empty after trimming.
// All-whitespace input yields zero segments.
func SplitSegments(text string) []string {
	var out []string
	for _, part := range reSegment.Split(text, -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
