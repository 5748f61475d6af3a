package compile

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalize is Stage 0. It decodes source as UTF-8 (Go strings already are,
// with invalid sequences surfacing as U+FFFD on range/rune conversion),
// applies NFKC, unifies line endings, and right-trims each line.
func normalize(source string) []string {
	source = norm.NFKC.String(source)
	source = strings.ReplaceAll(source, "\r\n", "\n")
	source = strings.ReplaceAll(source, "\r", "\n")
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return lines
}
