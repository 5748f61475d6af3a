package compile

import (
	"regexp"
	"strings"
)

var (
	scopeWhitespaceRE = regexp.MustCompile(`\s+`)
	scopeStripRE      = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	keyStripRE        = regexp.MustCompile(`[^a-z0-9_-]`)
	keyHyphenTrimRE   = regexp.MustCompile(`^-+|-+$`)
)

// normScopeName implements the heading-text normalization of §4.4: trim,
// collapse whitespace to underscores, drop characters outside
// [A-Za-z0-9_-], and lowercase once compression reaches 2.
func normScopeName(text string, compression int) string {
	s := strings.TrimSpace(text)
	s = scopeWhitespaceRE.ReplaceAllString(s, "_")
	s = scopeStripRE.ReplaceAllString(s, "")
	if compression >= 2 {
		s = strings.ToLower(s)
	}
	return s
}

// normKey implements the key normalization shared by KV lines and table
// emission: lowercase first, then collapse whitespace to underscores, strip
// characters outside [a-z0-9_-], and trim leading/trailing hyphen runs.
func normKey(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = scopeWhitespaceRE.ReplaceAllString(s, "_")
	s = keyStripRE.ReplaceAllString(s, "")
	s = keyHyphenTrimRE.ReplaceAllString(s, "")
	return s
}
