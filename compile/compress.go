package compile

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var compressWhitespaceRE = regexp.MustCompile(`\s+`)

func isBlockMarkerLine(line string) bool {
	return strings.HasPrefix(line, "::") || line == "<<<" || line == ">>>"
}

// compressC0 is Stage 5's whitespace/rule cleanup: collapse internal
// whitespace, trim, drop empty lines and bare thematic-break-shaped lines.
// Block-payload lines (between <<< and >>>, exclusive) pass through
// untouched.
func compressC0(lines []string) []string {
	var out []string
	inBlock := false
	for _, line := range lines {
		if line == "<<<" {
			inBlock = true
			out = append(out, line)
			continue
		}
		if line == ">>>" {
			inBlock = false
			out = append(out, line)
			continue
		}
		if inBlock {
			out = append(out, line)
			continue
		}
		collapsed := strings.TrimSpace(compressWhitespaceRE.ReplaceAllString(line, " "))
		if collapsed == "" || thematicBreakRE.MatchString(collapsed) {
			continue
		}
		out = append(out, collapsed)
	}
	return out
}

// compressC1 is Stage 5's pass 1. The structural batching work it covers was
// already enforced by Emit's buffer discipline, so c1 just reapplies c0.
func compressC1(lines []string) []string {
	return compressC0(lines)
}

type phraseRule struct {
	replacement string
	re          *regexp.Regexp
}

type unitRule struct {
	replacement string
	digitRE     *regexp.Regexp
	bareRE      *regexp.Regexp
}

func sortByLengthDesc(keys []string) []string {
	sorted := append([]string(nil), keys...)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	return sorted
}

func buildPhraseRules(phraseMap map[string]string) []phraseRule {
	keys := make([]string, 0, len(phraseMap))
	for k := range phraseMap {
		keys = append(keys, k)
	}
	var rules []phraseRule
	for _, phrase := range sortByLengthDesc(keys) {
		rules = append(rules, phraseRule{
			replacement: phraseMap[phrase],
			re:          regexp.MustCompile("(?i)" + regexp.QuoteMeta(phrase)),
		})
	}
	return rules
}

func buildUnitRules(units map[string]string) []unitRule {
	keys := make([]string, 0, len(units))
	for k := range units {
		keys = append(keys, k)
	}
	var rules []unitRule
	for _, unit := range sortByLengthDesc(keys) {
		quoted := regexp.QuoteMeta(unit)
		rules = append(rules, unitRule{
			replacement: units[unit],
			digitRE:     regexp.MustCompile(`(?i)(\d+)\s+` + quoted),
			bareRE:      regexp.MustCompile("(?i)" + quoted),
		})
	}
	return rules
}

func toLowerSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(strings.TrimSpace(w))] = true
	}
	return set
}

func letterCore(token string) string {
	var b strings.Builder
	for _, r := range token {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func removeStopwords(body string, stop, protect map[string]bool) string {
	tokens := strings.Fields(body)
	kept := tokens[:0]
	for _, tok := range tokens {
		core := letterCore(tok)
		if core != "" && !protect[core] && stop[core] {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

var terminalExceptions = []string{"e.g.", "i.e.", "etc."}

func stripTrailingPeriod(body string) string {
	if strings.HasSuffix(body, "...") {
		return body
	}
	lower := strings.ToLower(body)
	for _, ex := range terminalExceptions {
		if strings.HasSuffix(lower, ex) {
			return body
		}
	}
	if strings.HasSuffix(body, ".") {
		return body[:len(body)-1]
	}
	return body
}

// compressC2 is Stage 5's token-level pass: phrase map and unit
// normalization on text/list/attribute line bodies, then stopword removal
// and terminal-period stripping on text/list lines only. Scope, block-marker,
// relation, and metadata lines pass through verbatim; block-payload content
// is never touched.
func compressC2(lines []string, cfg Config) []string {
	phraseRules := buildPhraseRules(cfg.PhraseMap)
	unitRules := buildUnitRules(cfg.Units)
	stop := toLowerSet(cfg.Stopwords)
	protect := toLowerSet(cfg.ProtectWords)

	var out []string
	inBlock := false
	for _, line := range lines {
		if line == "<<<" {
			inBlock = true
			out = append(out, line)
			continue
		}
		if line == ">>>" {
			inBlock = false
			out = append(out, line)
			continue
		}
		if inBlock {
			out = append(out, line)
			continue
		}
		if strings.HasPrefix(line, "@") || isBlockMarkerLine(line) ||
			strings.HasPrefix(line, "~") ||
			strings.HasPrefix(line, "→") || strings.HasPrefix(line, "←") || strings.HasPrefix(line, "=") {
			out = append(out, line)
			continue
		}

		prefix, body, isTextOrList := "", line, true
		switch {
		case strings.HasPrefix(line, "-"):
			prefix, body = "-", line[1:]
		case strings.HasPrefix(line, ":"):
			prefix, body, isTextOrList = ":", line[1:], false
		}

		for _, rule := range phraseRules {
			body = rule.re.ReplaceAllLiteralString(body, rule.replacement)
		}
		for _, rule := range unitRules {
			body = rule.digitRE.ReplaceAllString(body, "${1}"+rule.replacement)
			body = rule.bareRE.ReplaceAllLiteralString(body, rule.replacement)
		}
		if isTextOrList {
			body = removeStopwords(body, stop, protect)
			body = stripTrailingPeriod(body)
		}
		out = append(out, prefix+body)
	}
	return out
}
