package compile

import (
	"fmt"
	"strings"
)

// isTextLine reports whether line would be rendered as a bare paragraph
// line: non-empty and not starting with any of the reserved prefix
// characters or block-marker forms.
func isTextLine(line string) bool {
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, "@") || strings.HasPrefix(line, ":") ||
		strings.HasPrefix(line, "-") || strings.HasPrefix(line, "~") ||
		line == "<<<" || line == ">>>" ||
		strings.HasPrefix(line, "→") || strings.HasPrefix(line, "←") || strings.HasPrefix(line, "=") {
		return false
	}
	return true
}

// postprocess is Stage 6: a non-fatal validation pass that flags scoped
// content appearing before the first @scope line, followed by an optional
// anchor-insertion pass. Validation never alters lines.
func postprocess(lines []string, cfg Config) ([]string, []Diagnostic) {
	diags := validate(lines)
	return insertAnchors(lines, cfg.AnchorEvery), diags
}

func validate(lines []string) []Diagnostic {
	var diags []Diagnostic
	firstScope := false
	inBlock := false
	for i, line := range lines {
		switch {
		case line == "<<<":
			inBlock = true
			continue
		case line == ">>>":
			inBlock = false
			continue
		case inBlock:
			continue
		case strings.HasPrefix(line, "@"):
			firstScope = true
			continue
		case strings.HasPrefix(line, "~"):
			continue
		}
		if !firstScope {
			attributeLike := strings.HasPrefix(line, ":") || strings.HasPrefix(line, "-") ||
				strings.HasPrefix(line, "→") || strings.HasPrefix(line, "←") || strings.HasPrefix(line, "=")
			if attributeLike || isTextLine(line) {
				diags = append(diags, Diagnostic{
					Line:    i + 1,
					Message: fmt.Sprintf("line %d: scoped line before first @scope", i+1),
				})
			}
		}
	}
	return diags
}

// insertAnchors implements §4.6: a copy of the current `@<scope>` line is
// re-inserted after every anchorEvery emitted lines that are neither scope
// nor block-payload lines. The counter resets on every scope emission and
// every anchor insertion. anchorEvery <= 0 disables anchoring entirely.
func insertAnchors(lines []string, anchorEvery int) []string {
	if anchorEvery <= 0 {
		return lines
	}
	var out []string
	currentScope := ""
	counter := 0
	inBlock := false
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "@"):
			currentScope = line
			counter = 0
			out = append(out, line)
			continue
		case line == "<<<":
			inBlock = true
			out = append(out, line)
			continue
		case line == ">>>":
			inBlock = false
			out = append(out, line)
			continue
		case inBlock:
			out = append(out, line)
			continue
		}
		if counter >= anchorEvery && currentScope != "" {
			out = append(out, currentScope)
			counter = 0
		}
		counter++
		out = append(out, line)
	}
	return out
}
