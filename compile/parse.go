package compile

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	thematicBreakRE = regexp.MustCompile(`^[-*_]{3,}$`)
	headingRE       = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	ulRE            = regexp.MustCompile(`^(\s*)([-*+])\s+(.+)$`)
	olRE            = regexp.MustCompile(`^(\s*)(\d+)\.\s+(.+)$`)
	kvRE            = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9 _-]{0,63})\s*:\s+(.+)$`)
	// tableDelimRE follows the original reference's partial-match pattern;
	// parse additionally requires the row to contain "---" (see DESIGN.md).
	tableDelimRE = regexp.MustCompile(`^\|?[\s:-]+\|`)
)

func isURLLine(trimmed string) bool {
	return strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://")
}

func isTableDelimiter(line string) bool {
	trimmed := strings.TrimSpace(line)
	return tableDelimRE.MatchString(trimmed) && strings.Contains(trimmed, "---")
}

// parseTableRow splits a row on `|`, trims each cell, and discards an empty
// leading or trailing cell produced by a leading/trailing pipe.
func parseTableRow(line string) []string {
	parts := strings.Split(line, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// isParagraphBreak reports whether raw line would start a new structural
// node (rules 2-8) or contains a potential table pipe, terminating a
// paragraph merge in progress.
func isParagraphBreak(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	if thematicBreakRE.MatchString(trimmed) {
		return true
	}
	if blockRefRE.MatchString(trimmed) {
		return true
	}
	if headingRE.MatchString(trimmed) {
		return true
	}
	if strings.Contains(trimmed, "|") {
		return true
	}
	if ulRE.MatchString(line) {
		return true
	}
	if olRE.MatchString(line) {
		return true
	}
	if m := kvRE.FindStringSubmatch(trimmed); m != nil && !isURLLine(trimmed) {
		return true
	}
	return false
}

// parse is Stage 2: a single left-to-right pass producing the flat IR
// sequence, per the classification precedence of §4.3.
func parse(lines []string) []Node {
	var nodes []Node
	i := 0
	n := len(lines)
	for i < n {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			nodes = append(nodes, Node{Kind: KindBlank})
			i++

		case thematicBreakRE.MatchString(trimmed):
			i++

		case blockRefRE.MatchString(trimmed):
			m := blockRefRE.FindStringSubmatch(trimmed)
			idx, _ := strconv.Atoi(m[1])
			nodes = append(nodes, Node{Kind: KindBlockRef, BlockIndex: idx})
			i++

		case headingRE.MatchString(trimmed):
			m := headingRE.FindStringSubmatch(trimmed)
			nodes = append(nodes, Node{
				Kind:  KindHeading,
				Level: len(m[1]),
				Text:  strings.TrimSpace(m[2]),
			})
			i++

		case strings.Contains(trimmed, "|") && i+1 < n && isTableDelimiter(lines[i+1]):
			if node, next, ok := parseTable(lines, i); ok {
				nodes = append(nodes, node)
				i = next
				continue
			}
			node, next := parseParagraph(lines, i)
			nodes = append(nodes, node)
			i = next

		case ulRE.MatchString(line):
			m := ulRE.FindStringSubmatch(line)
			nodes = append(nodes, Node{
				Kind:    KindListItem,
				Depth:   len(m[1]) / 2,
				Text:    strings.TrimSpace(m[3]),
				Ordered: false,
			})
			i++

		case olRE.MatchString(line):
			m := olRE.FindStringSubmatch(line)
			nodes = append(nodes, Node{
				Kind:    KindListItem,
				Depth:   len(m[1]) / 2,
				Text:    strings.TrimSpace(m[3]),
				Ordered: true,
			})
			i++

		case kvRE.MatchString(trimmed) && !isURLLine(trimmed):
			m := kvRE.FindStringSubmatch(trimmed)
			nodes = append(nodes, Node{
				Kind:  KindKV,
				Key:   strings.TrimSpace(m[1]),
				Value: strings.TrimSpace(m[2]),
			})
			i++

		default:
			node, next := parseParagraph(lines, i)
			nodes = append(nodes, node)
			i = next
		}
	}
	return nodes
}

// parseTable consumes a header row, a delimiter row, and every following
// consecutive non-blank pipe-containing row, starting at index i (which must
// already satisfy the table-start lookahead). If any row's column count
// diverges from the header's, parsing aborts and ok is false so the caller
// can fall back to a paragraph parse at the same starting index.
func parseTable(lines []string, i int) (Node, int, bool) {
	header := parseTableRow(strings.TrimSpace(lines[i]))
	cols := len(header)
	rows := [][]string{header}
	j := i + 2 // skip header and delimiter row
	for j < len(lines) {
		t := strings.TrimSpace(lines[j])
		if t == "" || !strings.Contains(t, "|") {
			break
		}
		row := parseTableRow(t)
		if len(row) != cols {
			return Node{}, 0, false
		}
		rows = append(rows, row)
		j++
	}
	if cols == 0 {
		return Node{}, 0, false
	}
	return Node{Kind: KindTable, Rows: rows}, j, true
}

// parseParagraph merges lines starting at i until a blank line, a line that
// would start another structural node, or a line containing a table pipe.
func parseParagraph(lines []string, i int) (Node, int) {
	var parts []string
	j := i
	for j < len(lines) {
		if j > i && isParagraphBreak(lines[j]) {
			break
		}
		parts = append(parts, strings.TrimSpace(lines[j]))
		j++
	}
	return Node{Kind: KindParagraph, Text: strings.Join(parts, " ")}, j
}
