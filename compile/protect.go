package compile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// fenceOpenRE matches a fence-opening line: three or more backticks followed
// by an optional language tag. The tag's character class follows the
// original reference implementation (`[a-zA-Z0-9_]*`), tighter than the
// surface prose in the distilled spec — see DESIGN.md.
var fenceOpenRE = regexp.MustCompile("^(`{3,})([a-zA-Z0-9_]*)\\s*$")

// blockRefRE recognizes a protected-block placeholder line.
var blockRefRE = regexp.MustCompile(`^⟦BLOCK:(\d+)⟧$`)

func blockPlaceholder(index int) string {
	return "⟦BLOCK:" + strconv.Itoa(index) + "⟧"
}

// protect is Stage 1. It scans logical lines, replacing each fenced region
// with a stable placeholder and recording its payload and language tag in
// the returned block table, in source order.
func protect(lines []string) (out []string, blocks []Block) {
	var (
		inFence bool
		fence   string
		lang    string
		payload []string
	)

	closeFence := func() {
		idx := len(blocks)
		blocks = append(blocks, Block{
			Index:   idx,
			Lang:    lang,
			Payload: strings.Join(payload, "\n"),
		})
		out = append(out, blockPlaceholder(idx))
		inFence = false
		fence = ""
		lang = ""
		payload = nil
	}

	for _, line := range lines {
		if !inFence {
			if m := fenceOpenRE.FindStringSubmatch(line); m != nil {
				inFence = true
				fence = m[1]
				lang = m[2]
				payload = nil
				continue
			}
			out = append(out, line)
			continue
		}
		if strings.TrimSpace(line) == fence {
			closeFence()
			continue
		}
		payload = append(payload, line)
	}
	if inFence {
		closeFence()
	}
	return out, blocks
}

// formatBlock renders a Block for debugging, in the teacher's %v-printer
// idiom (see fmt.go).
func formatBlock(b Block) string {
	return fmt.Sprintf("block[%d lang=%q len=%d]", b.Index, b.Lang, len(b.Payload))
}
