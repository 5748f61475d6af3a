package compile

import (
	"fmt"
	"io"
)

// Format writes a textual representation of the receiver, providing
// improved fmt.Printf display. Produces a verbose "Kind attr=value" form
// when formatted with "%+v", a terse "Kind" form otherwise.
func (n Node) Format(f fmt.State, _ rune) {
	io.WriteString(f, n.Kind.String())
	if !f.Flag('+') {
		return
	}
	switch n.Kind {
	case KindHeading:
		fmt.Fprintf(f, " level=%d text=%q", n.Level, n.Text)
	case KindParagraph:
		fmt.Fprintf(f, " text=%q", n.Text)
	case KindListItem:
		fmt.Fprintf(f, " depth=%d ordered=%v text=%q", n.Depth, n.Ordered, n.Text)
	case KindTable:
		fmt.Fprintf(f, " rows=%d cols=%d", len(n.Rows), tableCols(n.Rows))
	case KindKV:
		fmt.Fprintf(f, " key=%q value=%q", n.Key, n.Value)
	case KindBlockRef:
		fmt.Fprintf(f, " index=%d", n.BlockIndex)
	}
}

func tableCols(rows [][]string) int {
	if len(rows) == 0 {
		return 0
	}
	return len(rows[0])
}

// Format writes a type string representing the receiver kind.
func (k NodeKind) Format(f fmt.State, _ rune) {
	io.WriteString(f, k.String())
}

// String returns the kind's name, used by both Format and plain %v/%s.
func (k NodeKind) String() string {
	switch k {
	case KindHeading:
		return "Heading"
	case KindParagraph:
		return "Paragraph"
	case KindListItem:
		return "ListItem"
	case KindTable:
		return "Table"
	case KindKV:
		return "KV"
	case KindBlockRef:
		return "BlockRef"
	case KindBlank:
		return "Blank"
	default:
		return fmt.Sprintf("InvalidKind%d", int(k))
	}
}
