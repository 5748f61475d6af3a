package compile

// NodeKind tags the variant held by a Node. The IR is a closed, flat sum
// type — no nesting, no visitor dispatch, a single switch in Emit.
type NodeKind int

const (
	// KindHeading is a Markdown ATX heading, level 1-6.
	KindHeading NodeKind = iota
	// KindParagraph is one or more merged source lines.
	KindParagraph
	// KindListItem is a single bullet or ordinal list line.
	KindListItem
	// KindTable is a header row plus zero or more data rows.
	KindTable
	// KindKV is a `key: value` line.
	KindKV
	// KindBlockRef points into the protected-block side table.
	KindBlockRef
	// KindBlank is a blank source line; carries no content.
	KindBlank
)

// Node is one entry in the flat IR sequence Stage 2 produces. Only the
// fields relevant to Kind are meaningful; zero values elsewhere.
type Node struct {
	Kind NodeKind

	// Heading
	Level int
	Text  string

	// ListItem (Text shared with Heading/Paragraph)
	Depth   int
	Ordered bool

	// Table
	Rows [][]string

	// KV
	Key   string
	Value string

	// BlockRef
	BlockIndex int
}

// Block is a protected fenced region captured during Stage 1, keyed by its
// placeholder index.
type Block struct {
	Index   int
	Lang    string
	Payload string
}

// Diagnostic is an advisory message produced during Post-process.
// Diagnostics never alter the compiled output; they are a side channel for
// callers that want to surface validation warnings.
type Diagnostic struct {
	Line    int
	Message string
}
