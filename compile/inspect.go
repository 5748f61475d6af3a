package compile

// Trace exposes Stage 0-2 intermediate state for debugging tools such as
// cmd/llmdinspect. Compile itself never constructs one; it is a separate,
// read-only view over the same stage functions.
type Trace struct {
	Normalized []string
	Blocks     []Block
	Nodes      []Node
}

// Inspect runs Stage 0 (Normalize), Stage 1 (Protect) and Stage 2 (Parse)
// and returns their intermediate output, without running Resolve+Emit,
// Compress or Post-process.
func Inspect(source string) Trace {
	normalized := normalize(source)
	protected, blocks := protect(normalized)
	nodes := parse(protected)
	return Trace{Normalized: normalized, Blocks: blocks, Nodes: nodes}
}
