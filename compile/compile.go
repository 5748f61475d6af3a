package compile

import "strings"

// Compile is the core pipeline's single entry point (§6.1): Normalize,
// Protect, Parse, Resolve-scopes-and-Emit, Compress, Post-process, strictly
// in that order. It is a pure function — the same source and config always
// produce the same output and diagnostics, with no goroutines, clock
// access, or randomness anywhere in the call graph.
func Compile(source string, config Config) (string, []Diagnostic) {
	lines := normalize(source)
	protected, blocks := protect(lines)
	nodes := parse(protected)
	out := emit(nodes, blocks, config)

	out = compressC0(out)
	if config.Compression >= 1 {
		out = compressC1(out)
	}
	if config.Compression >= 2 {
		out = compressC2(out, config)
	}

	out, diags := postprocess(out, config)
	if len(out) == 0 {
		return "", diags
	}
	return strings.Join(out, "\n") + "\n", diags
}
