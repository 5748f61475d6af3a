// Package compile implements the six-stage Markdown-to-LLMD pipeline:
// Normalize, Protect, Parse, Resolve-scopes-and-Emit, Compress, Post-process.
//
// The entry point is Compile, a pure function from a source string and a
// Config to an LLMD string plus a slice of advisory Diagnostics. No stage
// touches a clock, a goroutine, or any state outside of a single Compile
// call; two calls with the same arguments produce byte-identical output.
package compile
