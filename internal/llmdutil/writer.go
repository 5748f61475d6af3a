// Package llmdutil holds small I/O helpers shared by the llmd command line
// tools, adapted from the teacher soc repository's internal/socutil package.
package llmdutil

import (
	"bytes"
	"io"
)

// WriteBuffer combines a byte buffer with a destination writer and a flush
// policy, so a producer can stream output through it without allocating a
// full copy of everything it writes.
//
// Example use:
//
//	var buf WriteBuffer
//	buf.To = os.Stdout
//	for _, line := range lines {
//		fmt.Fprintln(&buf, line)
//		buf.MaybeFlush()
//	}
//	buf.Flush()
type WriteBuffer struct {
	FlushPolicy
	To io.Writer
	bytes.Buffer
}

// FlushPolicy determines when a WriteBuffer should flush during its main
// write phase.
type FlushPolicy interface {
	ShouldFlush(b []byte) int
}

// FlushPolicyFunc is a convenience adaptor for FlushPolicy around a
// compatible function value.
type FlushPolicyFunc func(b []byte) int

// ShouldFlush calls the receiver function.
func (f FlushPolicyFunc) ShouldFlush(b []byte) int { return f(b) }

// Flush writes all of the receiver buffer's contents to To, regardless of
// FlushPolicy. Should be called once after the main write phase.
func (buf *WriteBuffer) Flush() error {
	_, err := buf.WriteTo(buf.To)
	return err
}

// MaybeFlush writes N bytes into To if FlushPolicy returns N > 0, discarding
// those N bytes from the receiver buffer. Defaults to FlushLineChunks if
// FlushPolicy is nil.
func (buf *WriteBuffer) MaybeFlush() error {
	if buf.FlushPolicy == nil {
		buf.FlushPolicy = FlushPolicyFunc(FlushLineChunks)
	}
	b := buf.Bytes()
	if n := buf.ShouldFlush(b); n > 0 {
		m, err := buf.To.Write(b[:n])
		buf.Next(m)
		return err
	}
	return nil
}

// FlushLineChunks is a FlushPolicy that flushes as large a chunk as
// possible, through the last written newline byte.
func FlushLineChunks(b []byte) int {
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// ErrWriter wraps a writer, latching its first error and refusing further
// writes once one occurs.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes through to Writer if Err is nil, retaining any returned
// error.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// PrefixWriter returns a writer that prepends prefix before every line
// written through it. The caller should Close it to flush any partial final
// line.
func PrefixWriter(prefix string, w io.Writer) io.WriteCloser {
	var p prefixer
	p.buf.To = w
	p.prefix = prefix
	return &p
}

type prefixer struct {
	buf    WriteBuffer
	prefix string
}

func (p *prefixer) Close() error { return p.buf.Flush() }

func (p *prefixer) Write(b []byte) (n int, err error) {
	atLineStart := p.buf.Len() == 0 || p.buf.Bytes()[p.buf.Len()-1] == '\n'
	for len(b) > 0 {
		if atLineStart {
			p.buf.WriteString(p.prefix)
		}
		line := b
		atLineStart = false
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			i++
			line = b[:i]
			b = b[i:]
			atLineStart = true
		} else {
			b = nil
		}
		m, _ := p.buf.Write(line)
		n += m
	}
	return n, p.buf.MaybeFlush()
}
