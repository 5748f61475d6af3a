package compile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLineEndings(t *testing.T) {
	lines := normalize("one\r\ntwo\rthree\n")
	assert.Equal(t, []string{"one", "two", "three", ""}, lines)
}

func TestNormalizeTrimsTrailingWhitespace(t *testing.T) {
	lines := normalize("hello \t\nworld\t")
	assert.Equal(t, []string{"hello", "world"}, lines)
}

func TestNormalizeEmptyInput(t *testing.T) {
	assert.Equal(t, []string{""}, normalize(""))
}

func TestNormalizeNFKC(t *testing.T) {
	// U+FB01 LATIN SMALL LIGATURE FI decomposes to "fi" under NFKC.
	lines := normalize("proﬁle")
	assert.Equal(t, []string{"profile"}, lines)
}
