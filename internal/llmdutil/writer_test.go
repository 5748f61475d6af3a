package llmdutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixWriter(t *testing.T) {
	var out bytes.Buffer
	w := PrefixWriter("> ", &out)
	_, err := w.Write([]byte("one\ntwo\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, "> one\n> two\n", out.String())
}

func TestPrefixWriterPartialLine(t *testing.T) {
	var out bytes.Buffer
	w := PrefixWriter("- ", &out)
	_, err := w.Write([]byte("alpha"))
	require.NoError(t, err)
	_, err = w.Write([]byte("beta\ngamma"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, "- alphabeta\n- gamma", out.String())
}

func TestErrWriterLatchesFirstError(t *testing.T) {
	ew := &ErrWriter{Writer: errWriterStub{}}
	_, err := ew.Write([]byte("a"))
	require.Error(t, err)
	_, err2 := ew.Write([]byte("b"))
	assert.Equal(t, err, err2)
}

type errWriterStub struct{}

func (errWriterStub) Write(p []byte) (int, error) {
	return 0, assertErr
}

var assertErr = bytes.ErrTooLarge
