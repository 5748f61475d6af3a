package compile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProtectSimpleBlock(t *testing.T) {
	lines := []string{"before", "```go", "fmt.Println(1)", "```", "after"}
	out, blocks := protect(lines)
	require.Equal(t, []string{"before", "⟦BLOCK:0⟧", "after"}, out)
	require.Len(t, blocks, 1)
	require.Equal(t, Block{Index: 0, Lang: "go", Payload: "fmt.Println(1)"}, blocks[0])
}

func TestProtectMultipleBlocks(t *testing.T) {
	lines := []string{"```go", "a", "```", "```", "b", "```"}
	out, blocks := protect(lines)
	require.Equal(t, []string{"⟦BLOCK:0⟧", "⟦BLOCK:1⟧"}, out)
	require.Len(t, blocks, 2)
	require.Equal(t, "go", blocks[0].Lang)
	require.Equal(t, "", blocks[1].Lang)
}

func TestProtectUnterminatedBlock(t *testing.T) {
	lines := []string{"```json", `{"a":1}`}
	out, blocks := protect(lines)
	require.Equal(t, []string{"⟦BLOCK:0⟧"}, out)
	require.Len(t, blocks, 1)
	require.Equal(t, `{"a":1}`, blocks[0].Payload)
}

func TestProtectLongerFenceWrapsShorterBackticks(t *testing.T) {
	lines := []string{"````", "```", "still inside", "````"}
	out, blocks := protect(lines)
	require.Equal(t, []string{"⟦BLOCK:0⟧"}, out)
	require.Equal(t, "```\nstill inside", blocks[0].Payload)
}
