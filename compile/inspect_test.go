package compile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectReturnsStageZeroThroughTwo(t *testing.T) {
	trace := Inspect("## Setup\n```go\nfmt.Println(1)\n```\nSome text.\n")

	require.Len(t, trace.Normalized, 6)
	assert.Equal(t, "## Setup", trace.Normalized[0])

	require.Len(t, trace.Blocks, 1)
	assert.Equal(t, "go", trace.Blocks[0].Lang)
	assert.Equal(t, "fmt.Println(1)", trace.Blocks[0].Payload)

	require.Len(t, trace.Nodes, 4)
	assert.Equal(t, KindHeading, trace.Nodes[0].Kind)
	assert.Equal(t, KindBlockRef, trace.Nodes[1].Kind)
	assert.Equal(t, KindParagraph, trace.Nodes[2].Kind)
	assert.Equal(t, KindBlank, trace.Nodes[3].Kind)
}
