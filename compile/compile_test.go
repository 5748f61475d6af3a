package compile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileEmptyInput(t *testing.T) {
	out, diags := Compile("", DefaultConfig())
	assert.Equal(t, "", out)
	assert.Empty(t, diags)
}

func TestCompileHeadingOnly(t *testing.T) {
	out, _ := Compile("## Setup", DefaultConfig())
	assert.Equal(t, "@setup\n", out)
}

func TestCompileIsDeterministic(t *testing.T) {
	source := "## A\nSome *text* here.\n- one\n- two\nKey: value\n"
	cfg := DefaultConfig()
	first, _ := Compile(source, cfg)
	second, _ := Compile(source, cfg)
	assert.Equal(t, first, second)
}

// TestCompileAuthenticationExample mirrors the worked "authentication"
// scenario, with the trailing key-value line left unterminated by a period
// to keep the attribute line's unit substitution unambiguous (period
// stripping applies only to text/list lines, not attribute lines).
func TestCompileAuthenticationExample(t *testing.T) {
	source := "## Authentication\n" +
		"The API supports authentication via OAuth2 and API keys.\n" +
		"- Use OAuth2 for user-facing apps.\n" +
		"- Use API keys for server-to-server.\n" +
		"Rate limit: 1000 requests per minute\n"

	out, _ := Compile(source, DefaultConfig())
	expected := "@authentication\n" +
		"API supports authentication via OAuth2 API keys\n" +
		"-Use OAuth2 user-facing apps\n" +
		"-Use API keys server-to-server\n" +
		":rate_limit=1000/m\n"
	assert.Equal(t, expected, out)
}

func TestCompileProtectedCodeBlock(t *testing.T) {
	source := "## Config\n```json\n{\"retry\":3}\n```\n"
	out, _ := Compile(source, DefaultConfig())
	expected := "@config\n::json\n<<<\n{\"retry\":3}\n>>>\n"
	assert.Equal(t, expected, out)
}

func TestCompileUnterminatedFence(t *testing.T) {
	source := "## Notes\n```go\nfmt.Println(1)"
	out, _ := Compile(source, DefaultConfig())
	expected := "@notes\n::go\n<<<\nfmt.Println(1)\n>>>\n"
	assert.Equal(t, expected, out)
}

func TestCompileHeadingDescentConcatMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScopeMode = ScopeConcat
	source := "## A\ntext a\n### B\ntext b\n## C\ntext c\n"
	out, _ := Compile(source, cfg)
	require.Contains(t, out, "@a\n")
	require.Contains(t, out, "@a_b\n")
	require.Contains(t, out, "@c\n")
}

func TestCompileKeyedMultiTable(t *testing.T) {
	source := "## Limits\n" +
		"| Key | Min | Max |\n" +
		"|-----|-----|-----|\n" +
		"| alpha | 1 | 2 |\n" +
		"| beta | 3 | 4 |\n"
	out, _ := Compile(source, DefaultConfig())
	assert.Contains(t, out, ":_cols=key¦min¦max\n")
	assert.Contains(t, out, "alpha=1¦2")
	assert.Contains(t, out, "beta=3¦4")
}

func TestCompilePropertyTableWithGenericHeaderNoCol(t *testing.T) {
	source := "## Text Styles\n" +
		"| Class | Value |\n" +
		"|-------|-------|\n" +
		"| primary | bold |\n"
	out, _ := Compile(source, DefaultConfig())
	assert.NotContains(t, out, ":_col=")
	assert.Contains(t, out, ":primary=bold\n")
}
