package compile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripInlineMarkdown(t *testing.T) {
	assert.Equal(t, "hello world", stripInlineMarkdown("**hello** world"))
	assert.Equal(t, "hello world", stripInlineMarkdown("__hello__ world"))
	assert.Equal(t, "hello world", stripInlineMarkdown("*hello* world"))
	assert.Equal(t, "code here", stripInlineMarkdown("`code` here"))
	assert.Equal(t, "gone", stripInlineMarkdown("~~gone~~"))
}

func TestStripInlineMarkdownLeavesBareStars(t *testing.T) {
	assert.Equal(t, "a ** b", stripInlineMarkdown("a ** b"))
}

func TestProcessLinksKeepURLs(t *testing.T) {
	assert.Equal(t, "see docs<http://x>", processLinks("see [docs](http://x)", true))
}

func TestProcessLinksDropURLs(t *testing.T) {
	assert.Equal(t, "see docs", processLinks("see [docs](http://x)", false))
}

func TestProcessLinksImage(t *testing.T) {
	assert.Equal(t, "alt", processLinks("![alt](http://img)", false))
}

func TestRenderInlineKeepURLsBelowC2(t *testing.T) {
	// keep_urls defaults to false, but compression < 2 forces URLs to survive.
	assert.Equal(t, "see docs<http://x>", renderInline("see [docs](http://x)", 1, false))
}

func TestRenderInlineDropsURLsAtC2(t *testing.T) {
	assert.Equal(t, "see docs", renderInline("see [docs](http://x)", 2, false))
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("First one. Second one! Third?")
	assert.Equal(t, []string{"First one.", "Second one!", "Third?"}, got)
}

func TestSplitSentencesNoSplitWithoutUppercase(t *testing.T) {
	got := splitSentences("version 1.5 is out now")
	assert.Equal(t, []string{"version 1.5 is out now"}, got)
}
