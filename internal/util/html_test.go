package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTMLRemovesTags(t *testing.T) {
	got := StripHTML(`<p><strong>Pod</strong> — это минимальная единица.</p>`)
	assert.Equal(t, "Pod — это минимальная единица.", got)
}

func TestStripHTMLBlockTagsBecomeNewlines(t *testing.T) {
	got := StripHTML(`<p>first</p><ul><li>one</li><li>two</li></ul>`)
	assert.Contains(t, got, "first\n")
	assert.Contains(t, got, "one\n")
	assert.Contains(t, got, "two")
}

func TestStripHTMLUnescapesEntities(t *testing.T) {
	got := StripHTML(`<code>a &lt; b &amp;&amp; c</code>`)
	assert.Equal(t, "a < b && c", got)
}

func TestStripHTMLPlainTextUntouched(t *testing.T) {
	assert.Equal(t, "no markup here", StripHTML("no markup here"))
	assert.Equal(t, "", StripHTML(""))
}
