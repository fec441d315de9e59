package highlight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func joined(spans []Span) string {
	var b strings.Builder
	for _, s := range spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestHTMLSpans_PreservesSource(t *testing.T) {
	sources := []string{
		"<h1>Hello</h1>",
		`<a href="x">&'</a>`,
		"<!-- note -->\n<div class=\"a\">\n  text\n</div>\n",
		"not markup at all",
	}

	for _, source := range sources {
		assert.Equal(t, source, joined(HTMLSpans(source)))
	}
}

func TestHTMLSpans_ClassifiesTags(t *testing.T) {
	spans := HTMLSpans(`<a href="x">link</a>`)
	require.NotEmpty(t, spans)

	classes := map[Class]bool{}
	for _, s := range spans {
		classes[s.Class] = true
	}
	assert.True(t, classes[ClassTag], "expected a tag span in %+v", spans)
	assert.True(t, classes[ClassAttribute], "expected an attribute span in %+v", spans)
	assert.True(t, classes[ClassString], "expected a string span in %+v", spans)
}

func TestHTMLSpans_MergesNeighbours(t *testing.T) {
	spans := HTMLSpans("<p>a</p>")
	for i := 1; i < len(spans); i++ {
		assert.NotEqual(t, spans[i-1].Class, spans[i].Class, "adjacent spans share a class: %+v", spans)
	}
}

func TestSpans_UnknownLanguage(t *testing.T) {
	spans := Spans("no-such-language-xyz", "<p>a</p>")
	assert.Equal(t, []Span{{Text: "<p>a</p>", Class: ClassPlain}}, spans)
}

func TestSpans_Empty(t *testing.T) {
	assert.Nil(t, HTMLSpans(""))
}
