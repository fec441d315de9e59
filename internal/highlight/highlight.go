// Package highlight splits markup source into classified spans for syntax
// colouring. Tokenizing is done by chroma; the UI maps classes to theme colours.
package highlight

import (
	"log"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// DefaultLanguage is the lexer used for decoded markup
const DefaultLanguage = "html"

// Class is the colouring class of a span
type Class int

const (
	ClassPlain Class = iota
	ClassTag
	ClassAttribute
	ClassString
	ClassComment
	ClassPunctuation
)

// Span is a run of source text sharing one class
type Span struct {
	Text  string
	Class Class
}

// Spans tokenizes source with the named lexer. Concatenating the Text of the
// returned spans always yields source. If the lexer is unknown or fails, the
// whole source comes back as one plain span.
func Spans(language, source string) []Span {
	if source == "" {
		return nil
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return []Span{{Text: source, Class: ClassPlain}}
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		log.Printf("highlight: tokenise %s failed: %v", language, err)
		return []Span{{Text: source, Class: ClassPlain}}
	}

	var spans []Span
	remaining := len(source)
	for _, token := range iterator.Tokens() {
		value := token.Value
		// Some lexers append a trailing newline that is not part of the source
		if len(value) > remaining {
			value = value[:remaining]
		}
		if value == "" {
			continue
		}
		remaining -= len(value)
		token.Value = value

		class := classOf(token.Type)
		if n := len(spans); n > 0 && spans[n-1].Class == class {
			spans[n-1].Text += token.Value
			continue
		}
		spans = append(spans, Span{Text: token.Value, Class: class})
	}
	return spans
}

// HTMLSpans is Spans with the HTML lexer
func HTMLSpans(source string) []Span {
	return Spans(DefaultLanguage, source)
}

func classOf(t chroma.TokenType) Class {
	switch {
	case t == chroma.NameTag:
		return ClassTag
	case t == chroma.NameAttribute:
		return ClassAttribute
	case t.InSubCategory(chroma.LiteralString):
		return ClassString
	case t.InCategory(chroma.Comment):
		return ClassComment
	case t.InCategory(chroma.Punctuation):
		return ClassPunctuation
	default:
		return ClassPlain
	}
}
