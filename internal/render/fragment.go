package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/ytget/unbase64/internal/model"
)

// Fragment templates
const (
	codeBlockFormat = `<pre style="background-color: #f5f5f5; padding: 10px; border-radius: 5px; overflow-y: auto; max-height: 300px;"><code>%s</code></pre>`
	pdfFrameFormat  = `<iframe src="%s" style="width:100%%; height:600px;" frameborder="0"></iframe>`
	imageFormat     = `<img src="%s" alt="Decoded Image" style="max-width: 100%%;">`
	textFormat      = `<div>%s</div>`
)

// htmlEntities is applied in order; the ampersand must come first so the
// entities added by later rules are not escaped twice.
var htmlEntities = [][2]string{
	{"&", "&amp;"},
	{"<", "&lt;"},
	{">", "&gt;"},
	{`"`, "&quot;"},
	{"'", "&#039;"},
}

// EscapeHTML escapes & < > " ' to their named entities
func EscapeHTML(s string) string {
	for _, entity := range htmlEntities {
		s = strings.ReplaceAll(s, entity[0], entity[1])
	}
	return s
}

// DataURI builds a base64 data URI for the given MIME type
func DataURI(mimeType, raw string) string {
	return "data:" + mimeType + ";base64," + raw
}

// Fragment renders the payload as an HTML fragment following state.
// An empty body renders as an empty string.
func Fragment(state model.ViewState, p model.Payload) string {
	switch state.Body {
	case model.BodyCode:
		return fmt.Sprintf(codeBlockFormat, EscapeHTML(p.Text()))
	case model.BodyPDF:
		return fmt.Sprintf(pdfFrameFormat, DataURI(model.MIMEPDF, p.Raw))
	case model.BodyImage:
		return fmt.Sprintf(imageFormat, DataURI(model.MIMEImage, p.Raw))
	case model.BodyText:
		return fmt.Sprintf(textFormat, EscapeHTML(p.Text()))
	default:
		return ""
	}
}

// HTMLTitle returns the text of the first <title> element, or "" if there is none
func HTMLTitle(markup string) string {
	z := html.NewTokenizer(strings.NewReader(markup))
	inTitle := false

	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := z.TagName()
			inTitle = atom.Lookup(name) == atom.Title
		case html.EndTagToken:
			inTitle = false
		case html.TextToken:
			if inTitle {
				return strings.TrimSpace(string(z.Text()))
			}
		}
	}
}
