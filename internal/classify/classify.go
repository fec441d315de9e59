// Package classify infers the content kind of a decoded payload from the
// decoded text and the base64 source. Checks run in a fixed priority order and
// the first match wins.
package classify

import (
	"strings"

	"github.com/ytget/unbase64/internal/model"
)

// Markup markers
const (
	TagOpen     = "<"
	ClosingMark = "</"
)

// PDFPrefix is the base64 encoding of the %PDF magic bytes
const PDFPrefix = "JVBER"

// Base64 signatures of supported image formats
const (
	PNGPrefix  = "iVBORw0KGgo"
	JPEGMarker = "/9j"
	GIFMarker  = "R0lGODdh"
)

// IsHTML reports whether the decoded text starts with a tag and contains a closing tag
func IsHTML(decoded string) bool {
	return strings.HasPrefix(strings.TrimSpace(decoded), TagOpen) && strings.Contains(decoded, ClosingMark)
}

// IsPDF reports whether the base64 source starts with the PDF signature
func IsPDF(raw string) bool {
	return strings.HasPrefix(raw, PDFPrefix)
}

// IsImage reports whether the base64 source carries a known image signature.
// Only the PNG signature is anchored; the JPEG and GIF markers match anywhere.
func IsImage(raw string) bool {
	return strings.HasPrefix(raw, PNGPrefix) ||
		strings.Contains(raw, JPEGMarker) ||
		strings.Contains(raw, GIFMarker)
}

// Classify returns the content kind. HTML takes precedence even over sources
// whose base64 prefix matches a PDF or image signature.
func Classify(raw, decoded string) model.ContentKind {
	switch {
	case IsHTML(decoded):
		return model.KindHTML
	case IsPDF(raw):
		return model.KindPDF
	case IsImage(raw):
		return model.KindImage
	default:
		return model.KindText
	}
}

// ClassifyPayload is Classify over a decoded payload
func ClassifyPayload(p model.Payload) model.ContentKind {
	return Classify(p.Raw, p.Text())
}
