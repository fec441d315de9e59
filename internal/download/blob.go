package download

import (
	"errors"
	"fmt"

	"github.com/ytget/unbase64/internal/model"
)

// ErrDownloadUnsupported is returned for content kinds without a file format
var ErrDownloadUnsupported = errors.New("download is not supported for this content")

// File name suffixes appended to the configured prefix
const (
	HTMLNameSuffix  = "_decoded_result.html"
	PDFNameSuffix   = "_decoded_document.pdf"
	ImageNameSuffix = "_decoded_image.png"
)

// DefaultPrefix is used when no prefix is configured
const DefaultPrefix = "[unBase64]"

// BuildBlob packs the payload into a downloadable blob for kind.
// HTML keeps the exact decoded bytes, PDF and images the decoded binary.
func BuildBlob(kind model.ContentKind, payload model.Payload, prefix string) (model.Blob, error) {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	var suffix string
	switch kind {
	case model.KindHTML:
		suffix = HTMLNameSuffix
	case model.KindPDF:
		suffix = PDFNameSuffix
	case model.KindImage:
		suffix = ImageNameSuffix
	default:
		return model.Blob{}, fmt.Errorf("%w: %s", ErrDownloadUnsupported, kind)
	}

	data := make([]byte, len(payload.Data))
	copy(data, payload.Data)

	return model.Blob{
		Name:     prefix + suffix,
		MIMEType: kind.MIMEType(),
		Data:     data,
	}, nil
}
