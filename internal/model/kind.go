package model

// ContentKind is the inferred type of a decoded payload
type ContentKind string

const (
	// KindHTML means the decoded text looks like markup
	KindHTML ContentKind = "HTML"

	// KindPDF means the base64 source carries the %PDF magic bytes
	KindPDF ContentKind = "PDF"

	// KindImage means the base64 source carries a PNG, JPEG or GIF signature
	KindImage ContentKind = "Image"

	// KindText is the fallback for anything else
	KindText ContentKind = "Text"
)

// MIME types used for saved blobs and data URIs
const (
	MIMEHTML  = "text/html"
	MIMEPDF   = "application/pdf"
	MIMEImage = "image/png"
	MIMEText  = "text/plain"
)

// String returns the string representation of ContentKind
func (k ContentKind) String() string {
	return string(k)
}

// MIMEType returns the MIME type used when the payload is exported.
// Images are always exported as image/png, whatever their real format.
func (k ContentKind) MIMEType() string {
	switch k {
	case KindHTML:
		return MIMEHTML
	case KindPDF:
		return MIMEPDF
	case KindImage:
		return MIMEImage
	default:
		return MIMEText
	}
}

// CanDownload returns true if the payload of this kind can be saved to a file
func (k ContentKind) CanDownload() bool {
	return k == KindHTML || k == KindPDF || k == KindImage
}

// CanFullscreen returns true if the rendered payload can be opened full size
func (k ContentKind) CanFullscreen() bool {
	return k == KindHTML || k == KindPDF || k == KindImage
}
