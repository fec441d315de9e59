package model

// BodyKind selects the widget used for the result area
type BodyKind int

const (
	// BodyEmpty leaves the result area blank
	BodyEmpty BodyKind = iota
	// BodyCode shows the markup source in a scrollable code block
	BodyCode
	// BodyPDF shows the embedded PDF viewer card
	BodyPDF
	// BodyImage shows the decoded image inline
	BodyImage
	// BodyText shows the decoded text as plain text
	BodyText
)

// ViewState describes everything the result panel shows for one decode.
// It is derived from the content kind and the raw input length only.
type ViewState struct {
	Kind ContentKind
	Body BodyKind

	ShowCopy             bool
	ShowDownload         bool
	ShowPreview          bool
	ShowBackgroundToggle bool

	// PreviewLabelKey is the localization key of the preview button label
	PreviewLabelKey string

	// EmbedPDF is set when the PDF viewer is attached
	EmbedPDF bool

	// Notices raised while planning the view
	Notices []Notice
}

// HasBody reports whether anything is rendered in the result area
func (v ViewState) HasBody() bool {
	return v.Body != BodyEmpty
}
