package ui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/unbase64/internal/highlight"
	"github.com/ytget/unbase64/internal/model"
	"github.com/ytget/unbase64/internal/render"
)

// File size formatting constants
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// Result background colours for images
var (
	BackgroundLight color.Color = color.White
	BackgroundDark  color.Color = color.Black
)

// formatFileSize formats file size in bytes to human readable format
func formatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}

// ResultView is the render container. It shows one body at a time, chosen by
// the view state applied last.
type ResultView struct {
	widget.BaseWidget

	localization *Localization

	state   model.ViewState
	payload model.Payload

	background *canvas.Rectangle
	body       *fyne.Container
	darkBg     bool

	// resource URL the embedded PDF card is bound to
	pdfURI string
	// plain text of the code body, for inspection
	codeText string
	// inline image of the image body
	image *canvas.Image
}

// NewResultView creates an empty result view
func NewResultView(localization *Localization) *ResultView {
	rv := &ResultView{
		localization: localization,
		background:   canvas.NewRectangle(color.Transparent),
		body:         container.NewStack(),
	}
	rv.ExtendBaseWidget(rv)
	return rv
}

// Apply replaces the rendered content with the body described by state
func (rv *ResultView) Apply(state model.ViewState, payload model.Payload) {
	rv.state = state
	rv.payload = payload
	rv.pdfURI = ""
	rv.codeText = ""
	rv.image = nil
	rv.darkBg = false

	var obj fyne.CanvasObject
	switch state.Body {
	case model.BodyCode:
		obj = rv.newCodeBlock(payload.Text())
	case model.BodyPDF:
		rv.pdfURI = render.DataURI(model.MIMEPDF, payload.Raw)
		obj = rv.newPDFCard(payload)
	case model.BodyImage:
		rv.image = newImage(payload)
		obj = rv.image
	case model.BodyText:
		label := widget.NewLabel(payload.Text())
		label.Wrapping = fyne.TextWrapWord
		obj = container.NewVScroll(label)
	}

	if obj == nil {
		rv.body.RemoveAll()
	} else {
		rv.body.Objects = []fyne.CanvasObject{obj}
	}
	rv.updateBackground()
	rv.Refresh()
}

// Clear removes any rendered content
func (rv *ResultView) Clear() {
	rv.Apply(model.ViewState{}, model.Payload{})
}

// ToggleBackground flips the image background between white and black.
// It only has an effect while an image is shown.
func (rv *ResultView) ToggleBackground() {
	if rv.state.Body != model.BodyImage {
		return
	}
	rv.darkBg = !rv.darkBg
	rv.updateBackground()
}

// Background returns the current container background
func (rv *ResultView) Background() color.Color {
	return rv.background.FillColor
}

// Body returns the kind of body currently shown
func (rv *ResultView) Body() model.BodyKind {
	return rv.state.Body
}

// PDFResourceURI returns the resource URL of the embedded PDF, if any
func (rv *ResultView) PDFResourceURI() string {
	return rv.pdfURI
}

// Image returns the inline image, nil unless an image body is shown
func (rv *ResultView) Image() *canvas.Image {
	return rv.image
}

// CodeText returns the source shown in the code block
func (rv *ResultView) CodeText() string {
	return rv.codeText
}

func (rv *ResultView) updateBackground() {
	switch {
	case rv.state.Body != model.BodyImage:
		rv.background.FillColor = color.Transparent
	case rv.darkBg:
		rv.background.FillColor = BackgroundDark
	default:
		rv.background.FillColor = BackgroundLight
	}
	rv.background.Refresh()
}

// newCodeBlock renders highlighted markup in a scrollable monospace block
func (rv *ResultView) newCodeBlock(source string) fyne.CanvasObject {
	spans := highlight.HTMLSpans(source)

	var sb strings.Builder
	segments := make([]widget.RichTextSegment, 0, len(spans))
	for _, span := range spans {
		sb.WriteString(span.Text)
		segments = append(segments, &widget.TextSegment{
			Text: span.Text,
			Style: widget.RichTextStyle{
				ColorName: spanColorName(span.Class),
				Inline:    true,
				SizeName:  theme.SizeNameText,
				TextStyle: fyne.TextStyle{Monospace: true},
			},
		})
	}
	rv.codeText = sb.String()

	code := widget.NewRichText(segments...)
	code.Wrapping = fyne.TextWrapBreak

	codeBg := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	codeBg.CornerRadius = theme.InputRadiusSize()
	return container.NewStack(codeBg, container.NewScroll(code))
}

// newPDFCard renders the embedded PDF viewer as a summary card. The full
// document opens in the system viewer from the fullscreen action.
func (rv *ResultView) newPDFCard(payload model.Payload) fyne.CanvasObject {
	title := widget.NewLabelWithStyle(IconFile+" "+rv.localization.GetText(KeyPDFDocument), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	size := widget.NewLabel(formatFileSize(payload.Size()) + MiddleDotSeparator + model.MIMEPDF)

	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(PDFCardMinWidth, 0))

	return container.NewVBox(spacer, widget.NewCard("", "", container.NewVBox(title, size)))
}

// newImage decodes the payload into an inline image scaled to fit
func newImage(payload model.Payload) *canvas.Image {
	img := decodeImage(payload)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(ImageMinWidth, ImageMinHeight))
	return img
}

// decodeImage decodes PNG, JPEG and GIF payloads up front. Other data is
// handed to Fyne as a resource.
func decodeImage(payload model.Payload) *canvas.Image {
	decoded, format, err := image.Decode(bytes.NewReader(payload.Data))
	if err != nil {
		log.Printf("Failed to decode image: %v", err)
		return canvas.NewImageFromReader(bytes.NewReader(payload.Data), "decoded.png")
	}
	log.Printf("Decoded %s image %dx%d", format, decoded.Bounds().Dx(), decoded.Bounds().Dy())
	return canvas.NewImageFromImage(decoded)
}

// spanColorName maps highlight classes to theme colours
func spanColorName(class highlight.Class) fyne.ThemeColorName {
	switch class {
	case highlight.ClassTag:
		return ColorNameMarkupTag
	case highlight.ClassAttribute:
		return ColorNameMarkupAttribute
	case highlight.ClassString:
		return ColorNameMarkupString
	case highlight.ClassComment:
		return ColorNameMarkupComment
	default:
		return theme.ColorNameForeground
	}
}

// CreateRenderer creates the widget renderer
func (rv *ResultView) CreateRenderer() fyne.WidgetRenderer {
	return &resultViewRenderer{view: rv, layout: container.NewStack(rv.background, rv.body)}
}

// resultViewRenderer renders the result view widget
type resultViewRenderer struct {
	view   *ResultView
	layout *fyne.Container
}

// Layout arranges the components
func (r *resultViewRenderer) Layout(size fyne.Size) {
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *resultViewRenderer) MinSize() fyne.Size {
	min := r.layout.MinSize()
	if min.Height < ResultMinHeight {
		min.Height = ResultMinHeight
	}
	return min
}

// Refresh refreshes the renderer
func (r *resultViewRenderer) Refresh() {
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *resultViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *resultViewRenderer) Destroy() {}
