package render

import (
	"github.com/ytget/unbase64/internal/classify"
	"github.com/ytget/unbase64/internal/model"
)

// PDFEmbedFloor is the base64 length a PDF must exceed to be embedded
const PDFEmbedFloor = 2000

// Plan computes the view state for a payload of the given kind
func Plan(kind model.ContentKind, p model.Payload) model.ViewState {
	state := model.ViewState{Kind: kind}

	switch kind {
	case model.KindHTML:
		state.Body = model.BodyCode
		state.ShowCopy = true
		state.ShowDownload = true
		state.ShowPreview = true
		state.PreviewLabelKey = model.LabelPreviewHTML
	case model.KindPDF:
		state.ShowDownload = true
		if len(p.Raw) > PDFEmbedFloor {
			state.Body = model.BodyPDF
			state.EmbedPDF = true
		} else {
			state.Notices = append(state.Notices, model.Notice{
				Key:      model.NoticePDFTooShort,
				Severity: model.SeverityWarning,
			})
		}
	case model.KindImage:
		state.Body = model.BodyImage
		state.ShowDownload = true
		state.ShowBackgroundToggle = true
	default:
		state.Kind = model.KindText
		state.Body = model.BodyText
		state.ShowCopy = true
		state.ShowDownload = true
	}

	return state
}

// PlanPayload classifies the payload and plans its view
func PlanPayload(p model.Payload) model.ViewState {
	return Plan(classify.ClassifyPayload(p), p)
}
