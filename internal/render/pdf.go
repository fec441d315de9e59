package render

import (
	"github.com/ytget/unbase64/internal/model"
)

// MaxViewerURLLength is the longest resource URL the PDF load check accepts
const MaxViewerURLLength = 2000

// CheckViewerURL decides whether the load check may be attached to a PDF
// viewer bound to resourceURL. Long URLs get a warning and no load check.
func CheckViewerURL(resourceURL string) (attachLoadCheck bool, notice *model.Notice) {
	if len(resourceURL) > MaxViewerURLLength {
		return false, &model.Notice{
			Key:      model.NoticePDFURLTooLong,
			Severity: model.SeverityWarning,
		}
	}
	return true, nil
}

// LoadResult turns the outcome of a PDF load check into a notice.
// A document without pages counts as a failed load.
func LoadResult(pages int, err error) model.Notice {
	if err != nil || pages <= 0 {
		return model.Notice{Key: model.NoticePDFLoadFailed, Severity: model.SeverityWarning}
	}
	return model.Notice{Key: model.NoticePDFLoaded, Severity: model.SeveritySuccess}
}
