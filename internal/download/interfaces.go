package download

import (
	"github.com/ytget/unbase64/internal/model"
)

// Exporter defines the interface for the export service.
type Exporter interface {
	// Save builds the blob for kind and writes it to the download directory
	Save(kind model.ContentKind, payload model.Payload) (string, error)

	// OpenPreview writes decoded HTML to a temp file and opens it externally
	OpenPreview(markup []byte) (string, error)

	// OpenPDF writes a PDF document to a temp file and opens it externally
	OpenPDF(data []byte) (string, error)

	// VerifyPDF reports the page count of a PDF document
	VerifyPDF(data []byte) (int, error)

	// Cleanup removes the temp files created by this service
	Cleanup() int

	// SetDownloadDirectory sets the download directory
	SetDownloadDirectory(dir string)

	// SetFilenamePrefix sets the prefix of saved file names
	SetFilenamePrefix(prefix string)
}
