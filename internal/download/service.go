package download

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/ytget/unbase64/internal/model"
	"github.com/ytget/unbase64/internal/platform"
)

// Temp file naming
const (
	TempDirName       = "unbase64"
	PreviewFilePrefix = "preview-"
	PDFViewFilePrefix = "document-"
	HTMLExt           = ".html"
	PDFExt            = ".pdf"
)

// Service handles export operations
type Service struct {
	mu          sync.Mutex
	downloadDir string
	prefix      string
	tempDir     string
	tempFiles   map[string]struct{}
	opener      func(string) error // opens a file with the default application
}

// NewService creates a new export service
func NewService(downloadDir, prefix string) *Service {
	return &Service{
		downloadDir: downloadDir,
		prefix:      prefix,
		tempDir:     filepath.Join(os.TempDir(), TempDirName),
		tempFiles:   make(map[string]struct{}),
		opener:      platform.OpenFileWithDefaultApp,
	}
}

// SetDownloadDirectory sets the download directory
func (s *Service) SetDownloadDirectory(dir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.downloadDir = dir
}

// SetFilenamePrefix sets the prefix of saved file names
func (s *Service) SetFilenamePrefix(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefix = prefix
}

// Save builds the blob for kind and writes it to the download directory.
// An existing file is never overwritten; a " (n)" suffix is added instead.
func (s *Service) Save(kind model.ContentKind, payload model.Payload) (string, error) {
	s.mu.Lock()
	dir, prefix := s.downloadDir, s.prefix
	s.mu.Unlock()

	blob, err := BuildBlob(kind, payload, prefix)
	if err != nil {
		return "", err
	}

	return s.SaveBlob(dir, blob)
}

// SaveBlob writes blob into dir and returns the final path
func (s *Service) SaveBlob(dir string, blob model.Blob) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("download directory is not set")
	}

	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}

	path, err := platform.UniqueFilePath(dir, blob.Name)
	if err != nil {
		return "", err
	}

	if err := platform.WriteNewFile(path, blob.Data); err != nil {
		return "", err
	}

	log.Printf("Saved %s (%d bytes, %s)", path, len(blob.Data), blob.MIMEType)
	return path, nil
}

// WriteTemp writes data to a new tracked temp file with the given name prefix and extension
func (s *Service) WriteTemp(namePrefix, ext string, data []byte) (string, error) {
	if err := platform.CreateDirectoryIfNotExists(s.tempDir); err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	path := filepath.Join(s.tempDir, namePrefix+uuid.New().String()+ext)
	if err := platform.WriteNewFile(path, data); err != nil {
		return "", err
	}

	s.mu.Lock()
	s.tempFiles[path] = struct{}{}
	s.mu.Unlock()

	return path, nil
}

// OpenPreview writes the decoded HTML verbatim to a temp file and opens it
// in the default browser. The markup runs unsandboxed there.
func (s *Service) OpenPreview(markup []byte) (string, error) {
	path, err := s.WriteTemp(PreviewFilePrefix, HTMLExt, markup)
	if err != nil {
		return "", fmt.Errorf("failed to write preview: %w", err)
	}

	if err := s.opener(path); err != nil {
		return path, fmt.Errorf("failed to open preview: %w", err)
	}

	return path, nil
}

// OpenPDF writes the document to a temp file and opens it in the default viewer
func (s *Service) OpenPDF(data []byte) (string, error) {
	path, err := s.WriteTemp(PDFViewFilePrefix, PDFExt, data)
	if err != nil {
		return "", fmt.Errorf("failed to write PDF: %w", err)
	}

	if err := s.opener(path); err != nil {
		return path, fmt.Errorf("failed to open PDF: %w", err)
	}

	return path, nil
}

// VerifyPDF parses the document with pdfcpu and returns its page count
func (s *Service) VerifyPDF(data []byte) (int, error) {
	return PageCount(data)
}

// PageCount parses a PDF document in relaxed validation mode and returns its page count.
// A parser panic on malformed input is reported as an error.
func PageCount(data []byte) (pages int, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages, err = 0, fmt.Errorf("failed to read PDF: %v", r)
		}
	}()

	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed

	pages, err = api.PageCount(bytes.NewReader(data), conf)
	if err != nil {
		return 0, fmt.Errorf("failed to read PDF: %w", err)
	}
	return pages, nil
}

// TempFiles returns the tracked temp files
func (s *Service) TempFiles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	files := make([]string, 0, len(s.tempFiles))
	for path := range s.tempFiles {
		files = append(files, path)
	}
	return files
}

// Cleanup removes all tracked temp files and returns how many were removed
func (s *Service) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for path := range s.tempFiles {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("Failed to remove temp file %s: %v", path, err)
			continue
		}
		delete(s.tempFiles, path)
		removed++
	}
	return removed
}
