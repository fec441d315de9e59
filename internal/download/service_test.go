package download

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/unbase64/internal/model"
)

func newTestService(t *testing.T) (*Service, *[]string) {
	t.Helper()
	service := NewService(t.TempDir(), "")
	service.tempDir = t.TempDir()

	opened := []string{}
	service.opener = func(path string) error {
		opened = append(opened, path)
		return nil
	}
	return service, &opened
}

func TestNewService(t *testing.T) {
	service := NewService("/tmp/out", "[x]")

	if service.downloadDir != "/tmp/out" {
		t.Errorf("Expected downloadDir to be '/tmp/out', got '%s'", service.downloadDir)
	}

	if service.prefix != "[x]" {
		t.Errorf("Expected prefix to be '[x]', got '%s'", service.prefix)
	}

	if len(service.tempFiles) != 0 {
		t.Errorf("Expected no temp files, got %d", len(service.tempFiles))
	}
}

func TestBuildBlob(t *testing.T) {
	payload := model.Payload{Raw: "PGI+aGk8L2I+", Data: []byte("<b>hi</b>")}

	tests := []struct {
		kind     model.ContentKind
		name     string
		mimeType string
	}{
		{model.KindHTML, "[unBase64]_decoded_result.html", "text/html"},
		{model.KindPDF, "[unBase64]_decoded_document.pdf", "application/pdf"},
		{model.KindImage, "[unBase64]_decoded_image.png", "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			blob, err := BuildBlob(tt.kind, payload, "")
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if blob.Name != tt.name {
				t.Errorf("Expected name %s, got %s", tt.name, blob.Name)
			}
			if blob.MIMEType != tt.mimeType {
				t.Errorf("Expected MIME type %s, got %s", tt.mimeType, blob.MIMEType)
			}
			if string(blob.Data) != "<b>hi</b>" {
				t.Errorf("Blob data should be the exact decoded bytes, got %q", blob.Data)
			}
		})
	}
}

func TestBuildBlobCustomPrefix(t *testing.T) {
	blob, err := BuildBlob(model.KindPDF, model.Payload{}, "report")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if blob.Name != "report_decoded_document.pdf" {
		t.Errorf("Expected 'report_decoded_document.pdf', got %s", blob.Name)
	}
}

func TestBuildBlobText(t *testing.T) {
	_, err := BuildBlob(model.KindText, model.Payload{Data: []byte("hello")}, "")
	if !errors.Is(err, ErrDownloadUnsupported) {
		t.Errorf("Expected ErrDownloadUnsupported, got %v", err)
	}
}

func TestSave(t *testing.T) {
	service, _ := newTestService(t)
	payload := model.Payload{Data: []byte("<p>x</p>")}

	first, err := service.Save(model.KindHTML, payload)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if filepath.Base(first) != "[unBase64]_decoded_result.html" {
		t.Errorf("Unexpected file name %s", filepath.Base(first))
	}

	data, err := os.ReadFile(first)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	if string(data) != "<p>x</p>" {
		t.Errorf("Saved content mismatch: %q", data)
	}

	// Second save must not overwrite the first file
	second, err := service.Save(model.KindHTML, model.Payload{Data: []byte("other")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if second == first {
		t.Error("Second save should use a different path")
	}
	if filepath.Base(second) != "[unBase64]_decoded_result (1).html" {
		t.Errorf("Unexpected second file name %s", filepath.Base(second))
	}

	data, _ = os.ReadFile(first)
	if string(data) != "<p>x</p>" {
		t.Error("First file was overwritten")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	service, _ := newTestService(t)
	dir := filepath.Join(t.TempDir(), "nested", "out")
	service.SetDownloadDirectory(dir)

	path, err := service.Save(model.KindImage, model.Payload{Data: []byte{0x89, 'P', 'N', 'G'}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasPrefix(path, dir) {
		t.Errorf("Expected file inside %s, got %s", dir, path)
	}
}

func TestSaveText(t *testing.T) {
	service, _ := newTestService(t)

	path, err := service.Save(model.KindText, model.Payload{Data: []byte("hello")})
	if !errors.Is(err, ErrDownloadUnsupported) {
		t.Errorf("Expected ErrDownloadUnsupported, got %v", err)
	}
	if path != "" {
		t.Errorf("Expected empty path, got %s", path)
	}
}

func TestSaveWithoutDirectory(t *testing.T) {
	service, _ := newTestService(t)
	service.SetDownloadDirectory("")

	if _, err := service.Save(model.KindHTML, model.Payload{Data: []byte("<a></a>")}); err == nil {
		t.Error("Expected error for empty download directory")
	}
}

func TestOpenPreview(t *testing.T) {
	service, opened := newTestService(t)
	markup := []byte("<html><script>alert(1)</script></html>")

	path, err := service.OpenPreview(markup)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if filepath.Ext(path) != HTMLExt {
		t.Errorf("Expected %s extension, got %s", HTMLExt, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read preview: %v", err)
	}
	if string(data) != string(markup) {
		t.Error("Preview should contain the markup verbatim")
	}

	if len(*opened) != 1 || (*opened)[0] != path {
		t.Errorf("Expected preview to be opened once, got %v", *opened)
	}
}

func TestOpenPDFOpenerFailure(t *testing.T) {
	service, _ := newTestService(t)
	service.opener = func(string) error { return errors.New("no viewer") }

	path, err := service.OpenPDF([]byte("%PDF-1.4"))
	if err == nil {
		t.Fatal("Expected opener error")
	}
	if path == "" {
		t.Error("Temp file path should be returned even if opening fails")
	}
	if len(service.TempFiles()) != 1 {
		t.Errorf("Expected 1 tracked temp file, got %d", len(service.TempFiles()))
	}
}

func TestCleanup(t *testing.T) {
	service, _ := newTestService(t)

	first, _ := service.OpenPreview([]byte("<p>1</p>"))
	second, _ := service.OpenPDF([]byte("%PDF"))

	// Already removed files still count as cleaned up
	os.Remove(second)

	if removed := service.Cleanup(); removed != 2 {
		t.Errorf("Expected 2 removed files, got %d", removed)
	}

	if _, err := os.Stat(first); !os.IsNotExist(err) {
		t.Error("Preview file should be removed")
	}

	if len(service.TempFiles()) != 0 {
		t.Errorf("Expected no tracked files after cleanup, got %d", len(service.TempFiles()))
	}
}

func TestVerifyPDFInvalid(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"garbage", []byte("definitely not a pdf document")},
		{"header only", []byte("%PDF-1.4\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pages, err := service.VerifyPDF(tt.data)
			if err == nil {
				t.Errorf("Expected error, got %d pages", pages)
			}
			if pages != 0 {
				t.Errorf("Expected 0 pages, got %d", pages)
			}
		})
	}
}

func TestServiceImplementsExporter(t *testing.T) {
	var _ Exporter = NewService("", "")
}
