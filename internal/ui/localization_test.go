package ui

import (
	"errors"
	"testing"

	"github.com/ytget/unbase64/internal/model"
)

func TestLocalizationDefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != LangEnglish {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
}

func TestAlertTextsEnglish(t *testing.T) {
	l := NewLocalization()

	tests := map[string]string{
		model.NoticeEmptyInput:          "Please provide either Base64 text or upload a file.",
		model.NoticeInvalidBase64:       "Invalid Base64 input!",
		model.NoticePDFTooShort:         "PDF data is too short or corrupted.",
		model.NoticePDFURLTooLong:       "PDF URL is too long. You can download the PDF instead.",
		model.NoticePDFLoadFailed:       "PDF failed to load.",
		model.NoticePDFLoaded:           "PDF loaded successfully!",
		model.NoticeCopied:              "Decoded text copied to clipboard!",
		model.NoticeDownloadUnsupported: "Download is only supported for HTML, image, and PDF content.",
		model.NoticeFullscreenOnly:      "Fullscreen view is only available for HTML, image, or PDF content.",
		model.LabelPreviewHTML:          "Preview HTML",
	}

	for key, want := range tests {
		if got := l.GetText(key); got != want {
			t.Errorf("GetText(%s) = %q, want %q", key, got, want)
		}
	}
}

func TestAllLanguagesHaveAllKeys(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		texts, ok := l.texts[lang]
		if !ok {
			t.Fatalf("No texts for language %s", lang)
		}
		for key := range l.texts[LangEnglish] {
			if _, found := texts[key]; !found {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage(LangRussian)
	if l.GetCurrentLanguage() != LangRussian {
		t.Errorf("Expected ru, got %s", l.GetCurrentLanguage())
	}

	// Unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != LangRussian {
		t.Errorf("Unknown language should keep ru, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Missing key should return the key, got %s", got)
	}
}

func TestSetLanguageSystem(t *testing.T) {
	orig := systemLocales
	defer func() { systemLocales = orig }()

	systemLocales = func() ([]string, error) { return []string{"pt-BR", "en-US"}, nil }
	l := NewLocalization()
	l.SetLanguage(LangSystem)
	if l.GetCurrentLanguage() != LangPortug {
		t.Errorf("Expected pt, got %s", l.GetCurrentLanguage())
	}

	systemLocales = func() ([]string, error) { return nil, errors.New("no locale") }
	l.SetLanguage(LangSystem)
	if l.GetCurrentLanguage() != LangEnglish {
		t.Errorf("Expected en when detection fails, got %s", l.GetCurrentLanguage())
	}
}

func TestResolveSystemLanguage(t *testing.T) {
	tests := []struct {
		name    string
		locales []string
		want    string
	}{
		{"none", nil, LangEnglish},
		{"russian", []string{"ru-RU"}, LangRussian},
		{"portuguese", []string{"pt_BR"}, LangPortug},
		{"english", []string{"en-GB"}, LangEnglish},
		{"unsupported", []string{"ja-JP"}, LangEnglish},
		{"first supported wins", []string{"ru", "pt"}, LangRussian},
		{"unparsable", []string{"!!"}, LangEnglish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveSystemLanguage(tt.locales); got != tt.want {
				t.Errorf("ResolveSystemLanguage(%v) = %s, want %s", tt.locales, got, tt.want)
			}
		})
	}
}
