package config

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/unbase64/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir       = "download_directory"
	KeyFilenamePrefix    = "filename_prefix"
	KeyLanguage          = "app_language"
	KeyAutoRevealOnSave  = "auto_reveal_on_save"
	KeyDecodeDelayMs     = "decode_delay_ms"
	KeyAlertDurationSecs = "alert_duration_secs"
)

// Default values
const (
	DefaultFilenamePrefix    = "[unBase64]"
	DefaultLanguage          = "system"
	DefaultAutoRevealOnSave  = false
	DefaultDecodeDelayMs     = 500
	DefaultAlertDurationSecs = 3
	FallbackDownloadDir      = "/tmp/downloads"
)

// Limits for numeric settings
const (
	MaxDecodeDelayMs     = 5000
	MinAlertDurationSecs = 1
	MaxAlertDurationSecs = 30
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetFilenamePrefix returns the prefix of saved file names
func (s *Settings) GetFilenamePrefix() string {
	prefix := s.app.Preferences().String(KeyFilenamePrefix)
	if prefix == "" {
		s.SetFilenamePrefix(DefaultFilenamePrefix)
		return DefaultFilenamePrefix
	}
	return prefix
}

// SetFilenamePrefix sets the prefix of saved file names
func (s *Settings) SetFilenamePrefix(prefix string) {
	if prefix == "" {
		prefix = DefaultFilenamePrefix
	}
	s.app.Preferences().SetString(KeyFilenamePrefix, prefix)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoRevealOnSave returns whether to reveal saved files in the file manager
func (s *Settings) GetAutoRevealOnSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealOnSave, DefaultAutoRevealOnSave)
}

// SetAutoRevealOnSave sets whether to reveal saved files in the file manager
func (s *Settings) SetAutoRevealOnSave(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealOnSave, autoReveal)
}

// GetDecodeDelay returns the pause between the decode click and decoding,
// which lets the loader paint first
func (s *Settings) GetDecodeDelay() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyDecodeDelayMs, DefaultDecodeDelayMs)
	return time.Duration(ms) * time.Millisecond
}

// SetDecodeDelayMs sets the decode delay in milliseconds, clamped to [0, MaxDecodeDelayMs]
func (s *Settings) SetDecodeDelayMs(ms int) {
	if ms < 0 {
		ms = 0
	}
	if ms > MaxDecodeDelayMs {
		ms = MaxDecodeDelayMs
	}
	s.app.Preferences().SetInt(KeyDecodeDelayMs, ms)
}

// GetAlertDuration returns how long alert banners stay visible
func (s *Settings) GetAlertDuration() time.Duration {
	secs := s.app.Preferences().Int(KeyAlertDurationSecs)
	if secs <= 0 {
		s.SetAlertDurationSecs(DefaultAlertDurationSecs)
		return DefaultAlertDurationSecs * time.Second
	}
	return time.Duration(secs) * time.Second
}

// SetAlertDurationSecs sets the alert duration, clamped to the allowed range
func (s *Settings) SetAlertDurationSecs(secs int) {
	if secs < MinAlertDurationSecs {
		secs = MinAlertDurationSecs
	}
	if secs > MaxAlertDurationSecs {
		secs = MaxAlertDurationSecs
	}
	s.app.Preferences().SetInt(KeyAlertDurationSecs, secs)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
