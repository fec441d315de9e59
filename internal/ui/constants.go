package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconCopy     = "📋"
	IconClose    = "×"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Window and layout sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 700

	ResultMinHeight float32 = 320

	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 420

	ImageMinWidth  float32 = 64
	ImageMinHeight float32 = 64

	PDFCardMinWidth float32 = 320
)

// Alert banner sizing
const (
	AlertMinWidth float32 = 300
	AlertMargin   float32 = 8
)

// Fallback timings when settings are unavailable
const (
	DefaultDecodeDelay   = 500 * time.Millisecond
	DefaultAlertDuration = 3 * time.Second
)
