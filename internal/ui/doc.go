// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the input area to the decoder, applies rendering plans to the result
// panel, and shows alerts and settings. All UI strings are localized via Localization.
package ui
