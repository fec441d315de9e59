package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/unbase64/internal/config"
)

func TestSettingsDialogApply(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetDownloadDirectory(t.TempDir())
	w := test.NewWindow(nil)
	defer w.Close()

	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), w, func() { saved++ })
	sd.loadCurrentSettings()

	assert.Equal(t, config.DefaultFilenamePrefix, sd.prefixEntry.Text)
	assert.Equal(t, "500", sd.decodeDelayEntry.Text)
	assert.Equal(t, "3", sd.alertDurationEntry.Text)

	dir := t.TempDir()
	sd.downloadDirEntry.SetText(dir)
	sd.prefixEntry.SetText("export")
	sd.autoRevealCheck.SetChecked(true)
	sd.decodeDelayEntry.SetText("250")
	sd.alertDurationEntry.SetText("not a number")
	sd.languageSelect.SetSelected(LangRussian)

	sd.apply()

	assert.Equal(t, 1, saved)
	assert.Equal(t, dir, settings.GetDownloadDirectory())
	assert.Equal(t, "export", settings.GetFilenamePrefix())
	assert.True(t, settings.GetAutoRevealOnSave())
	assert.Equal(t, 250*time.Millisecond, settings.GetDecodeDelay())
	assert.Equal(t, 3*time.Second, settings.GetAlertDuration())
	assert.Equal(t, LangRussian, settings.GetLanguage())
}

func TestSettingsDialogCancel(t *testing.T) {
	app := test.NewApp()
	settings := config.NewSettings(app)
	settings.SetDownloadDirectory(t.TempDir())
	w := test.NewWindow(nil)
	defer w.Close()

	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), w, func() { saved = true })
	sd.loadCurrentSettings()
	sd.prefixEntry.SetText("ignored")

	sd.onSave(false)

	assert.False(t, saved)
	assert.Equal(t, config.DefaultFilenamePrefix, settings.GetFilenamePrefix())
}
