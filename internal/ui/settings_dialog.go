package ui

import (
	"sort"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/unbase64/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	loc      *Localization
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	downloadDirEntry   *widget.Entry
	prefixEntry        *widget.Entry
	autoRevealCheck    *widget.Check
	decodeDelayEntry   *widget.Entry
	alertDurationEntry *widget.Entry
	languageSelect     *widget.Select
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// values have been written to preferences.
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		loc:      loc,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Download directory selection
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Download directory path")

	browseDirBtn := widget.NewButton(sd.loc.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.prefixEntry = widget.NewEntry()
	sd.prefixEntry.SetPlaceHolder(config.DefaultFilenamePrefix)

	sd.autoRevealCheck = widget.NewCheck(sd.loc.GetText(KeyAutoReveal), nil)

	sd.decodeDelayEntry = widget.NewEntry()
	sd.decodeDelayEntry.SetPlaceHolder("0-" + strconv.Itoa(config.MaxDecodeDelayMs))

	sd.alertDurationEntry = widget.NewEntry()
	sd.alertDurationEntry.SetPlaceHolder(strconv.Itoa(config.MinAlertDurationSecs) + "-" + strconv.Itoa(config.MaxAlertDurationSecs))

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	form := container.NewVBox(
		widget.NewLabel(sd.loc.GetText(KeyDownloadDirectory)+":"),
		downloadDirRow,

		widget.NewLabel(sd.loc.GetText(KeyFilenamePrefix)+":"),
		sd.prefixEntry,
		sd.autoRevealCheck,

		widget.NewSeparator(),

		widget.NewLabel(sd.loc.GetText(KeyDecodeDelay)+":"),
		sd.decodeDelayEntry,

		widget.NewLabel(sd.loc.GetText(KeyAlertDuration)+":"),
		sd.alertDurationEntry,

		widget.NewLabel(sd.loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.loc.GetText(KeySettings),
		sd.loc.GetText(KeySave),
		sd.loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.prefixEntry.SetText(sd.settings.GetFilenamePrefix())
	sd.autoRevealCheck.SetChecked(sd.settings.GetAutoRevealOnSave())
	sd.decodeDelayEntry.SetText(strconv.Itoa(int(sd.settings.GetDecodeDelay() / time.Millisecond)))
	sd.alertDurationEntry.SetText(strconv.Itoa(int(sd.settings.GetAlertDuration() / time.Second)))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.loc.GetText(KeySettings), sd.loc.GetText(KeySettingsSaved), sd.window)
}

// apply writes the form values to settings; unparsable numbers are ignored
func (sd *SettingsDialog) apply() {
	if downloadDir := sd.downloadDirEntry.Text; downloadDir != "" {
		sd.settings.SetDownloadDirectory(downloadDir)
	}

	sd.settings.SetFilenamePrefix(sd.prefixEntry.Text)
	sd.settings.SetAutoRevealOnSave(sd.autoRevealCheck.Checked)

	if delay, err := strconv.Atoi(sd.decodeDelayEntry.Text); err == nil {
		sd.settings.SetDecodeDelayMs(delay)
	}

	if secs, err := strconv.Atoi(sd.alertDurationEntry.Text); err == nil {
		sd.settings.SetAlertDurationSecs(secs)
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
