package ui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/unbase64/internal/config"
	"github.com/ytget/unbase64/internal/decode"
	"github.com/ytget/unbase64/internal/download"
	"github.com/ytget/unbase64/internal/model"
	"github.com/ytget/unbase64/internal/platform"
	"github.com/ytget/unbase64/internal/render"
	"github.com/ytget/unbase64/internal/schedule"
)

// FullscreenShortcut opens the current result full screen
var FullscreenShortcut = &desktop.CustomShortcut{
	KeyName:  fyne.KeyF,
	Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift,
}

// decodedResult is the outcome of the last successful decode
type decodedResult struct {
	state   model.ViewState
	payload model.Payload
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	exporter     download.Exporter

	inputEntry  *widget.Entry
	decodeBtn   *widget.Button
	openFileBtn *widget.Button
	loader      *widget.ProgressBarInfinite

	result *ResultView
	alerts *AlertCenter

	// Action bar
	copyBtn     *widget.Button
	downloadBtn *widget.Button
	previewBtn  *widget.Button
	bgToggleBtn *widget.Button

	pendingDecode schedule.Slot
	current       *decodedResult
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, exporter download.Exporter) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		exporter:     exporter,
		alerts:       NewAlertCenter(settings.GetAlertDuration()),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	ui.syncExporter()

	ui.setupUI()
	log.Printf("RootUI initialized, language=%s", localization.GetCurrentLanguage())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.inputEntry = widget.NewMultiLineEntry()
	ui.inputEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterBase64))
	ui.inputEntry.Wrapping = fyne.TextWrapBreak
	ui.inputEntry.SetMinRowsVisible(6)

	ui.decodeBtn = widget.NewButton(ui.localization.GetText(KeyDecode), ui.onDecodeClick)
	ui.decodeBtn.Importance = widget.HighImportance

	ui.openFileBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyOpenFile), ui.onOpenFileClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	ui.loader = widget.NewProgressBarInfinite()
	ui.loader.Stop()
	ui.loader.Hide()

	ui.copyBtn = widget.NewButton(IconCopy+" "+ui.localization.GetText(KeyCopy), ui.onCopyClick)
	ui.downloadBtn = widget.NewButton(ui.localization.GetText(KeyDownload), ui.onDownloadClick)
	ui.previewBtn = widget.NewButton(ui.localization.GetText(model.LabelPreviewHTML), ui.onPreviewClick)
	ui.bgToggleBtn = widget.NewButton(ui.localization.GetText(KeyToggleBackground), ui.onToggleBackground)
	ui.hideActions()

	ui.result = NewResultView(ui.localization)

	// Logo is optional
	left := container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}

	buttonsRow := container.NewBorder(nil, nil, left, container.NewHBox(ui.openFileBtn, ui.decodeBtn))
	actionBar := container.NewHBox(ui.copyBtn, ui.downloadBtn, ui.previewBtn, ui.bgToggleBtn)

	top := container.NewVBox(
		ui.alerts.Container(),
		ui.inputEntry,
		buttonsRow,
		ui.loader,
		actionBar,
	)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, ui.result))
	ui.window.Canvas().AddShortcut(FullscreenShortcut, func(fyne.Shortcut) { ui.onFullscreen() })

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenFile), ui.onOpenFileClick)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	quitItem := fyne.NewMenuItem(ui.localization.GetText(KeyQuit), func() { ui.app.Quit() })
	quitItem.IsQuit = true

	fullscreenItem := fyne.NewMenuItem(ui.localization.GetText(KeyFullscreen), ui.onFullscreen)
	fullscreenItem.Shortcut = FullscreenShortcut

	// Language submenu
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), openItem, settingsItem, fyne.NewMenuItemSeparator(), quitItem),
		fyne.NewMenu(ui.localization.GetText(KeyView), fullscreenItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.inputEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterBase64))
	ui.decodeBtn.SetText(ui.localization.GetText(KeyDecode))
	ui.openFileBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyOpenFile))
	ui.copyBtn.SetText(IconCopy + " " + ui.localization.GetText(KeyCopy))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.bgToggleBtn.SetText(ui.localization.GetText(KeyToggleBackground))

	previewKey := model.LabelPreviewHTML
	if ui.current != nil && ui.current.state.PreviewLabelKey != "" {
		previewKey = ui.current.state.PreviewLabelKey
	}
	ui.previewBtn.SetText(ui.localization.GetText(previewKey))
}

// onDecodeClick validates the input and schedules the decode after the
// configured delay so the loader can paint. A newer click supersedes a
// decode that has not started yet.
func (ui *RootUI) onDecodeClick() {
	raw := strings.TrimSpace(ui.inputEntry.Text)
	ui.alerts.DismissAll()

	// The previous result is gone as soon as a new decode is requested
	ui.current = nil
	ui.result.Clear()
	ui.hideActions()

	if raw == "" {
		ui.pendingDecode.Cancel()
		ui.hideLoader()
		ui.showNotice(model.Notice{Key: model.NoticeEmptyInput, Severity: model.SeverityDanger})
		return
	}

	ui.showLoader()
	if ui.pendingDecode.Replace(ui.settings.GetDecodeDelay(), func() {
		fyne.Do(func() { ui.decodeNow(raw) })
	}) {
		log.Printf("Superseded pending decode")
	}
}

// decodeNow decodes raw, plans the view and applies it in one pass
func (ui *RootUI) decodeNow(raw string) {
	defer ui.hideLoader()

	ui.current = nil
	ui.result.Clear()
	ui.hideActions()

	payload, err := decode.Decode(raw)
	if err != nil {
		log.Printf("Decode failed: %v", err)
		if errors.Is(err, decode.ErrEmptyInput) {
			ui.showNotice(model.Notice{Key: model.NoticeEmptyInput, Severity: model.SeverityDanger})
			return
		}
		ui.showNotice(model.Notice{Key: model.NoticeInvalidBase64, Severity: model.SeverityDanger})
		return
	}

	state := render.PlanPayload(payload)
	log.Printf("Decoded %d bytes as %s", len(payload.Data), state.Kind)
	ui.applyState(state, payload)
}

// applyState shows the body, action buttons and notices of state
func (ui *RootUI) applyState(state model.ViewState, payload model.Payload) {
	ui.current = &decodedResult{state: state, payload: payload}
	ui.result.Apply(state, payload)

	setVisible(ui.copyBtn, state.ShowCopy)
	setVisible(ui.downloadBtn, state.ShowDownload)
	setVisible(ui.previewBtn, state.ShowPreview)
	setVisible(ui.bgToggleBtn, state.ShowBackgroundToggle)
	if state.PreviewLabelKey != "" {
		ui.previewBtn.SetText(ui.localization.GetText(state.PreviewLabelKey))
	}

	for _, notice := range state.Notices {
		ui.showNotice(notice)
	}

	if state.EmbedPDF {
		ui.checkPDF(ui.result.PDFResourceURI(), payload.Data)
	}
}

// checkPDF runs the load check of a PDF viewer bound to resourceURL.
// The outcome is reported as an alert and never changes the view.
func (ui *RootUI) checkPDF(resourceURL string, data []byte) {
	attach, notice := render.CheckViewerURL(resourceURL)
	if notice != nil {
		ui.showNotice(*notice)
	}
	if !attach {
		return
	}

	go func() {
		pages, err := ui.exporter.VerifyPDF(data)
		if err != nil {
			log.Printf("PDF load check failed: %v", err)
		}
		result := render.LoadResult(pages, err)
		fyne.Do(func() { ui.showNotice(result) })
	}()
}

// onCopyClick copies the decoded text to the clipboard and reads it back
func (ui *RootUI) onCopyClick() {
	if ui.current == nil {
		return
	}

	text := ui.current.payload.Text()
	clipboard := ui.app.Clipboard()
	clipboard.SetContent(text)

	if clipboard.Content() != text {
		log.Printf("Clipboard content mismatch after copy")
		ui.showNotice(model.Notice{Key: model.NoticeCopyFailed, Severity: model.SeverityDanger})
		return
	}
	ui.showNotice(model.Notice{Key: model.NoticeCopied, Severity: model.SeveritySuccess})
}

// onDownloadClick saves the decoded payload to the download directory
func (ui *RootUI) onDownloadClick() {
	if ui.current == nil {
		return
	}

	path, err := ui.exporter.Save(ui.current.state.Kind, ui.current.payload)
	if err != nil {
		if errors.Is(err, download.ErrDownloadUnsupported) {
			ui.showNotice(model.Notice{Key: model.NoticeDownloadUnsupported, Severity: model.SeverityDanger})
			return
		}
		log.Printf("Save failed: %v", err)
		ui.alerts.Show(fmt.Sprintf(ui.localization.GetText(KeySaveFailed), err), model.SeverityDanger)
		return
	}

	ui.alerts.Show(fmt.Sprintf(ui.localization.GetText(KeySavedTo), path), model.SeveritySuccess)

	if ui.settings.GetAutoRevealOnSave() {
		if err := platform.OpenFileInManager(path); err != nil {
			log.Printf("Error revealing file %s: %v", path, err)
			ui.alerts.Show(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), model.SeverityWarning)
		}
	}
}

// onPreviewClick opens the decoded HTML in the default browser
func (ui *RootUI) onPreviewClick() {
	if ui.current == nil || ui.current.state.Kind != model.KindHTML {
		return
	}
	ui.openHTMLPreview(ui.current.payload)
}

func (ui *RootUI) openHTMLPreview(payload model.Payload) {
	path, err := ui.exporter.OpenPreview(payload.Data)
	if err != nil {
		log.Printf("Preview failed: %v", err)
		ui.alerts.Show(fmt.Sprintf(ui.localization.GetText(KeyPreviewFailed), err), model.SeverityDanger)
		return
	}

	if title := render.HTMLTitle(payload.Text()); title != "" {
		log.Printf("Opened preview %q at %s", title, path)
	} else {
		log.Printf("Opened preview at %s", path)
	}
}

// onFullscreen shows the last result full screen, based on the stored kind
func (ui *RootUI) onFullscreen() {
	if ui.current != nil {
		switch {
		case ui.current.state.Kind == model.KindHTML:
			ui.openHTMLPreview(ui.current.payload)
			return
		case ui.current.state.Kind == model.KindImage:
			showImageFullscreen(ui.app, ui.current.payload)
			return
		case ui.current.state.Kind == model.KindPDF && ui.current.state.EmbedPDF:
			ui.openPDFFullscreen(ui.current.payload)
			return
		}
	}
	ui.showNotice(model.Notice{Key: model.NoticeFullscreenOnly, Severity: model.SeverityInfo})
}

// openPDFFullscreen opens the document in the default viewer and checks it
func (ui *RootUI) openPDFFullscreen(payload model.Payload) {
	path, err := ui.exporter.OpenPDF(payload.Data)
	if err != nil {
		log.Printf("Opening PDF failed: %v", err)
		ui.alerts.Show(fmt.Sprintf(ui.localization.GetText(KeyPreviewFailed), err), model.SeverityDanger)
		if path == "" {
			return
		}
	}
	ui.checkPDF(platform.FileURL(path), payload.Data)
}

// onToggleBackground flips the image background
func (ui *RootUI) onToggleBackground() {
	ui.result.ToggleBackground()
}

// onOpenFileClick loads base64 text from a file into the input
func (ui *RootUI) onOpenFileClick() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			ui.alerts.Show(fmt.Sprintf(ui.localization.GetText(KeyErrorReadingFile), err), model.SeverityDanger)
			return
		}
		if reader == nil {
			return
		}
		ui.loadInput(reader)
	}, ui.window)
}

// loadInput replaces the input with the contents of reader
func (ui *RootUI) loadInput(reader io.ReadCloser) {
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		log.Printf("Error reading input file: %v", err)
		ui.alerts.Show(fmt.Sprintf(ui.localization.GetText(KeyErrorReadingFile), err), model.SeverityDanger)
		return
	}
	ui.inputEntry.SetText(string(data))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies settings that take effect immediately
func (ui *RootUI) onSettingsSaved() {
	ui.syncExporter()
	ui.alerts.SetDuration(ui.settings.GetAlertDuration())

	lang := ui.settings.GetLanguage()
	if lang != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(lang)
		ui.refreshUITexts()
		ui.createMenu()
	}
}

// syncExporter pushes export settings to the exporter
func (ui *RootUI) syncExporter() {
	downloadsDir := ui.settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Printf("Failed to ensure downloads dir: %v", err)
	}
	ui.exporter.SetDownloadDirectory(downloadsDir)
	ui.exporter.SetFilenamePrefix(ui.settings.GetFilenamePrefix())
}

// showNotice shows the localized text of notice as an alert
func (ui *RootUI) showNotice(notice model.Notice) {
	ui.alerts.Show(ui.localization.GetText(notice.Key), notice.Severity)
}

func (ui *RootUI) showLoader() {
	ui.loader.Show()
	ui.loader.Start()
}

func (ui *RootUI) hideLoader() {
	ui.loader.Stop()
	ui.loader.Hide()
}

func (ui *RootUI) hideActions() {
	ui.copyBtn.Hide()
	ui.downloadBtn.Hide()
	ui.previewBtn.Hide()
	ui.bgToggleBtn.Hide()
}

func setVisible(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}
