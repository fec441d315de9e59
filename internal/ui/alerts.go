package ui

import (
	"image/color"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/unbase64/internal/model"
	"github.com/ytget/unbase64/internal/schedule"
)

// AlertCenter shows transient banners stacked at the top of the window.
// The newest banner is always first.
type AlertCenter struct {
	box      *fyne.Container
	timers   *schedule.Group
	duration time.Duration

	mu      sync.Mutex
	alerts  []*model.Alert
	banners map[string]fyne.CanvasObject
}

// NewAlertCenter creates an alert centre whose banners disappear after duration
func NewAlertCenter(duration time.Duration) *AlertCenter {
	if duration <= 0 {
		duration = DefaultAlertDuration
	}
	return &AlertCenter{
		box:      container.NewVBox(),
		timers:   schedule.NewGroup(),
		duration: duration,
		banners:  make(map[string]fyne.CanvasObject),
	}
}

// Container returns the banner stack
func (ac *AlertCenter) Container() *fyne.Container {
	return ac.box
}

// SetDuration changes the display time of banners shown from now on
func (ac *AlertCenter) SetDuration(duration time.Duration) {
	if duration <= 0 {
		return
	}
	ac.mu.Lock()
	ac.duration = duration
	ac.mu.Unlock()
}

// Show prepends a banner and schedules its removal. Must run on the UI thread.
func (ac *AlertCenter) Show(message string, severity model.Severity) *model.Alert {
	alert := model.NewAlert(message, severity)
	banner := ac.newBanner(alert)

	ac.mu.Lock()
	ac.alerts = append([]*model.Alert{alert}, ac.alerts...)
	ac.banners[alert.ID] = banner
	duration := ac.duration
	ac.mu.Unlock()

	ac.box.Objects = append([]fyne.CanvasObject{banner}, ac.box.Objects...)
	ac.box.Refresh()

	log.Printf("Alert [%s] %s", alert.Severity, alert.Message)

	ac.timers.After(duration, func() {
		fyne.Do(func() { ac.Dismiss(alert.ID) })
	})
	return alert
}

// Dismiss removes a banner by ID. Unknown IDs are ignored.
func (ac *AlertCenter) Dismiss(id string) {
	ac.mu.Lock()
	banner, ok := ac.banners[id]
	if !ok {
		ac.mu.Unlock()
		return
	}
	delete(ac.banners, id)
	for i, a := range ac.alerts {
		if a.ID == id {
			ac.alerts = append(ac.alerts[:i], ac.alerts[i+1:]...)
			break
		}
	}
	ac.mu.Unlock()

	ac.box.Remove(banner)
}

// DismissAll cancels pending removals and clears every banner
func (ac *AlertCenter) DismissAll() {
	ac.timers.CancelAll()

	ac.mu.Lock()
	ac.alerts = nil
	ac.banners = make(map[string]fyne.CanvasObject)
	ac.mu.Unlock()

	ac.box.RemoveAll()
}

// Alerts returns the visible alerts, newest first
func (ac *AlertCenter) Alerts() []model.Alert {
	ac.mu.Lock()
	defer ac.mu.Unlock()

	alerts := make([]model.Alert, len(ac.alerts))
	for i, a := range ac.alerts {
		alerts[i] = *a
	}
	return alerts
}

// Count returns the number of visible alerts
func (ac *AlertCenter) Count() int {
	ac.mu.Lock()
	defer ac.mu.Unlock()
	return len(ac.alerts)
}

// newBanner builds a banner: a coloured strip, the message and a close button
func (ac *AlertCenter) newBanner(alert *model.Alert) fyne.CanvasObject {
	strip := canvas.NewRectangle(severityColor(alert.Severity))
	strip.SetMinSize(fyne.NewSize(AlertMargin/2, 0))

	label := widget.NewLabel(alert.Message)
	label.Wrapping = fyne.TextWrapWord

	id := alert.ID
	closeBtn := widget.NewButton(IconClose, func() { ac.Dismiss(id) })
	closeBtn.Importance = widget.LowImportance

	background := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	background.SetMinSize(fyne.NewSize(AlertMinWidth, 0))

	row := container.NewBorder(nil, nil, strip, closeBtn, label)
	return container.NewStack(background, row)
}

// severityColor maps severities to theme colours
func severityColor(severity model.Severity) color.Color {
	switch severity {
	case model.SeverityWarning:
		return theme.Color(theme.ColorNameWarning)
	case model.SeveritySuccess:
		return theme.Color(theme.ColorNameSuccess)
	case model.SeverityInfo:
		return theme.Color(theme.ColorNamePrimary)
	default:
		return theme.Color(theme.ColorNameError)
	}
}
