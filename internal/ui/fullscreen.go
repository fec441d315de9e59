package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/unbase64/internal/model"
)

// ImageWindowTitle is the title of the full-screen image window
const ImageWindowTitle = "unBase64 image"

// showImageFullscreen opens a new full-screen window showing the decoded image.
// Escape closes it.
func showImageFullscreen(app fyne.App, payload model.Payload) fyne.Window {
	w := app.NewWindow(ImageWindowTitle)

	img := decodeImage(payload)
	img.FillMode = canvas.ImageFillContain

	bg := canvas.NewRectangle(BackgroundDark)
	w.SetContent(container.NewStack(bg, img))

	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyEscape {
			w.Close()
		}
	})

	w.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	w.SetFullScreen(true)
	w.Show()
	return w
}
