package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/unbase64/internal/config"
	"github.com/ytget/unbase64/internal/download"
	"github.com/ytget/unbase64/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.unbase64"
	AppName = "unBase64"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	exportSvc := download.NewService(settings.GetDownloadDirectory(), settings.GetFilenamePrefix())

	// Remove preview files when the app exits
	myApp.Lifecycle().SetOnStopped(func() {
		if removed := exportSvc.Cleanup(); removed > 0 {
			log.Printf("Removed %d temp files", removed)
		}
	})

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, settings, exportSvc)

	// Show and run
	myWindow.ShowAndRun()
}
