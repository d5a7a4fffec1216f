// RoomSketch — 2D Floor Plan Editor
//
// A cross-platform desktop application for drawing room layouts,
// placing furniture from a reusable object library, and exporting
// printable floor plans.
//
// Build:
//   go build -o roomsketch ./cmd/roomsketch
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o roomsketch.exe ./cmd/roomsketch
//   GOOS=darwin  GOARCH=amd64 go build -o roomsketch-darwin ./cmd/roomsketch
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"roomsketch/internal/project"
	"roomsketch/internal/ui"
)

func main() {
	application := app.NewWithID("io.roomsketch.app")
	application.Settings().SetTheme(ui.NewRoomSketchTheme())

	window := application.NewWindow("RoomSketch — Floor Plan Editor")

	store, err := project.NewSceneStore("")
	if err != nil {
		log.Fatalf("failed to resolve scene path: %v", err)
	}

	appUI := ui.NewApp(window, store)
	appUI.SetupMenus() // Setup the native menu bar
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1200, 800))
	window.CenterOnScreen()
	window.ShowAndRun()
}
