// Package main provides the entry point for the Engrave Studio application.
package main

import (
	"log"
	"os"

	"engrave-studio/internal/app"
	"engrave-studio/internal/gen"
	"engrave-studio/internal/version"
	"engrave-studio/ui/mainwindow"
	"engrave-studio/ui/prefs"

	fyneapp "fyne.io/fyne/v2/app"
)

const appTitle = "Engrave Studio"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := fyneapp.NewWithID("io.engrave.studio")
	fyneApp.Settings().SetTheme(&app.StudioTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()

	var generator gen.Generator
	if baseURL := os.Getenv("ENGRAVE_API_URL"); baseURL != "" {
		generator = gen.NewClient(baseURL, os.Getenv("ENGRAVE_API_KEY"))
	} else {
		log.Println("ENGRAVE_API_URL not set; image generation disabled")
	}

	win := mainwindow.New(fyneApp, appState, generator, appPrefs)
	win.SetOnClosed(win.SavePreferences)

	win.ShowAndRun()
}
