// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"image"
	"log"

	"engrave-studio/internal/app"
	"engrave-studio/internal/editor"
	"engrave-studio/internal/export"
	"engrave-studio/internal/gen"
	"engrave-studio/internal/version"
	"engrave-studio/ui/canvas"
	"engrave-studio/ui/panels"
	"engrave-studio/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	prefKeyMaterial   = "lastMaterial"
	prefKeyDesignType = "lastDesignType"
	prefKeyLineWidth  = "lineWidth"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app    fyne.App
	state  *app.State
	prefs  *prefs.Prefs
	canvas *canvas.EditorCanvas

	sidePanel *panels.SidePanel
	statusBar *widget.Label

	editorLayout fyne.CanvasObject
}

// New creates a new main window. The editor area stays behind the login
// gate until the gate is passed.
func New(fyneApp fyne.App, state *app.State, generator gen.Generator, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Engrave Studio")
	win.Resize(fyne.NewSize(1100, 720))

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.setupUI(generator)
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.restorePreferences()

	if state.Authenticated() {
		mw.SetContent(mw.editorLayout)
	} else {
		mw.SetContent(mw.loginScreen())
	}

	return mw
}

// setupUI creates the editor layout.
func (mw *MainWindow) setupUI(generator gen.Generator) {
	mw.canvas = canvas.New(editor.New())
	mw.canvas.OnEdit(func() {
		mw.updateStatus()
	})

	mw.sidePanel = panels.NewSidePanel(mw.state, mw.canvas, generator)
	mw.sidePanel.SetWindow(mw.Window)

	mw.statusBar = widget.NewLabel("Ready")

	toolbar := container.NewHBox(
		widget.NewLabel("Zoom:"),
		widget.NewButton("-", mw.canvas.ZoomOut),
		widget.NewButton("+", mw.canvas.ZoomIn),
		widget.NewButton("1:1", mw.canvas.ActualSize),
	)

	canvasArea := container.NewBorder(
		toolbar, // top
		nil,     // bottom
		nil,     // left
		nil,     // right
		mw.canvas,
	)

	split := container.NewHSplit(
		mw.sidePanel.Container(),
		canvasArea,
	)
	split.SetOffset(0.25)

	mw.editorLayout = container.NewBorder(
		nil,                               // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		split,                             // center
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	exportItems := make([]*fyne.MenuItem, 0, len(export.Formats()))
	for _, format := range export.Formats() {
		f := format
		exportItems = append(exportItems, fyne.NewMenuItem(f.String()+"...", func() {
			mw.onExport(f)
		}))
	}
	exportMenu := fyne.NewMenuItem("Export", nil)
	exportMenu.ChildMenu = fyne.NewMenu("", exportItems...)

	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Session...", mw.onOpenSession),
		fyne.NewMenuItem("Save Session...", mw.onSaveSession),
		fyne.NewMenuItemSeparator(),
		exportMenu,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", mw.onUndo),
		fyne.NewMenuItem("Reset to Original", mw.onResetToOriginal),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", mw.canvas.ZoomIn),
		fyne.NewMenuItem("Zoom Out", mw.canvas.ZoomOut),
		fyne.NewMenuItem("Actual Size", mw.canvas.ActualSize),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventLoggedIn, func(interface{}) {
		mw.SetContent(mw.editorLayout)
	})

	mw.state.On(app.EventImageLoaded, func(data interface{}) {
		img, ok := data.(image.Image)
		if !ok || img == nil {
			return
		}
		mw.canvas.Editor().LoadImage(img, false)
		mw.canvas.Refresh()
		mw.updateStatus()
	})

	mw.state.On(app.EventOptionsChanged, func(interface{}) {
		opts := mw.state.Options()
		mw.prefs.SetString(prefKeyMaterial, opts.Material)
		mw.prefs.SetString(prefKeyDesignType, opts.DesignType)
	})

	mw.state.On(app.EventGenerationDiscarded, func(interface{}) {
		mw.statusBar.SetText("Generated result discarded")
	})

	// Host side of the discard callback: forget the generated source so
	// the next generation starts from the prompt alone. The editor's
	// raster and history are untouched.
	mw.state.OnResetGeneration(func() {
		mw.state.SetSourceQuiet(nil)
	})
}

// restorePreferences applies saved preferences to the session.
func (mw *MainWindow) restorePreferences() {
	opts := mw.state.Options()
	opts.Material = mw.prefs.StringWithFallback(prefKeyMaterial, opts.Material)
	opts.DesignType = mw.prefs.StringWithFallback(prefKeyDesignType, opts.DesignType)
	mw.state.SetOptions(opts)

	if w := mw.prefs.Float(prefKeyLineWidth); w > 0 {
		mw.canvas.Editor().SetLineWidth(w)
	}
}

// SavePreferences persists preferences to disk.
func (mw *MainWindow) SavePreferences() {
	mw.prefs.SetFloat(prefKeyLineWidth, mw.canvas.Editor().LineWidth())
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Failed to save preferences: %v", err)
	}
}

func (mw *MainWindow) onUndo() {
	if mw.canvas.Editor().Undo() {
		mw.canvas.Refresh()
		mw.updateStatus()
	}
}

func (mw *MainWindow) onResetToOriginal() {
	if mw.canvas.Editor().ResetToOriginal() {
		mw.canvas.Refresh()
		mw.updateStatus()
	}
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About",
		fmt.Sprintf("Engrave Studio %s\n\nDesign tool for CNC engraving.", version.Version),
		mw.Window)
}

// updateStatus refreshes the status bar from the editor state.
func (mw *MainWindow) updateStatus() {
	ed := mw.canvas.Editor()
	if !ed.Loaded() {
		mw.statusBar.SetText("Ready")
		return
	}
	buf := ed.Buffer()
	mw.statusBar.SetText(fmt.Sprintf("%dx%d px | %s | step %d of %d",
		buf.Width(), buf.Height(), ed.Tool(),
		ed.History().Index()+1, ed.History().Len()))
}
