package mainwindow

import (
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"engrave-studio/internal/design"
	"engrave-studio/internal/project"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

var sessionFilter = storage.NewExtensionFileFilter([]string{".engproj"})

// onOpenSession restores a saved session: design options, the source image
// reference, and the edited raster if one was written.
func (mw *MainWindow) onOpenSession() {
	openDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()

		path := reader.URI().Path()
		proj, err := project.Load(path)
		if err != nil {
			log.Printf("Failed to open session %s: %v", path, err)
			dialog.ShowError(err, mw.Window)
			return
		}

		mw.state.SetOptions(proj.Options)

		if src := proj.SourceImageAbs(path); src != "" {
			if img, err := design.LoadImageFile(src); err == nil {
				mw.state.SetSourceQuiet(img)
			} else {
				log.Printf("Session source image missing: %v", err)
			}
		}

		// The edited raster wins over the source; loading it resets the
		// editor history to a fresh pristine entry.
		imagePath := proj.EditedImageAbs(path)
		if imagePath == "" {
			imagePath = proj.SourceImageAbs(path)
		}
		if imagePath != "" {
			img, err := design.LoadImageFile(imagePath)
			if err != nil {
				log.Printf("Failed to load session image: %v", err)
				dialog.ShowError(err, mw.Window)
				return
			}
			mw.canvas.Editor().LoadImage(img, false)
			mw.canvas.Refresh()
		}

		mw.updateStatus()
		mw.statusBar.SetText("Opened " + proj.Name)
	}, mw.Window)

	openDialog.SetFilter(sessionFilter)
	openDialog.Show()
}

// onSaveSession writes the session file plus the edited raster as a
// sibling PNG.
func (mw *MainWindow) onSaveSession() {
	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		writer.Close()

		path := writer.URI().Path()
		if !strings.HasSuffix(path, ".engproj") {
			path += ".engproj"
		}

		name := strings.TrimSuffix(writer.URI().Name(), ".engproj")
		proj := project.New(name)
		proj.Options = mw.state.Options()

		if snapshot := mw.canvas.Editor().Snapshot(); snapshot != nil {
			imagePath := strings.TrimSuffix(path, ".engproj") + ".png"
			if err := writePNGFile(imagePath, snapshot); err != nil {
				log.Printf("Failed to save session image: %v", err)
				dialog.ShowError(err, mw.Window)
				return
			}
			proj.SetEditedImage(path, imagePath)
		}

		if err := proj.Save(path); err != nil {
			log.Printf("Failed to save session %s: %v", path, err)
			dialog.ShowError(err, mw.Window)
			return
		}

		mw.statusBar.SetText("Saved " + proj.Name)
	}, mw.Window)

	saveDialog.SetFileName("design.engproj")
	saveDialog.SetFilter(sessionFilter)
	saveDialog.Show()
}

func writePNGFile(path string, img *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
