package mainwindow

import (
	"log"

	"engrave-studio/internal/app"
	"engrave-studio/internal/export"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// onExport serializes the currently displayed snapshot in the chosen format.
// The default file name is derived from the design metadata.
func (mw *MainWindow) onExport(format export.Format) {
	snapshot := mw.canvas.Editor().Snapshot()
	if snapshot == nil {
		mw.statusBar.SetText("Load an image before exporting")
		return
	}

	opts := mw.state.Options()
	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if err := export.Write(writer, snapshot, format); err != nil {
			log.Printf("Export failed: %v", err)
			dialog.ShowError(err, mw.Window)
			return
		}

		mw.statusBar.SetText("Exported " + writer.URI().Name())
		mw.state.Emit(app.EventExported, format)
	}, mw.Window)

	saveDialog.SetFileName(export.FileName(opts.Material, opts.DesignType, format))
	saveDialog.Show()
}
