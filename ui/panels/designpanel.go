package panels

import (
	"context"
	"log"
	"time"

	"engrave-studio/internal/app"
	"engrave-studio/internal/design"
	"engrave-studio/internal/gen"
	"engrave-studio/internal/prep"
	"engrave-studio/ui/canvas"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// DesignPanel holds the design option form: material, design type, style,
// the generation prompt, and the generate/cleanup/discard actions.
type DesignPanel struct {
	state     *app.State
	canvas    *canvas.EditorCanvas
	generator gen.Generator
	win       fyne.Window

	materialSelect *widget.Select
	typeSelect     *widget.Select
	styleSelect    *widget.Select
	promptEntry    *widget.Entry
	generateBtn    *widget.Button
	status         *widget.Label

	content fyne.CanvasObject
}

// NewDesignPanel creates the design option form.
func NewDesignPanel(state *app.State, ec *canvas.EditorCanvas, generator gen.Generator) *DesignPanel {
	dp := &DesignPanel{
		state:     state,
		canvas:    ec,
		generator: generator,
	}
	dp.buildUI()
	return dp
}

// Container returns the panel content.
func (dp *DesignPanel) Container() fyne.CanvasObject {
	return dp.content
}

// SetWindow provides the parent window for dialogs.
func (dp *DesignPanel) SetWindow(win fyne.Window) {
	dp.win = win
}

func (dp *DesignPanel) buildUI() {
	opts := dp.state.Options()

	dp.materialSelect = widget.NewSelect(design.Materials(), func(string) { dp.applyOptions() })
	dp.materialSelect.SetSelected(opts.Material)

	dp.typeSelect = widget.NewSelect(design.DesignTypes(), func(string) { dp.applyOptions() })
	dp.typeSelect.SetSelected(opts.DesignType)

	dp.styleSelect = widget.NewSelect(design.Styles(), func(string) { dp.applyOptions() })
	dp.styleSelect.SetSelected(opts.Style)

	dp.promptEntry = widget.NewMultiLineEntry()
	dp.promptEntry.SetPlaceHolder("Describe the design, e.g. \"a mountain range with pine trees\"")
	dp.promptEntry.OnChanged = func(string) { dp.applyOptions() }

	dp.generateBtn = widget.NewButton("Generate Design", dp.onGenerate)
	uploadBtn := widget.NewButton("Upload Image...", dp.onUpload)
	cleanupBtn := widget.NewButton("Clean Up for Engraving", dp.onCleanup)
	discardBtn := widget.NewButton("Discard Generated Result", func() {
		dp.state.DiscardGeneration()
	})

	dp.status = widget.NewLabel("")
	dp.status.Wrapping = fyne.TextWrapWord

	form := widget.NewForm(
		widget.NewFormItem("Material", dp.materialSelect),
		widget.NewFormItem("Type", dp.typeSelect),
		widget.NewFormItem("Style", dp.styleSelect),
	)

	dp.content = container.NewVBox(
		form,
		widget.NewLabel("Prompt"),
		dp.promptEntry,
		dp.generateBtn,
		uploadBtn,
		widget.NewSeparator(),
		cleanupBtn,
		discardBtn,
		dp.status,
	)
}

// applyOptions pushes the form values into the shared state.
func (dp *DesignPanel) applyOptions() {
	opts := dp.state.Options()
	if dp.materialSelect.Selected != "" {
		opts.Material = dp.materialSelect.Selected
	}
	if dp.typeSelect.Selected != "" {
		opts.DesignType = dp.typeSelect.Selected
	}
	if dp.styleSelect.Selected != "" {
		opts.Style = dp.styleSelect.Selected
	}
	opts.Prompt = dp.promptEntry.Text
	dp.state.SetOptions(opts)
}

// onGenerate calls the generative-image service off the UI goroutine and
// loads the result into the editor when it arrives.
func (dp *DesignPanel) onGenerate() {
	if dp.generator == nil {
		dp.status.SetText("Image generation is not configured")
		return
	}

	dp.generateBtn.Disable()
	dp.status.SetText("Generating...")

	opts := dp.state.Options()
	reference := dp.state.Source()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		img, err := dp.generator.Generate(ctx, opts, reference)

		dp.generateBtn.Enable()
		if err != nil {
			log.Printf("Generation failed: %v", err)
			dp.status.SetText("Generation failed: " + err.Error())
			return
		}

		dp.state.SetSource(img)
		dp.status.SetText("Design ready")
	}()
}

// onUpload opens a file dialog and loads the chosen reference image.
func (dp *DesignPanel) onUpload() {
	if dp.win == nil {
		return
	}
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		if !design.IsSupportedFile(path) {
			dp.status.SetText("Unsupported image type")
			return
		}

		img, err := design.LoadImageFile(path)
		if err != nil {
			log.Printf("Failed to load %s: %v", path, err)
			dp.status.SetText("Could not load image")
			return
		}
		dp.state.SetSource(img)
		dp.status.SetText("Image loaded")
	}, dp.win)
}

// onCleanup runs the prep pipeline on the current buffer and loads the
// resulting mask as a same-size replacement, preserving edit history.
func (dp *DesignPanel) onCleanup() {
	snapshot := dp.canvas.Editor().Snapshot()
	if snapshot == nil {
		dp.status.SetText("Load an image first")
		return
	}

	mask, err := prep.Cleanup(snapshot, prep.DefaultOptions())
	if err != nil {
		log.Printf("Cleanup failed: %v", err)
		dp.status.SetText("Cleanup failed")
		return
	}

	dp.canvas.Editor().LoadImage(mask, true)
	dp.canvas.Refresh()
	dp.status.SetText("Converted to engraving mask")
}
