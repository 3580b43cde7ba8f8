package panels

import (
	"fmt"

	"engrave-studio/internal/editor"
	"engrave-studio/ui/canvas"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ToolsPanel holds the editing controls: tool selection, line width,
// and the undo/reset actions.
type ToolsPanel struct {
	canvas *canvas.EditorCanvas

	toolGroup  *widget.RadioGroup
	widthSlide *widget.Slider
	widthLabel *widget.Label
	zoomLabel  *widget.Label

	content fyne.CanvasObject
}

// NewToolsPanel creates the editing controls panel.
func NewToolsPanel(ec *canvas.EditorCanvas) *ToolsPanel {
	tp := &ToolsPanel{canvas: ec}
	tp.buildUI()
	return tp
}

// Container returns the panel content.
func (tp *ToolsPanel) Container() fyne.CanvasObject {
	return tp.content
}

func (tp *ToolsPanel) buildUI() {
	ed := tp.canvas.Editor()

	tp.toolGroup = widget.NewRadioGroup(
		[]string{editor.ToolBrush.String(), editor.ToolEraser.String(), editor.ToolPan.String()},
		func(selected string) {
			switch selected {
			case editor.ToolEraser.String():
				ed.SetTool(editor.ToolEraser)
			case editor.ToolPan.String():
				ed.SetTool(editor.ToolPan)
			default:
				ed.SetTool(editor.ToolBrush)
			}
		},
	)
	tp.toolGroup.SetSelected(editor.ToolBrush.String())

	tp.widthLabel = widget.NewLabel(fmt.Sprintf("Width: %.0f px", ed.LineWidth()))
	tp.widthSlide = widget.NewSlider(editor.MinLineWidth, editor.MaxLineWidth)
	tp.widthSlide.SetValue(ed.LineWidth())
	tp.widthSlide.OnChanged = func(v float64) {
		ed.SetLineWidth(v)
		tp.widthLabel.SetText(fmt.Sprintf("Width: %.0f px", ed.LineWidth()))
	}

	undoBtn := widget.NewButton("Undo", func() {
		if ed.Undo() {
			tp.canvas.Refresh()
		}
	})
	resetBtn := widget.NewButton("Reset to Original", func() {
		if ed.ResetToOriginal() {
			tp.canvas.Refresh()
		}
	})

	tp.zoomLabel = widget.NewLabel("Zoom: 100%")
	tp.canvas.OnZoomChange(func(zoom float64) {
		tp.zoomLabel.SetText(fmt.Sprintf("Zoom: %.0f%%", zoom*100))
	})

	tp.content = container.NewVBox(
		widget.NewLabel("Tool"),
		tp.toolGroup,
		tp.widthLabel,
		tp.widthSlide,
		widget.NewSeparator(),
		undoBtn,
		resetBtn,
		widget.NewSeparator(),
		tp.zoomLabel,
	)
}
