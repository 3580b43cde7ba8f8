// Package canvas provides the editing canvas widget: a pan/zoom view over
// the editor's raster buffer with brush and eraser interaction.
package canvas

import (
	"image"
	"image/color"

	"engrave-studio/internal/editor"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

const zoomStep = 1.25

// checkerboard colors shown under transparent buffer regions.
var (
	checkerLight = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	checkerDark  = color.RGBA{R: 0xa8, G: 0xa8, B: 0xa8, A: 0xff}
	surround     = color.RGBA{R: 0x45, G: 0x45, B: 0x45, A: 0xff}
)

// EditorCanvas is the canvas widget hosting the editor engine. Pointer events
// are forwarded to the engine in device coordinates and the raster is redrawn
// after each processed sample, so there is no frame loop.
type EditorCanvas struct {
	widget.BaseWidget

	ed     *editor.Editor
	raster *fynecanvas.Raster

	// Callbacks
	onEdit       func()            // after any buffer mutation
	onZoomChange func(zoom float64)
}

var _ fyne.Widget = (*EditorCanvas)(nil)
var _ fyne.Draggable = (*EditorCanvas)(nil)
var _ desktop.Mouseable = (*EditorCanvas)(nil)
var _ desktop.Hoverable = (*EditorCanvas)(nil)

// New creates an editor canvas around the given engine.
func New(ed *editor.Editor) *EditorCanvas {
	ec := &EditorCanvas{ed: ed}
	ec.raster = fynecanvas.NewRaster(ec.draw)
	ec.raster.ScaleMode = fynecanvas.ImageScalePixels
	ec.ExtendBaseWidget(ec)
	return ec
}

// Editor returns the underlying engine.
func (ec *EditorCanvas) Editor() *editor.Editor {
	return ec.ed
}

// OnEdit sets a callback invoked after any buffer mutation.
func (ec *EditorCanvas) OnEdit(callback func()) {
	ec.onEdit = callback
}

// OnZoomChange sets a callback for zoom changes.
func (ec *EditorCanvas) OnZoomChange(callback func(zoom float64)) {
	ec.onZoomChange = callback
}

// Refresh redraws the raster from the buffer.
func (ec *EditorCanvas) Refresh() {
	ec.raster.Refresh()
	ec.BaseWidget.Refresh()
}

// MouseDown starts a draw or pan gesture.
func (ec *EditorCanvas) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	ec.ed.PointerDown(float64(ev.Position.X), float64(ev.Position.Y))
	ec.Refresh()
}

// MouseUp finalizes the active gesture.
func (ec *EditorCanvas) MouseUp(ev *desktop.MouseEvent) {
	ec.finishGesture()
}

// Dragged feeds pointer samples to the active gesture.
func (ec *EditorCanvas) Dragged(ev *fyne.DragEvent) {
	ec.ed.PointerMove(float64(ev.Position.X), float64(ev.Position.Y))
	ec.Refresh()
}

// DragEnd finalizes the active gesture.
func (ec *EditorCanvas) DragEnd() {
	ec.finishGesture()
}

func (ec *EditorCanvas) MouseIn(*desktop.MouseEvent) {}

func (ec *EditorCanvas) MouseMoved(*desktop.MouseEvent) {}

// MouseOut finalizes a stroke when the pointer leaves the canvas mid-gesture.
func (ec *EditorCanvas) MouseOut() {
	ec.finishGesture()
}

// Scrolled zooms around the cursor position.
func (ec *EditorCanvas) Scrolled(ev *fyne.ScrollEvent) {
	factor := zoomStep
	if ev.Scrolled.DY < 0 {
		factor = 1 / zoomStep
	}
	ec.ed.ZoomAt(float64(ev.Position.X), float64(ev.Position.Y), factor)
	if ec.onZoomChange != nil {
		ec.onZoomChange(ec.ed.View().Scale)
	}
	ec.Refresh()
}

// ZoomIn zooms around the viewport center.
func (ec *EditorCanvas) ZoomIn() {
	ec.zoomCentered(zoomStep)
}

// ZoomOut zooms around the viewport center.
func (ec *EditorCanvas) ZoomOut() {
	ec.zoomCentered(1 / zoomStep)
}

// ActualSize resets the view transform to identity.
func (ec *EditorCanvas) ActualSize() {
	ec.ed.ResetView()
	if ec.onZoomChange != nil {
		ec.onZoomChange(ec.ed.View().Scale)
	}
	ec.Refresh()
}

func (ec *EditorCanvas) zoomCentered(factor float64) {
	size := ec.Size()
	ec.ed.ZoomAt(float64(size.Width)/2, float64(size.Height)/2, factor)
	if ec.onZoomChange != nil {
		ec.onZoomChange(ec.ed.View().Scale)
	}
	ec.Refresh()
}

func (ec *EditorCanvas) finishGesture() {
	ec.ed.PointerUp()
	if ec.onEdit != nil {
		ec.onEdit()
	}
	ec.Refresh()
}

// draw renders the buffer under the active view transform. Each device pixel
// is inverse-mapped to a model pixel (nearest neighbor); transparent buffer
// regions show a checkerboard, and pixels outside the image show a neutral
// surround.
func (ec *EditorCanvas) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))

	buf := ec.ed.Buffer()
	if buf == nil {
		fillRGBA(output, surround)
		return output
	}

	src := buf.RGBA()
	view := ec.ed.View()
	bw, bh := buf.Width(), buf.Height()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			mx := int((float64(x) - view.OffsetX) / view.Scale)
			my := int((float64(y) - view.OffsetY) / view.Scale)

			i := output.PixOffset(x, y)
			if mx < 0 || mx >= bw || my < 0 || my >= bh {
				setPix(output, i, surround)
				continue
			}

			j := src.PixOffset(mx, my)
			alpha := src.Pix[j+3]
			if alpha == 0xff {
				output.Pix[i+0] = src.Pix[j+0]
				output.Pix[i+1] = src.Pix[j+1]
				output.Pix[i+2] = src.Pix[j+2]
				output.Pix[i+3] = 0xff
				continue
			}

			bg := checkerAt(mx, my)
			if alpha == 0 {
				setPix(output, i, bg)
				continue
			}

			// Source-over blend of the premultiplied buffer pixel onto
			// the opaque checkerboard.
			inv := uint32(0xff - alpha)
			output.Pix[i+0] = uint8(uint32(src.Pix[j+0]) + uint32(bg.R)*inv/0xff)
			output.Pix[i+1] = uint8(uint32(src.Pix[j+1]) + uint32(bg.G)*inv/0xff)
			output.Pix[i+2] = uint8(uint32(src.Pix[j+2]) + uint32(bg.B)*inv/0xff)
			output.Pix[i+3] = 0xff
		}
	}

	return output
}

// checkerAt returns the checkerboard color for a model pixel.
func checkerAt(x, y int) color.RGBA {
	if (x/8+y/8)%2 == 0 {
		return checkerLight
	}
	return checkerDark
}

func setPix(img *image.RGBA, i int, c color.RGBA) {
	img.Pix[i+0] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
}

func fillRGBA(img *image.RGBA, c color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}

// CreateRenderer implements fyne.Widget.
func (ec *EditorCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &editorCanvasRenderer{canvas: ec}
}

type editorCanvasRenderer struct {
	canvas *EditorCanvas
}

func (r *editorCanvasRenderer) Layout(size fyne.Size) {
	r.canvas.raster.Resize(size)
}

func (r *editorCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *editorCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *editorCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.raster}
}

func (r *editorCanvasRenderer) Destroy() {}
