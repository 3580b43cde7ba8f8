// Package editor implements the canvas editor engine: a raster buffer with
// pan/zoom viewport, brush and eraser strokes, and a linear undo history.
// The engine is display-free; UI layers feed it pointer samples in device
// coordinates and rerender from the buffer after each call.
package editor

import (
	"image"
)

// Tool identifies the active interaction tool.
type Tool int

const (
	ToolBrush Tool = iota
	ToolEraser
	ToolPan
)

func (t Tool) String() string {
	switch t {
	case ToolBrush:
		return "Brush"
	case ToolEraser:
		return "Eraser"
	case ToolPan:
		return "Pan"
	default:
		return "Unknown"
	}
}

const (
	// MinLineWidth and MaxLineWidth bound the stroke width in device pixels.
	MinLineWidth = 1.0
	MaxLineWidth = 50.0
)

// phase is the gesture state machine: transitions are driven by pointer
// down/move/up events, so behavior is deterministic without a display loop.
type phase int

const (
	phaseIdle phase = iota
	phaseDrawing
	phasePanning
)

// Editor owns the raster buffer, viewport transform, tool state, and history.
// All operations are synchronous; there are no concurrent writers.
type Editor struct {
	buf     *Buffer
	history *History
	view    Transform

	tool      Tool
	lineWidth float64

	phase phase
	// last stroke point in model space while drawing; last pointer
	// position in device space while panning.
	lastX, lastY float64
}

// New creates an editor with no image loaded. Operations are silent no-ops
// until LoadImage succeeds.
func New() *Editor {
	return &Editor{
		history:   NewHistory(),
		view:      NewTransform(),
		tool:      ToolBrush,
		lineWidth: 3.0,
	}
}

// Loaded reports whether a source image has been loaded.
func (e *Editor) Loaded() bool {
	return e.buf != nil
}

// LoadImage installs a new source image. If the pixel dimensions differ from
// the current buffer (or nothing is loaded yet) the buffer, history, and view
// transform are fully reset. If the dimensions match, the new image replaces
// the buffer contents, the existing history is preserved with the replacement
// recorded as a new entry, and the view transform is kept only when
// preserveView is set.
func (e *Editor) LoadImage(img image.Image, preserveView bool) {
	if img == nil {
		return
	}

	if e.buf != nil && e.buf.SameSize(img) {
		e.buf.Replace(img)
		e.history.Snapshot(e.buf.RGBA())
		if !preserveView {
			e.view.Reset()
		}
		return
	}

	e.buf = NewBufferFromImage(img)
	e.history.Clear()
	e.history.Snapshot(e.buf.RGBA())
	e.view.Reset()
	e.phase = phaseIdle
}

// Buffer exposes the current raster buffer, or nil before the first load.
func (e *Editor) Buffer() *Buffer {
	return e.buf
}

// View returns the current viewport transform.
func (e *Editor) View() Transform {
	return e.view
}

// ZoomAt zooms the viewport by factor around the given device point.
func (e *Editor) ZoomAt(deviceX, deviceY, factor float64) {
	e.view.ZoomAt(deviceX, deviceY, factor)
}

// ResetView restores the identity viewport transform.
func (e *Editor) ResetView() {
	e.view.Reset()
}

// SetTool selects the active tool. Changing tools mid-gesture finalizes the
// gesture first.
func (e *Editor) SetTool(tool Tool) {
	if e.phase != phaseIdle {
		e.PointerUp()
	}
	e.tool = tool
}

// Tool returns the active tool.
func (e *Editor) Tool() Tool {
	return e.tool
}

// SetLineWidth sets the stroke width in device pixels, clamped to
// [MinLineWidth, MaxLineWidth].
func (e *Editor) SetLineWidth(w float64) {
	if w < MinLineWidth {
		w = MinLineWidth
	}
	if w > MaxLineWidth {
		w = MaxLineWidth
	}
	e.lineWidth = w
}

// LineWidth returns the stroke width in device pixels.
func (e *Editor) LineWidth() float64 {
	return e.lineWidth
}

// PointerDown begins a gesture at the given device position. With the pan
// tool the gesture moves the viewport; otherwise it starts a stroke whose
// first point is both the current and last point.
func (e *Editor) PointerDown(deviceX, deviceY float64) {
	if e.buf == nil {
		return
	}

	if e.tool == ToolPan {
		e.phase = phasePanning
		e.lastX = deviceX
		e.lastY = deviceY
		return
	}

	mx, my := e.view.ToModel(deviceX, deviceY)
	e.phase = phaseDrawing
	e.lastX = mx
	e.lastY = my
	drawSegment(e.buf.RGBA(), mx, my, mx, my, e.strokeRadius(), e.blend())
}

// PointerMove processes a pointer sample during an active gesture. While
// drawing, a straight segment from the last point to the current point is
// composited onto the buffer; while panning, the viewport offset follows the
// device-space delta. Samples outside a gesture are ignored.
func (e *Editor) PointerMove(deviceX, deviceY float64) {
	switch e.phase {
	case phaseDrawing:
		mx, my := e.view.ToModel(deviceX, deviceY)
		drawSegment(e.buf.RGBA(), e.lastX, e.lastY, mx, my, e.strokeRadius(), e.blend())
		e.lastX = mx
		e.lastY = my
	case phasePanning:
		e.view.Pan(deviceX-e.lastX, deviceY-e.lastY)
		e.lastX = deviceX
		e.lastY = deviceY
	}
}

// PointerUp finalizes the active gesture. A completed stroke is captured as
// one history entry; pan gestures leave the history untouched.
func (e *Editor) PointerUp() {
	wasDrawing := e.phase == phaseDrawing
	e.phase = phaseIdle
	if wasDrawing && e.buf != nil {
		e.history.Snapshot(e.buf.RGBA())
	}
}

// Undo restores the previous history entry. Returns false at the pristine
// entry or before any image has loaded.
func (e *Editor) Undo() bool {
	if e.buf == nil {
		return false
	}
	snap := e.history.Undo()
	if snap == nil {
		return false
	}
	e.buf.Restore(snap)
	return true
}

// ResetToOriginal restores the pristine loaded image. Returns false if no
// history exists.
func (e *Editor) ResetToOriginal() bool {
	if e.buf == nil {
		return false
	}
	snap := e.history.ResetToOriginal()
	if snap == nil {
		return false
	}
	e.buf.Restore(snap)
	return true
}

// History exposes the undo stack for inspection.
func (e *Editor) History() *History {
	return e.history
}

// Snapshot returns an independent copy of the currently displayed raster,
// suitable for export. Returns nil before the first load.
func (e *Editor) Snapshot() *image.RGBA {
	if e.buf == nil {
		return nil
	}
	return e.buf.Clone()
}

// strokeRadius converts the device-pixel line width into a model-space
// radius under the active scale, so the apparent on-screen thickness stays
// constant regardless of zoom.
func (e *Editor) strokeRadius() float64 {
	w := e.lineWidth / e.view.Scale
	if w < 1 {
		w = 1
	}
	return w / 2
}

func (e *Editor) blend() blendMode {
	if e.tool == ToolEraser {
		return blendErase
	}
	return blendPaint
}
