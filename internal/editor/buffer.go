package editor

import (
	"image"
	"image/draw"
)

// Buffer is the raster buffer: a fixed-size RGBA pixel grid owned exclusively
// by the editor. It is the source of truth for the edited image; display
// surfaces are derived views regenerated from it.
type Buffer struct {
	pix *image.RGBA
}

// NewBufferFromImage creates a buffer with the dimensions and contents of img.
func NewBufferFromImage(img image.Image) *Buffer {
	b := &Buffer{}
	b.Replace(img)
	return b
}

// Width returns the buffer width in pixels, or 0 if empty.
func (b *Buffer) Width() int {
	if b.pix == nil {
		return 0
	}
	return b.pix.Bounds().Dx()
}

// Height returns the buffer height in pixels, or 0 if empty.
func (b *Buffer) Height() int {
	if b.pix == nil {
		return 0
	}
	return b.pix.Bounds().Dy()
}

// RGBA exposes the underlying pixel grid for rendering and compositing.
// Callers must not retain the returned image across a Replace or Restore.
func (b *Buffer) RGBA() *image.RGBA {
	return b.pix
}

// Clone returns an independent copy of the current pixel contents.
func (b *Buffer) Clone() *image.RGBA {
	if b.pix == nil {
		return nil
	}
	dup := image.NewRGBA(b.pix.Bounds())
	copy(dup.Pix, b.pix.Pix)
	return dup
}

// Restore redraws the buffer to exactly match the given snapshot.
// The snapshot must have the buffer's dimensions.
func (b *Buffer) Restore(snapshot *image.RGBA) {
	if snapshot == nil || b.pix == nil {
		return
	}
	if !snapshot.Bounds().Eq(b.pix.Bounds()) {
		return
	}
	copy(b.pix.Pix, snapshot.Pix)
}

// Replace discards the current contents and copies img into a fresh grid
// normalized to a zero-origin RGBA image.
func (b *Buffer) Replace(img image.Image) {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	b.pix = dst
}

// SameSize reports whether img has the buffer's pixel dimensions.
func (b *Buffer) SameSize(img image.Image) bool {
	if b.pix == nil {
		return false
	}
	bounds := img.Bounds()
	return bounds.Dx() == b.Width() && bounds.Dy() == b.Height()
}
