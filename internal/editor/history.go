package editor

import (
	"image"
)

// History is a linear undo stack: an arena of immutable full-buffer snapshots
// plus the index of the current entry. Entry 0 is always the pristine loaded
// image. Snapshotting after an undo discards the undone branch.
type History struct {
	entries []*image.RGBA
	index   int
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{index: -1}
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Index returns the current entry index, or -1 if the history is empty.
func (h *History) Index() int {
	return h.index
}

// Snapshot appends a copy of snap as the new head entry, truncating any
// entries beyond the current index first.
func (h *History) Snapshot(snap *image.RGBA) {
	if snap == nil {
		return
	}
	dup := image.NewRGBA(snap.Bounds())
	copy(dup.Pix, snap.Pix)

	h.entries = h.entries[:h.index+1]
	h.entries = append(h.entries, dup)
	h.index = len(h.entries) - 1
}

// Undo steps back one entry and returns a copy of it.
// Returns nil if already at the first entry or the history is empty.
func (h *History) Undo() *image.RGBA {
	if h.index <= 0 {
		return nil
	}
	h.index--
	return h.copyOf(h.index)
}

// ResetToOriginal rewinds to the pristine entry and returns a copy of it.
// Returns nil if the history is empty.
func (h *History) ResetToOriginal() *image.RGBA {
	if len(h.entries) == 0 {
		return nil
	}
	h.index = 0
	return h.copyOf(0)
}

// Current returns a copy of the entry at the current index, or nil if empty.
func (h *History) Current() *image.RGBA {
	if h.index < 0 {
		return nil
	}
	return h.copyOf(h.index)
}

// Clear drops all entries.
func (h *History) Clear() {
	h.entries = nil
	h.index = -1
}

// copyOf returns a defensive copy so arena entries stay immutable.
func (h *History) copyOf(i int) *image.RGBA {
	src := h.entries[i]
	dup := image.NewRGBA(src.Bounds())
	copy(dup.Pix, src.Pix)
	return dup
}
