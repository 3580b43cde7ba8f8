package editor

import (
	"image"
	"math"
)

// blendMode selects how stroke pixels are composited onto the buffer.
type blendMode int

const (
	// blendPaint composites opaque black with source-over semantics.
	blendPaint blendMode = iota
	// blendErase composites with destination-out semantics, cutting
	// transparency into the buffer.
	blendErase
)

// drawSegment composites a straight line segment from (x0,y0) to (x1,y1),
// in model coordinates, onto dst. The radius is in model pixels; endpoints
// get round caps so consecutive segments join without gaps.
func drawSegment(dst *image.RGBA, x0, y0, x1, y1, radius float64, mode blendMode) {
	if dst == nil {
		return
	}

	length := math.Hypot(x1-x0, y1-y0)
	steps := int(math.Ceil(length))
	if steps < 1 {
		steps = 1
	}

	// Sample at sub-pixel intervals along the segment and stamp a disc at
	// each sample. A zero-length segment degenerates to a single dot.
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		stampDisc(dst, x0+(x1-x0)*t, y0+(y1-y0)*t, radius, mode)
	}
}

// stampDisc fills a disc of the given radius centered at (cx,cy).
func stampDisc(dst *image.RGBA, cx, cy, radius float64, mode blendMode) {
	if radius < 0.5 {
		radius = 0.5
	}
	bounds := dst.Bounds()

	minX := int(math.Floor(cx - radius))
	maxX := int(math.Ceil(cx + radius))
	minY := int(math.Floor(cy - radius))
	maxY := int(math.Ceil(cy + radius))

	rr := radius * radius
	for y := minY; y <= maxY; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy > rr {
				continue
			}
			i := dst.PixOffset(x, y)
			switch mode {
			case blendPaint:
				dst.Pix[i+0] = 0
				dst.Pix[i+1] = 0
				dst.Pix[i+2] = 0
				dst.Pix[i+3] = 0xff
			case blendErase:
				// Destination-out with a fully opaque source leaves
				// nothing behind; in premultiplied RGBA that is all
				// zeros.
				dst.Pix[i+0] = 0
				dst.Pix[i+1] = 0
				dst.Pix[i+2] = 0
				dst.Pix[i+3] = 0
			}
		}
	}
}
