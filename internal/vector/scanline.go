// Package vector converts a raster design into line segments suitable for
// CNC toolpath formats. The algorithm is a scanline run vectorizer: it emits
// one horizontal segment per contiguous dark run per row. It is deliberately
// not a contour tracer; downstream CAM tooling depends on these exact
// semantics.
package vector

import (
	"image"

	"engrave-studio/pkg/geometry"
)

// InkThreshold is the fixed classification threshold. A pixel is ink when
// its red channel is below the threshold and its alpha channel is above it.
// Comparing both channels against the same value treats partial transparency
// like a luminance cutoff; consumers rely on this coupling, so it stays.
const InkThreshold = 128

// IsInk classifies a pixel by its red and alpha channel values.
func IsInk(red, alpha uint8) bool {
	return red < InkThreshold && alpha > InkThreshold
}

// Scan walks img row-major, left to right, and returns one segment per
// maximal run of ink pixels. Run bounds are inclusive. The Y coordinate is
// flipped to height-1-y because the raster origin is top-left while the
// target formats use bottom-left.
func Scan(img *image.RGBA) []geometry.Segment {
	if img == nil {
		return nil
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var segments []geometry.Segment
	for y := 0; y < height; y++ {
		inRun := false
		runStart := 0
		outY := float64(height - 1 - y)

		for x := 0; x < width; x++ {
			i := img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			ink := IsInk(img.Pix[i], img.Pix[i+3])

			if ink && !inRun {
				inRun = true
				runStart = x
			} else if !ink && inRun {
				inRun = false
				segments = append(segments, geometry.Segment{
					Start: geometry.NewPoint2D(float64(runStart), outY),
					End:   geometry.NewPoint2D(float64(x-1), outY),
				})
			}
		}

		// A run still open at the row's end closes on the last column.
		if inRun {
			segments = append(segments, geometry.Segment{
				Start: geometry.NewPoint2D(float64(runStart), outY),
				End:   geometry.NewPoint2D(float64(width-1), outY),
			})
		}
	}

	return segments
}
