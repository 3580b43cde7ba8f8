// Package colorutil provides shared color utilities for the engraving
// design tool.
package colorutil

import (
	"image/color"
)

// Engraving palette: designs are pure black ink on a transparent ground.
var (
	Ink         = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Transparent = color.RGBA{}
	Paper       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Luminance converts 8-bit RGB to 8-bit luminance using the Rec. 601
// weights, matching OpenCV's RGB-to-gray conversion.
func Luminance(r, g, b uint8) uint8 {
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
}

// LuminanceRGBA64 is Luminance over the 16-bit channels returned by
// color.Color.RGBA.
func LuminanceRGBA64(r, g, b uint32) uint8 {
	return Luminance(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
