package prep

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func grayImage(w, h int, level uint8) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	c := color.RGBA{R: level, G: level, B: level, A: 255}
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func TestHistogram(t *testing.T) {
	img := grayImage(4, 4, 200)
	hist := Histogram(img)
	assert.Equal(t, 16.0, hist[200])

	var total float64
	for _, c := range hist {
		total += c
	}
	assert.Equal(t, 16.0, total)
}

func TestSuggestThresholdBimodal(t *testing.T) {
	// Left half dark, right half bright; the cutoff must fall between
	// the two modes.
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	draw.Draw(img, image.Rect(0, 0, 10, 10),
		image.NewUniform(color.RGBA{R: 30, G: 30, B: 30, A: 255}), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(10, 0, 20, 10),
		image.NewUniform(color.RGBA{R: 220, G: 220, B: 220, A: 255}), image.Point{}, draw.Src)

	threshold := SuggestThreshold(img)
	assert.GreaterOrEqual(t, threshold, 30)
	assert.Less(t, threshold, 220)
}

func TestSuggestThresholdUniformImage(t *testing.T) {
	// Single-level input has no between-class split; falls back to 128.
	assert.Equal(t, 128, SuggestThreshold(grayImage(8, 8, 90)))
}

func TestSuggestThresholdEmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 0, 0))
	assert.Equal(t, 128, SuggestThreshold(img))
}
