package prep

import (
	"image"

	"engrave-studio/pkg/colorutil"

	"gonum.org/v1/gonum/floats"
)

// Histogram computes the 256-bin luminance histogram of img using the
// Rec. 601 weights.
func Histogram(img image.Image) [256]float64 {
	var hist [256]float64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			hist[colorutil.LuminanceRGBA64(r, g, b)]++
		}
	}
	return hist
}

// SuggestThreshold picks a binarization threshold with Otsu's method:
// the cutoff maximizing the between-class variance of the luminance
// histogram. Returns 128 for degenerate (empty or single-level) input.
func SuggestThreshold(img image.Image) int {
	hist := Histogram(img)
	total := floats.Sum(hist[:])
	if total == 0 {
		return 128
	}

	var weightedTotal float64
	for i, count := range hist {
		weightedTotal += float64(i) * count
	}

	var (
		bestThreshold = -1
		bestVariance  float64
	)

	var backgroundWeight, backgroundSum float64
	for t := 0; t < 256; t++ {
		backgroundWeight += hist[t]
		if backgroundWeight == 0 {
			continue
		}
		foregroundWeight := total - backgroundWeight
		if foregroundWeight == 0 {
			break
		}
		backgroundSum += float64(t) * hist[t]

		meanBackground := backgroundSum / backgroundWeight
		meanForeground := (weightedTotal - backgroundSum) / foregroundWeight
		diff := meanBackground - meanForeground
		variance := backgroundWeight * foregroundWeight * diff * diff

		if variance > bestVariance {
			bestVariance = variance
			bestThreshold = t
		}
	}

	if bestThreshold < 0 {
		return 128
	}
	return bestThreshold
}
