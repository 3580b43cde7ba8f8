// Package prep cleans up a generated reference image before editing:
// grayscale conversion, blur, binary threshold, and morphological denoising
// produce a high-contrast engraving mask the canvas editor can refine.
package prep

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Options configures the cleanup pipeline.
type Options struct {
	// Threshold is the grayscale cutoff below which a pixel counts as
	// engraved. Zero selects an automatic threshold from the luminance
	// histogram.
	Threshold int

	// BlurSize is the Gaussian blur kernel size; must be odd. Zero
	// disables blurring.
	BlurSize int

	// Denoise removes small speckles with a morphological open, then
	// closes small gaps.
	Denoise bool
}

// DefaultOptions returns sensible defaults for photographic input.
func DefaultOptions() Options {
	return Options{
		Threshold: 0, // automatic
		BlurSize:  5,
		Denoise:   true,
	}
}

// Cleanup converts img into a binary engraving mask: opaque black where the
// design is dark, fully transparent elsewhere.
func Cleanup(img image.Image, opts Options) (*image.RGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("prep: nil image")
	}

	src := imageToMat(img)
	defer src.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)

	if opts.BlurSize > 1 {
		size := opts.BlurSize
		if size%2 == 0 {
			size++
		}
		blurred := gocv.NewMat()
		gocv.GaussianBlur(gray, &blurred, image.Point{X: size, Y: size}, 0, 0, gocv.BorderDefault)
		gray.Close()
		gray = blurred
	}

	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = SuggestThreshold(img)
	}

	// Dark pixels become the set part of the mask.
	mask := gocv.NewMat()
	defer mask.Close()
	gocv.Threshold(gray, &mask, float32(threshold), 255, gocv.ThresholdBinaryInv)

	if opts.Denoise {
		openKernel := gocv.GetStructuringElement(gocv.MorphEllipse, image.Point{X: 3, Y: 3})
		defer openKernel.Close()
		gocv.MorphologyEx(mask, &mask, gocv.MorphOpen, openKernel)

		closeKernel := gocv.GetStructuringElement(gocv.MorphEllipse, image.Point{X: 5, Y: 5})
		defer closeKernel.Close()
		gocv.MorphologyEx(mask, &mask, gocv.MorphClose, closeKernel)
	}

	return maskToImage(mask), nil
}
