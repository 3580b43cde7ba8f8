package export

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
)

// jpegQuality matches the fixed 0.9 encode quality of the original tool.
const jpegQuality = 90

func writePNG(w io.Writer, img *image.RGBA) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

func writeJPEG(w io.Writer, img *image.RGBA) error {
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return nil
}
