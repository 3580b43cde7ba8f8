package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// pdfPixelsPerMM converts raster pixels to page millimeters at 96 DPI.
const pdfPixelsPerMM = 96.0 / 25.4

// writePDF places the snapshot on a single page sized to the image.
func writePDF(w io.Writer, img *image.RGBA) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode embedded PNG: %w", err)
	}

	widthMM := float64(img.Bounds().Dx()) / pdfPixelsPerMM
	heightMM := float64(img.Bounds().Dy()) / pdfPixelsPerMM

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: widthMM, Ht: heightMM},
	})
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("design", opts, &buf)
	pdf.ImageOptions("design", 0, 0, widthMM, heightMM, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}
