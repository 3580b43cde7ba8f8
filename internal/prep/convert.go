package prep

import (
	"image"

	"gocv.io/x/gocv"
)

// imageToMat converts a Go image.Image to a gocv.Mat in BGR format.
func imageToMat(img image.Image) gocv.Mat {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	mat := gocv.NewMatWithSize(h, w, gocv.MatTypeCV8UC3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// OpenCV uses BGR order.
			mat.SetUCharAt(y, x*3+0, uint8(b>>8))
			mat.SetUCharAt(y, x*3+1, uint8(g>>8))
			mat.SetUCharAt(y, x*3+2, uint8(r>>8))
		}
	}
	return mat
}

// maskToImage converts a single-channel binary mask into an RGBA image in
// the editor's ink convention: set mask pixels become opaque black, the rest
// become fully transparent.
func maskToImage(mask gocv.Mat) *image.RGBA {
	h := mask.Rows()
	w := mask.Cols()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask.GetUCharAt(y, x) > 0 {
				i := img.PixOffset(x, y)
				img.Pix[i+3] = 0xff
			}
		}
	}
	return img
}
