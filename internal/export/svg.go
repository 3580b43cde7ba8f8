package export

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"
)

// writeSVG wraps a PNG-encoded raster as an embedded image inside a minimal
// SVG document with matching dimensions. This is not a vector trace; it is a
// tracing aid for external tools that want an SVG container.
func writeSVG(w io.Writer, img *image.RGBA) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode embedded PNG: %w", err)
	}

	width := img.Bounds().Dx()
	height := img.Bounds().Dy()
	encoded := base64.StdEncoding.EncodeToString(buf.Bytes())

	_, err := fmt.Fprintf(w,
		`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" viewBox="0 0 %d %d">
  <image width="%d" height="%d" xlink:href="data:image/png;base64,%s"/>
</svg>
`,
		width, height, width, height, width, height, encoded)
	if err != nil {
		return fmt.Errorf("failed to write SVG: %w", err)
	}
	return nil
}
