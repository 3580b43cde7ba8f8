package export

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		material, designType string
		format               Format
		want                 string
	}{
		{"Walnut", "Cutting Board", FormatPNG, "walnut-cutting-board.png"},
		{"Stainless Steel", "Tumbler", FormatDXF, "stainless-steel-tumbler.dxf"},
		{"Oak", "", FormatSVG, "oak.svg"},
		{"", "Sign", FormatJPEG, "sign.jpg"},
		{"", "", FormatPDF, "design.pdf"},
		{"  Maple  ", "Coaster", FormatPNG, "maple-coaster.png"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FileName(tt.material, tt.designType, tt.format))
	}
}

func TestFormatExtensions(t *testing.T) {
	for _, f := range Formats() {
		assert.NotEmpty(t, f.Extension())
		assert.True(t, strings.HasPrefix(f.Extension(), "."))
		assert.NotEqual(t, "Unknown", f.String())
	}
}

func TestWriteNilSnapshot(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, nil, FormatPNG)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

// testSnapshot is white with a single black ink pixel at (1,0).
func testSnapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = 0xff
		img.Pix[i+1] = 0xff
		img.Pix[i+2] = 0xff
		img.Pix[i+3] = 0xff
	}
	i := img.PixOffset(1, 0)
	img.Pix[i+0] = 0
	img.Pix[i+1] = 0
	img.Pix[i+2] = 0
	return img
}

func TestWritePNGRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testSnapshot(), FormatPNG))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, decoded.Bounds().Dx())
	assert.Equal(t, 3, decoded.Bounds().Dy())
}

func TestWriteJPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testSnapshot(), FormatJPEG))

	cfg, err := jpeg.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Width)
	assert.Equal(t, 3, cfg.Height)
}

func TestWriteSVGEmbedsPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testSnapshot(), FormatSVG))

	out := buf.String()
	assert.Contains(t, out, `<svg xmlns="http://www.w3.org/2000/svg"`)
	assert.Contains(t, out, `width="4" height="3"`)
	assert.Contains(t, out, `viewBox="0 0 4 3"`)
	assert.Contains(t, out, "data:image/png;base64,")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
}

func TestWriteDXFStructure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testSnapshot(), FormatDXF))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	// Header, one LINE entity for the single ink pixel, then the trailer.
	want := []string{
		"0", "SECTION",
		"2", "ENTITIES",
		"0", "LINE",
		"8", "0",
		"10", "1",
		"20", "2", // raster row 0 flips to Y = height-1
		"11", "1",
		"21", "2",
		"0", "ENDSEC",
		"0", "EOF",
	}
	assert.Equal(t, want, lines)
}

func TestWriteDXFEmptyImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, img, FormatDXF))

	out := buf.String()
	assert.NotContains(t, out, "LINE")
	assert.True(t, strings.HasSuffix(out, "0\nEOF\n"))
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testSnapshot(), FormatPDF))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
