package design

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUploadPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 5, 7))))

	img, err := DecodeUpload(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 5, img.Bounds().Dx())
	assert.Equal(t, 7, img.Bounds().Dy())
}

func TestDecodeUploadRejectsNonImage(t *testing.T) {
	_, err := DecodeUpload([]byte("%PDF-1.4 definitely not a raster"))
	assert.Error(t, err)
}

func TestDecodeUploadRejectsGarbage(t *testing.T) {
	_, err := DecodeUpload([]byte{0x00, 0x01, 0x02, 0x03})
	assert.Error(t, err)
}

func TestIsSupportedFile(t *testing.T) {
	assert.True(t, IsSupportedFile("design.png"))
	assert.True(t, IsSupportedFile("photo.JPG"))
	assert.True(t, IsSupportedFile("/tmp/scan.tiff"))
	assert.False(t, IsSupportedFile("notes.txt"))
	assert.False(t, IsSupportedFile("archive.png.zip"))
	assert.False(t, IsSupportedFile("noextension"))
}

func TestNewOptionsDefaults(t *testing.T) {
	opts := NewOptions()
	assert.NotEmpty(t, opts.ID)
	assert.Contains(t, Materials(), opts.Material)
	assert.Contains(t, DesignTypes(), opts.DesignType)
	assert.Contains(t, Styles(), opts.Style)

	// Each session gets its own ID.
	assert.NotEqual(t, opts.ID, NewOptions().ID)
}
