package design

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DecodeUpload validates and decodes an uploaded reference image. The bytes
// are sniffed before decoding so a mislabelled file is rejected with a clear
// error instead of a decoder panic deep in the stack.
func DecodeUpload(data []byte) (image.Image, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return nil, fmt.Errorf("failed to sniff upload: %w", err)
	}
	if kind == filetype.Unknown || !filetype.IsImage(data) {
		return nil, fmt.Errorf("upload is not an image")
	}

	switch kind.Extension {
	case "png", "jpg", "tif", "bmp":
	default:
		return nil, fmt.Errorf("unsupported image type %q", kind.Extension)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// LoadImageFile reads and decodes an image from disk.
func LoadImageFile(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return DecodeUpload(data)
}

// SupportedExtensions returns the accepted upload extensions.
func SupportedExtensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".tiff", ".tif", ".bmp"}
}

// IsSupportedFile checks the path extension against SupportedExtensions.
func IsSupportedFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
