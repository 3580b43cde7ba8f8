// Package export serializes the current raster snapshot into the supported
// output formats: PNG, JPEG, SVG, DXF, and PDF.
package export

import (
	"fmt"
	"image"
	"io"
	"strings"
)

// Format identifies an output file format.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatSVG
	FormatDXF
	FormatPDF
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatJPEG:
		return "JPEG"
	case FormatSVG:
		return "SVG"
	case FormatDXF:
		return "DXF"
	case FormatPDF:
		return "PDF"
	default:
		return "Unknown"
	}
}

// Extension returns the file extension including the leading dot.
func (f Format) Extension() string {
	switch f {
	case FormatPNG:
		return ".png"
	case FormatJPEG:
		return ".jpg"
	case FormatSVG:
		return ".svg"
	case FormatDXF:
		return ".dxf"
	case FormatPDF:
		return ".pdf"
	default:
		return ""
	}
}

// Formats lists all supported formats in menu order.
func Formats() []Format {
	return []Format{FormatPNG, FormatJPEG, FormatSVG, FormatDXF, FormatPDF}
}

// FileName derives the output file name from the design metadata: material
// and design type, lower-cased with spaces replaced by hyphens, suffixed
// with the format extension.
func FileName(material, designType string, f Format) string {
	parts := make([]string, 0, 2)
	for _, s := range []string{material, designType} {
		s = strings.TrimSpace(s)
		if s != "" {
			parts = append(parts, s)
		}
	}
	base := strings.Join(parts, " ")
	if base == "" {
		base = "design"
	}
	base = strings.ReplaceAll(strings.ToLower(base), " ", "-")
	return base + f.Extension()
}

// Write serializes the snapshot to w in the requested format.
func Write(w io.Writer, snapshot *image.RGBA, f Format) error {
	if snapshot == nil {
		return fmt.Errorf("export: no image loaded")
	}

	switch f {
	case FormatPNG:
		return writePNG(w, snapshot)
	case FormatJPEG:
		return writeJPEG(w, snapshot)
	case FormatSVG:
		return writeSVG(w, snapshot)
	case FormatDXF:
		return writeDXF(w, snapshot)
	case FormatPDF:
		return writePDF(w, snapshot)
	default:
		return fmt.Errorf("export: unsupported format %v", f)
	}
}
