// Command vectorize converts a design image to a toolpath file without the
// GUI. It runs the same cleanup and export pipeline as the editor.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"strings"

	"engrave-studio/internal/design"
	"engrave-studio/internal/export"
	"engrave-studio/internal/prep"
	"engrave-studio/internal/vector"
)

func main() {
	imagePath := flag.String("image", "", "Path to design image (PNG, JPEG, TIFF, or BMP)")
	outPath := flag.String("out", "", "Output file (format from extension: .dxf, .svg, .png, .jpg, .pdf)")
	cleanup := flag.Bool("cleanup", false, "Run the engraving cleanup pipeline first")
	threshold := flag.Int("threshold", 0, "Cleanup threshold 1-255, 0 = auto (Otsu)")
	flag.Parse()

	if *imagePath == "" || *outPath == "" {
		fmt.Println("Usage: vectorize -image <path> -out <path> [-cleanup] [-threshold 0]")
		os.Exit(1)
	}

	img, err := design.LoadImageFile(*imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load image: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	fmt.Printf("Loaded %dx%d pixels\n", bounds.Dx(), bounds.Dy())

	snapshot := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(snapshot, snapshot.Bounds(), img, bounds.Min, draw.Src)

	if *cleanup {
		opts := prep.DefaultOptions()
		opts.Threshold = *threshold
		mask, err := prep.Cleanup(snapshot, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Cleanup failed: %v\n", err)
			os.Exit(1)
		}
		snapshot = mask
		fmt.Println("Applied engraving cleanup")
	}

	format, err := formatFromPath(*outPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if format == export.FormatDXF {
		segments := vector.Scan(snapshot)
		fmt.Printf("Traced %d segments\n", len(segments))
	}

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := export.Write(f, snapshot, format); err != nil {
		fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s (%s)\n", *outPath, format)
}

func formatFromPath(path string) (export.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range export.Formats() {
		if f.Extension() == ext {
			return f, nil
		}
	}
	if ext == ".jpeg" {
		return export.FormatJPEG, nil
	}
	return 0, fmt.Errorf("unsupported output extension %q", ext)
}
