package export

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"

	"engrave-studio/internal/vector"
)

// writeDXF vectorizes the snapshot with the scanline run vectorizer and
// writes a minimal DXF document: an ENTITIES section containing one LINE
// entity per run, on layer "0", followed by ENDSEC and EOF markers.
func writeDXF(w io.Writer, img *image.RGBA) error {
	segments := vector.Scan(img)

	bw := bufio.NewWriter(w)
	writeGroup(bw, 0, "SECTION")
	writeGroup(bw, 2, "ENTITIES")

	for _, seg := range segments {
		writeGroup(bw, 0, "LINE")
		writeGroup(bw, 8, "0")
		writeGroup(bw, 10, formatCoord(seg.Start.X))
		writeGroup(bw, 20, formatCoord(seg.Start.Y))
		writeGroup(bw, 11, formatCoord(seg.End.X))
		writeGroup(bw, 21, formatCoord(seg.End.Y))
	}

	writeGroup(bw, 0, "ENDSEC")
	writeGroup(bw, 0, "EOF")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write DXF: %w", err)
	}
	return nil
}

// writeGroup emits one DXF group code/value pair, each on its own line.
func writeGroup(w io.Writer, code int, value string) {
	fmt.Fprintf(w, "%d\n%s\n", code, value)
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
