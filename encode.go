package img2ascii

import (
	"bufio"
	"io"
	"strings"
)

// Encode renders a bitmap as glyph art: one cell per pixel, row by row,
// each row followed by a newline. In Grayscale mode a cell is the palette
// glyph for the pixel's brightness; in Color mode it is a color run
// carrying the exact pixel color.
func Encode(b Bitmap, mode Mode) string {
	var sb strings.Builder
	sb.Grow(encodedSize(b, mode))
	// strings.Builder never fails
	_ = EncodeTo(&sb, b, mode)
	return sb.String()
}

// EncodeTo writes the glyph art for b to w.
func EncodeTo(w io.Writer, b Bitmap, mode Mode) error {
	bw := bufio.NewWriter(w)
	var run []byte
	for y := 0; y < b.Height; y++ {
		for _, c := range b.Row(y) {
			if mode == Color {
				run = AppendColorRun(run[:0], c)
				if _, err := bw.Write(run); err != nil {
					return err
				}
				continue
			}
			if _, err := bw.WriteRune(GlyphForPixel(c)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// encodedSize estimates the encoded length of b, for preallocation.
func encodedSize(b Bitmap, mode Mode) int {
	perCell := 1
	if mode == Color {
		// prefix + "255;255;255" + "m@" + reset
		perCell = len(ColorPrefix) + 11 + 2 + len(ColorReset)
	}
	return (b.Width*perCell + 1) * b.Height
}
