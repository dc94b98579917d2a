package img2ascii

import "strings"

// SplitLines splits glyph art into lines on '\n'. A trailing newline
// terminates the last line rather than starting an empty one, so the
// output of Encode splits into exactly Height lines. Empty text has no
// lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// DecodeCells parses glyph art into rows of cells. Rows keep their own
// length; Decode pads them.
func DecodeCells(text string, mode Mode) [][]Cell {
	lines := SplitLines(text)
	rows := make([][]Cell, len(lines))
	for y, line := range lines {
		if mode == Color {
			rows[y] = ScanColorLine(line)
			continue
		}
		row := make([]Cell, 0, len(line))
		for _, r := range line {
			row = append(row, Cell{Glyph: r, Color: PixelForGlyph(r)})
		}
		rows[y] = row
	}
	return rows
}

// Decode parses glyph art back into a bitmap. The bitmap has one row per
// line and is as wide as the longest line, counted in cells. Shorter
// grayscale lines are padded as if with spaces, so with black; shorter
// color lines are padded with white. Unknown glyphs and malformed color
// runs decode to white pixels, so Decode accepts any text.
func Decode(text string, mode Mode) Bitmap {
	rows := DecodeCells(text, mode)
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	pad := White
	if mode == Grayscale {
		pad = PixelForGlyph(' ')
	}

	b := NewBitmap(width, len(rows))
	for y, row := range rows {
		dst := b.Row(y)
		for x := range dst {
			if x < len(row) {
				dst[x] = row[x].Color
			} else {
				dst[x] = pad
			}
		}
	}
	return b
}
