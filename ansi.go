package img2ascii

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	ESC = "\u001b"

	// ColorPrefix selects a 24-bit foreground color; it is followed by
	// "R;G;B" and ColorTerminator.
	ColorPrefix = ESC + "[38;2;"

	// ColorTerminator ends the color parameters of a run.
	ColorTerminator = 'm'

	// ColorReset restores the default attributes after a run.
	ColorReset = ESC + "[0m"

	// ColorMark is the glyph every color run carries. Color mode keeps the
	// exact pixel color and gives up brightness shading.
	ColorMark = '@'
)

// Cell is one decoded cell of glyph art: the glyph that occupied it and
// the pixel it decodes to.
type Cell struct {
	Glyph rune
	Color RGB
}

// whiteCell is what every uninterpretable rune decodes to.
func whiteCell(r rune) Cell {
	return Cell{Glyph: r, Color: White}
}

// AppendColorRun appends the color run for c to dst:
// ESC "[38;2;" R ";" G ";" B "m@" ESC "[0m".
func AppendColorRun(dst []byte, c RGB) []byte {
	dst = append(dst, ColorPrefix...)
	dst = strconv.AppendUint(dst, uint64(c.R), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.G), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.B), 10)
	dst = append(dst, ColorTerminator, ColorMark)
	return append(dst, ColorReset...)
}

// FormatColorRun returns the color run for c as a string.
func FormatColorRun(c RGB) string {
	var buf [32]byte
	return string(AppendColorRun(buf[:0], c))
}

// ParseColorRun decodes the color run starting at byte offset i of line.
// It returns the decoded cell and the offset just past the run, including
// an optional trailing reset. ok is false when no run starts at i: either
// the prefix does not match or no terminator follows it anywhere in the
// line.
//
// Components that are missing or not numbers decode as 0, fractions are
// rounded and values outside [0, 255] are clamped. The glyph after the terminator is kept
// but does not affect the color; a run whose terminator ends the line
// still counts as one cell.
func ParseColorRun(line string, i int) (cell Cell, next int, ok bool) {
	if !strings.HasPrefix(line[i:], ColorPrefix) {
		return Cell{}, i, false
	}
	start := i + len(ColorPrefix)
	end := strings.IndexByte(line[start:], ColorTerminator)
	if end < 0 {
		return Cell{}, i, false
	}
	end += start

	fields := strings.Split(line[start:end], ";")
	cell.Color = RGB{
		R: parseComponent(fields, 0),
		G: parseComponent(fields, 1),
		B: parseComponent(fields, 2),
	}

	next = end + 1
	cell.Glyph = ' '
	if next < len(line) {
		r, size := utf8.DecodeRuneInString(line[next:])
		cell.Glyph = r
		next += size
	}
	if strings.HasPrefix(line[next:], ColorReset) {
		next += len(ColorReset)
	}
	return cell, next, true
}

// parseComponent returns fields[i] as a color channel, or 0.
func parseComponent(fields []string, i int) uint8 {
	if i >= len(fields) {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return clampChannel(int(math.Round(math.Max(-1, math.Min(v, 256)))))
}

// ScanColorLine decodes a line of color glyph art into cells, left to
// right. Wherever no complete color run starts, the single rune at that
// position becomes a white cell and the scan moves on by one rune. An
// unterminated run therefore yields one white cell for its ESC byte and
// one for each rune after it. ScanColorLine never fails.
func ScanColorLine(line string) []Cell {
	cells := make([]Cell, 0, strings.Count(line, ColorPrefix)+1)
	for i := 0; i < len(line); {
		if cell, next, ok := ParseColorRun(line, i); ok {
			cells = append(cells, cell)
			i = next
			continue
		}
		r, size := utf8.DecodeRuneInString(line[i:])
		cells = append(cells, whiteCell(r))
		i += size
	}
	return cells
}
