package img2ascii

import "math"

// Palette holds the brightness glyphs, darkest first. A cell's glyph is
// the palette entry at its quantized brightness.
var Palette = [PaletteSize]rune{' ', '.', ':', '-', '=', '+', '*', '#', '%', '@'}

// PaletteSize is the number of brightness levels.
const PaletteSize = 10

// GlyphIndex quantizes an average brightness in [0, 255] to a palette
// index: floor(avg / 255 * 9), clamped to [0, 9].
func GlyphIndex(avg float64) int {
	idx := int(math.Floor(avg / 255 * (PaletteSize - 1)))
	switch {
	case idx < 0 || math.IsNaN(avg):
		return 0
	case idx > PaletteSize-1:
		return PaletteSize - 1
	}
	return idx
}

// ToGlyph returns the palette glyph for an average brightness.
func ToGlyph(avg float64) rune {
	return Palette[GlyphIndex(avg)]
}

// ToBrightness returns the gray level a palette index decodes to.
//
// The level is rounded up so that GlyphIndex(ToBrightness(i)) == i holds
// for every index. Rounding to nearest would put levels 1, 4 and 7 just
// under their bucket boundary.
func ToBrightness(index int) uint8 {
	index = min(max(index, 0), PaletteSize-1)
	return uint8((index*255 + PaletteSize - 2) / (PaletteSize - 1))
}

// GlyphForPixel returns the glyph for a pixel's unweighted mean brightness.
func GlyphForPixel(c RGB) rune {
	return ToGlyph(c.Mean())
}

// PaletteIndex returns the palette position of r.
func PaletteIndex(r rune) (int, bool) {
	for i, g := range Palette {
		if g == r {
			return i, true
		}
	}
	return -1, false
}

// PixelForGlyph returns the gray pixel a glyph decodes to. Runes outside
// the palette decode to white.
func PixelForGlyph(r rune) RGB {
	idx, ok := PaletteIndex(r)
	if !ok {
		return White
	}
	return Gray(ToBrightness(idx))
}
