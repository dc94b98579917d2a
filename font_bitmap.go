package img2ascii

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	// GlyphWidth and GlyphHeight define the preview character cell size
	GlyphWidth  = 8
	GlyphHeight = 8
)

// GlyphBitmap represents an 8x8 character as a 64-bit integer
// Each bit represents a pixel: 1 = foreground, 0 = background
type GlyphBitmap uint64

// FontBitmaps holds pre-rendered bitmaps for the glyphs glyph art uses
type FontBitmaps struct {
	glyphs map[rune]GlyphBitmap
	name   string
}

// getBit checks if a specific bit is set in the bitmap
func (g GlyphBitmap) getBit(x, y int) bool {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return false
	}
	return g&(1<<(y*GlyphWidth+x)) != 0
}

// setBit sets a specific bit in the bitmap
func (g *GlyphBitmap) setBit(x, y int, value bool) {
	if x < 0 || x >= GlyphWidth || y < 0 || y >= GlyphHeight {
		return
	}
	pos := y*GlyphWidth + x
	if value {
		*g |= 1 << pos
	} else {
		*g &= ^(1 << pos)
	}
}

// LoadFontBitmaps pre-renders the palette glyphs and the color mark from
// a TrueType font. An empty path uses the embedded Go Mono font.
func LoadFontBitmaps(path string) (*FontBitmaps, error) {
	name := path
	data := gomono.TTF
	if path == "" {
		name = "Go Mono"
	} else {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
	}

	ttfFont, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", name, err)
	}

	fb := &FontBitmaps{
		glyphs: make(map[rune]GlyphBitmap, PaletteSize+1),
		name:   name,
	}
	for _, r := range Palette {
		fb.glyphs[r] = renderGlyphToBitmap(ttfFont, r)
	}
	fb.glyphs[ColorMark] = renderGlyphToBitmap(ttfFont, ColorMark)
	return fb, nil
}

// Name returns the font the bitmaps were rendered from.
func (fb *FontBitmaps) Name() string {
	return fb.name
}

// renderGlyphToBitmap renders a single glyph to an 8x8 bitmap.
//
// TrueType output is anti-aliased, so the glyph is drawn into an alpha
// image and thresholded at 25% coverage; a higher threshold loses the
// thin strokes of '.' and ':' at this size. The baseline comes from the
// face metrics so descenders are not clipped.
func renderGlyphToBitmap(ttfFont *truetype.Font, r rune) GlyphBitmap {
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    float64(GlyphHeight),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	img := image.NewAlpha(image.Rect(0, 0, GlyphWidth, GlyphHeight))

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttfFont)
	ctx.SetFontSize(float64(GlyphHeight))
	ctx.SetClip(img.Bounds())
	ctx.SetDst(img)
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	metrics := face.Metrics()
	ascent := metrics.Ascent >> 6 // 26.6 fixed point to pixels
	descent := metrics.Descent >> 6
	baselineY := (GlyphHeight + int(ascent) - int(descent)) / 2

	if _, err := ctx.DrawString(string(r), freetype.Pt(0, baselineY)); err != nil {
		return 0
	}

	var bitmap GlyphBitmap
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if img.AlphaAt(x, y).A > 64 {
				bitmap.setBit(x, y, true)
			}
		}
	}

	return bitmap
}

// RenderCells renders decoded glyph art as an image, one character cell
// of GlyphWidth×GlyphHeight pixels (times scale) per glyph, on black.
// Color cells are drawn in their color; palette cells are drawn white
// and rely on the glyph shape for shading.
func (fb *FontBitmaps) RenderCells(rows [][]Cell, mode Mode, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}

	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	cellW, cellH := GlyphWidth*scale, GlyphHeight*scale
	img := image.NewRGBA(image.Rect(0, 0, width*cellW, len(rows)*cellH))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	for y, row := range rows {
		for x, cell := range row {
			fg := White
			if mode == Color {
				fg = cell.Color
			}
			fb.renderChar(img, cell.Glyph, fg, x*cellW, y*cellH, scale)
		}
	}

	return img
}

// renderChar renders a single character at the specified position. Glyphs
// without a bitmap are left blank.
func (fb *FontBitmaps) renderChar(img *image.RGBA, r rune, fg RGB, startX, startY, scale int) {
	bitmap, ok := fb.glyphs[r]
	if !ok {
		return
	}

	c := fg.ToColor()
	for y := 0; y < GlyphHeight; y++ {
		for x := 0; x < GlyphWidth; x++ {
			if !bitmap.getBit(x, y) {
				continue
			}
			rect := image.Rect(startX+x*scale, startY+y*scale, startX+(x+1)*scale, startY+(y+1)*scale)
			draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
		}
	}
}

// GetGlyph returns the bitmap for a character.
func (fb *FontBitmaps) GetGlyph(r rune) (GlyphBitmap, bool) {
	bitmap, ok := fb.glyphs[r]
	return bitmap, ok
}

// RenderPreview decodes glyph art and renders it with fb.
func RenderPreview(text string, mode Mode, fb *FontBitmaps, scale int) *image.RGBA {
	return fb.RenderCells(DecodeCells(text, mode), mode, scale)
}
