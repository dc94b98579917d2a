package img2ascii

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPalette(t *testing.T) {
	assert.Len(t, Palette, 10)
	assert.Equal(t, " .:-=+*#%@", string(Palette[:]))
}

func TestGlyphIndex(t *testing.T) {
	tests := []struct {
		avg  float64
		want int
	}{
		{0, 0},
		{28, 0},
		{28.34, 1},
		{56, 1},
		{127.5, 4},
		{128, 4},
		{226, 7},
		{227, 8},
		{254.9, 8},
		{255, 9},
		{-10, 0},
		{300, 9},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GlyphIndex(tt.avg), "GlyphIndex(%v)", tt.avg)
	}
}

func TestToGlyph(t *testing.T) {
	assert.Equal(t, '@', ToGlyph(255))
	assert.Equal(t, ' ', ToGlyph(0))
	assert.Equal(t, '=', ToGlyph(128))
}

func TestGlyphForPixelUsesMean(t *testing.T) {
	// (255+0+0)/3 = 85 -> index 3
	assert.Equal(t, '-', GlyphForPixel(RGB{R: 255}))
	assert.Equal(t, '@', GlyphForPixel(White))
	assert.Equal(t, ' ', GlyphForPixel(RGB{}))
}

func TestToBrightness(t *testing.T) {
	want := []uint8{0, 29, 57, 85, 114, 142, 170, 199, 227, 255}
	for i, w := range want {
		assert.Equal(t, w, ToBrightness(i), "ToBrightness(%d)", i)
	}
	assert.Equal(t, uint8(0), ToBrightness(-1))
	assert.Equal(t, uint8(255), ToBrightness(42))
}

func TestBrightnessRoundTrip(t *testing.T) {
	for i := 0; i < PaletteSize; i++ {
		assert.Equal(t, i, GlyphIndex(float64(ToBrightness(i))), "index %d", i)
	}
}

func TestPixelForGlyph(t *testing.T) {
	for i, r := range Palette {
		assert.Equal(t, Gray(ToBrightness(i)), PixelForGlyph(r), "glyph %q", r)
	}

	for _, r := range []rune{'x', '\t', '\r', 'é', '█', 0} {
		assert.Equal(t, White, PixelForGlyph(r), "glyph %q", r)
	}
}

func TestPaletteIndex(t *testing.T) {
	idx, ok := PaletteIndex('#')
	assert.True(t, ok)
	assert.Equal(t, 7, idx)

	_, ok = PaletteIndex('A')
	assert.False(t, ok)
}
