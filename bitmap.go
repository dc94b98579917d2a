package img2ascii

import (
	"image"

	"github.com/wbrown/img2ascii/imageutil"
)

// Bitmap is a row-major grid of RGB pixels. It is the common
// representation every conversion passes through: raster containers and
// glyph art are both decoded into a Bitmap and encoded from one.
//
// A Bitmap is a plain value. Stages hand it on rather than share it; use
// Clone when an independent copy is needed.
type Bitmap struct {
	Width  int
	Height int
	Pix    []RGB
}

// NewBitmap returns a black bitmap of the given size. Negative sizes are
// treated as zero.
func NewBitmap(width, height int) Bitmap {
	width, height = max(width, 0), max(height, 0)
	return Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]RGB, width*height),
	}
}

// Empty reports whether the bitmap has no pixels.
func (b Bitmap) Empty() bool {
	return b.Width == 0 || b.Height == 0
}

// At returns the pixel at (x, y).
func (b Bitmap) At(x, y int) RGB {
	return b.Pix[y*b.Width+x]
}

// Set sets the pixel at (x, y).
func (b *Bitmap) Set(x, y int, c RGB) {
	b.Pix[y*b.Width+x] = c
}

// Row returns the pixels of row y. The slice aliases the bitmap.
func (b Bitmap) Row(y int) []RGB {
	return b.Pix[y*b.Width : (y+1)*b.Width]
}

// Clone returns a deep copy of the bitmap.
func (b Bitmap) Clone() Bitmap {
	c := Bitmap{Width: b.Width, Height: b.Height, Pix: make([]RGB, len(b.Pix))}
	copy(c.Pix, b.Pix)
	return c
}

// Equal reports whether two bitmaps have the same size and pixels.
func (b Bitmap) Equal(o Bitmap) bool {
	if b.Width != o.Width || b.Height != o.Height || len(b.Pix) != len(o.Pix) {
		return false
	}
	for i := range b.Pix {
		if b.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}

// BitmapFromImage copies any image into a Bitmap. Alpha is ignored.
func BitmapFromImage(img image.Image) Bitmap {
	bounds := img.Bounds()
	b := NewBitmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			b.Pix[y*b.Width+x] = imageutil.RGBFromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return b
}

// bitmapFromRGBA copies an RGBAImage without going through color.Color.
func bitmapFromRGBA(img *imageutil.RGBAImage) Bitmap {
	b := NewBitmap(img.Width(), img.Height())
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			b.Pix[y*b.Width+x] = img.GetRGB(x, y)
		}
	}
	return b
}

// Image returns the bitmap as an opaque RGBA image.
func (b Bitmap) Image() *imageutil.RGBAImage {
	img := imageutil.NewRGBAImage(b.Width, b.Height)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			img.SetRGB(x, y, b.Pix[y*b.Width+x])
		}
	}
	return img
}
