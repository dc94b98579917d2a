package img2ascii

import (
	"math"

	"github.com/wbrown/img2ascii/imageutil"
)

// Size of the box the limited formats are resampled into.
const (
	LimitedWidth  = 100
	LimitedHeight = 100
)

// FitSize scales width×height by the single ratio
// min(maxW/width, maxH/height) and floors the result. The ratio is applied
// even when it is above one, so small inputs grow to fill the box.
// Degenerate sizes give 0×0.
func FitSize(width, height, maxW, maxH int) (int, int) {
	if width <= 0 || height <= 0 || maxW <= 0 || maxH <= 0 {
		return 0, 0
	}
	ratio := math.Min(float64(maxW)/float64(width), float64(maxH)/float64(height))
	return int(math.Floor(float64(width) * ratio)), int(math.Floor(float64(height) * ratio))
}

// Resample rescales b to FitSize(b.Width, b.Height, maxW, maxH) using the
// given kernel, keeping the aspect ratio. A bitmap that already has the
// target size comes back as an unchanged copy.
func Resample(b Bitmap, maxW, maxH int, interp imageutil.Interpolation) Bitmap {
	w, h := FitSize(b.Width, b.Height, maxW, maxH)
	switch {
	case w == b.Width && h == b.Height:
		return b.Clone()
	case w == 0 || h == 0:
		return NewBitmap(w, h)
	}
	return bitmapFromRGBA(imageutil.Resize(b.Image(), w, h, interp))
}
