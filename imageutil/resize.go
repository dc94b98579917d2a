package imageutil

import (
	"fmt"
	"image"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom for high-quality downscaling.
	// This is the closest equivalent to OpenCV's INTER_AREA.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	// Equivalent to OpenCV's INTER_LINEAR.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest

	// InterpolationBox averages every source pixel covered by a
	// destination pixel.
	InterpolationBox
)

var interpolationNames = map[Interpolation]string{
	InterpolationArea:    "area",
	InterpolationLinear:  "linear",
	InterpolationNearest: "nearest",
	InterpolationBox:     "box",
}

func (i Interpolation) String() string {
	if s, ok := interpolationNames[i]; ok {
		return s
	}
	return fmt.Sprintf("Interpolation(%d)", int(i))
}

// ParseInterpolation returns the interpolation named s.
func ParseInterpolation(s string) (Interpolation, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, v := range interpolationNames {
		if v == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown interpolation %q (options are area, linear, nearest or box)", s)
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	if width <= 0 || height <= 0 || img.Bounds().Empty() {
		return NewRGBAImage(max(width, 0), max(height, 0))
	}

	if interp == InterpolationBox {
		return &RGBAImage{RGBA: transform.Resize(img.RGBA, width, height, transform.Box)}
	}

	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)

	var scaler draw.Scaler
	switch interp {
	case InterpolationArea:
		// CatmullRom provides high quality for both up and down scaling
		scaler = draw.CatmullRom
	case InterpolationLinear:
		scaler = draw.BiLinear
	case InterpolationNearest:
		scaler = draw.NearestNeighbor
	default:
		scaler = draw.BiLinear
	}

	scaler.Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}
