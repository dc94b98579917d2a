package img2ascii

import (
	"github.com/wbrown/img2ascii/imageutil"
)

// RGB represents a pixel with 8-bit red, green and blue channels.
type RGB = imageutil.RGB

// White is the pixel used for every cell the decoder cannot interpret.
var White = imageutil.White

// Gray returns the neutral pixel with all channels set to v.
func Gray(v uint8) RGB {
	return RGB{R: v, G: v, B: v}
}

// clampChannel limits a parsed color component to the 8-bit range.
func clampChannel(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
