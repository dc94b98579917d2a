package img2ascii

import (
	"bytes"
	"fmt"

	"github.com/wbrown/img2ascii/imageutil"
)

// RasterCodec turns image container bytes into bitmaps and back.
type RasterCodec interface {
	Decode(data []byte, mime string) (Bitmap, error)
	Encode(b Bitmap, mime string) ([]byte, error)
}

// NativeCodec is the RasterCodec built on the Go image packages.
//
// Decode sniffs the container from the data itself, so mime is only a
// hint; Encode needs one of the MIME types imageutil.Encode writes.
type NativeCodec struct{}

// Decode reads a PNG, JPEG, GIF, BMP, TIFF, WEBP or ICO image.
func (NativeCodec) Decode(data []byte, mime string) (Bitmap, error) {
	img, _, err := imageutil.Decode(bytes.NewReader(data))
	if err != nil {
		return Bitmap{}, err
	}
	return bitmapFromRGBA(img), nil
}

// Encode writes b as a PNG, JPEG, GIF, BMP or TIFF image.
func (NativeCodec) Encode(b Bitmap, mime string) ([]byte, error) {
	var buf bytes.Buffer
	if err := imageutil.Encode(&buf, b.Image().RGBA, mime); err != nil {
		return nil, fmt.Errorf("encoding %s: %w", mime, err)
	}
	return buf.Bytes(), nil
}
