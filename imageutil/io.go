package imageutil

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/biessek/golang-ico" // Register ICO decoder
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // Register WEBP decoder
)

// MaxPixels is the largest image, in pixels, Decode accepts.
const MaxPixels = 30000000

// Container MIME types understood by Encode and MIMEForExt.
const (
	MIMEPNG  = "image/png"
	MIMEJPEG = "image/jpeg"
	MIMEGIF  = "image/gif"
	MIMEBMP  = "image/bmp"
	MIMETIFF = "image/tiff"
	MIMEWEBP = "image/webp"
	MIMEICO  = "image/x-icon"
)

var (
	// ErrTooLarge is returned by Decode for images above MaxPixels.
	ErrTooLarge = errors.New("image is too big")

	// ErrUnsupportedMIME is returned by Encode for containers it cannot
	// write.
	ErrUnsupportedMIME = errors.New("unsupported image type")
)

// Decode reads a complete image container from r and returns it with
// the name of the detected format.
// Supports PNG, JPEG, GIF, BMP, TIFF, WEBP and ICO.
func Decode(r io.Reader) (*RGBAImage, string, error) {
	// The format and size come first, hence the two passes.
	var buf bytes.Buffer
	tee := io.TeeReader(r, &buf)
	c, format, err := image.DecodeConfig(tee)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}

	if c.Width*c.Height > MaxPixels {
		return nil, format, ErrTooLarge
	}

	img, _, err := image.Decode(io.MultiReader(&buf, r))
	if err != nil {
		return nil, format, fmt.Errorf("failed to decode image: %w", err)
	}

	return RGBAImageFromImage(img), format, nil
}

// Encode writes img to w in the container named by mime.
func Encode(w io.Writer, img image.Image, mime string) error {
	switch strings.ToLower(mime) {
	case MIMEPNG:
		return png.Encode(w, img)
	case MIMEJPEG, "image/jpg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case MIMEGIF:
		return gif.Encode(w, img, nil)
	case MIMEBMP:
		return bmp.Encode(w, img)
	case MIMETIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedMIME, mime)
}

// MIMEForExt returns the container MIME type for a file extension, with
// or without its leading dot. Unknown extensions map to PNG.
func MIMEForExt(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "jpg", "jpeg":
		return MIMEJPEG
	case "gif":
		return MIMEGIF
	case "bmp":
		return MIMEBMP
	case "tif", "tiff":
		return MIMETIFF
	}
	return MIMEPNG
}

// LoadImage loads an image from the specified path.
func LoadImage(path string) (*RGBAImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := Decode(f)
	return img, err
}

// SaveImage saves an image to the specified path.
// Format is determined by file extension (png, jpg/jpeg, gif, bmp, tiff).
func SaveImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Encode(f, img, MIMEForExt(filepath.Ext(path))); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
