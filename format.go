package img2ascii

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/wbrown/img2ascii/imageutil"
)

// Kind tells raster containers and glyph art apart.
type Kind int

const (
	KindUnknown Kind = iota
	KindRaster
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindRaster:
		return "raster"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Mode selects how glyph art encodes a pixel.
type Mode int

const (
	// Grayscale quantizes each pixel to one of the palette glyphs.
	Grayscale Mode = iota
	// Color writes each pixel as a 24-bit color run.
	Color
)

func (m Mode) String() string {
	if m == Color {
		return "color"
	}
	return "grayscale"
}

// Bounds tells whether glyph art output is resampled into the limited box.
type Bounds int

const (
	Unbounded Bounds = iota
	Bounded
)

// Format describes one entry of the format registry.
type Format struct {
	Name      string
	Tag       string
	Extension string
	MIME      string
	// From and To tell whether the format is offered as a conversion
	// source and target.
	From bool
	To   bool

	Kind   Kind
	Mode   Mode
	Bounds Bounds
}

var (
	FormatPNG = Format{
		Name: "Portable Network Graphics", Tag: "png", Extension: "png",
		MIME: imageutil.MIMEPNG, From: true, To: true, Kind: KindRaster,
	}
	FormatJPEG = Format{
		Name: "JPEG", Tag: "jpeg", Extension: "jpg",
		MIME: imageutil.MIMEJPEG, From: true, To: true, Kind: KindRaster,
	}
	FormatGIF = Format{
		Name: "Graphics Interchange Format", Tag: "gif", Extension: "gif",
		MIME: imageutil.MIMEGIF, From: true, To: true, Kind: KindRaster,
	}
	FormatBMP = Format{
		Name: "Windows Bitmap", Tag: "bmp", Extension: "bmp",
		MIME: imageutil.MIMEBMP, From: true, To: true, Kind: KindRaster,
	}
	FormatTIFF = Format{
		Name: "Tagged Image File Format", Tag: "tiff", Extension: "tiff",
		MIME: imageutil.MIMETIFF, From: true, To: true, Kind: KindRaster,
	}
	FormatWEBP = Format{
		Name: "WebP", Tag: "webp", Extension: "webp",
		MIME: imageutil.MIMEWEBP, From: true, Kind: KindRaster,
	}
	FormatICO = Format{
		Name: "Windows Icon", Tag: "ico", Extension: "ico",
		MIME: imageutil.MIMEICO, From: true, Kind: KindRaster,
	}

	FormatText = Format{
		Name: "ascii", Tag: "textAscii", Extension: "txt",
		MIME: "text/plain", From: true, To: true,
		Kind: KindText, Mode: Grayscale, Bounds: Unbounded,
	}
	FormatTextColor = Format{
		Name: "asciiColored", Tag: "textColor", Extension: "txtColor",
		MIME: "text/x-colored-text", From: true, To: true,
		Kind: KindText, Mode: Color, Bounds: Unbounded,
	}
	FormatTextLimited = Format{
		Name: "ascii limited size", Tag: "textLimited", Extension: "txtLimited",
		MIME: "text/plain-limited", To: true,
		Kind: KindText, Mode: Grayscale, Bounds: Bounded,
	}
	FormatTextColorLimited = Format{
		Name: "asciiColored limited size", Tag: "textColorLimited", Extension: "txtColorLimited",
		MIME: "text/x-colored-text-limited", To: true,
		Kind: KindText, Mode: Color, Bounds: Bounded,
	}
)

var registry = []Format{
	FormatPNG,
	FormatText,
	FormatTextColor,
	FormatTextLimited,
	FormatTextColorLimited,
	FormatJPEG,
	FormatGIF,
	FormatBMP,
	FormatTIFF,
	FormatWEBP,
	FormatICO,
}

// Formats returns the format registry in display order.
func Formats() []Format {
	return append([]Format(nil), registry...)
}

// LookupFormat finds a format by tag, extension or MIME type, ignoring
// case. A leading dot on an extension is allowed.
func LookupFormat(s string) (Format, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), ".")
	for _, f := range registry {
		if strings.EqualFold(s, f.Tag) || strings.EqualFold(s, f.Extension) || strings.EqualFold(s, f.MIME) {
			return f, true
		}
	}
	switch strings.ToLower(s) {
	case "jpg":
		return FormatJPEG, true
	case "tif":
		return FormatTIFF, true
	}
	return Format{}, false
}

// coloredSuffix ends the base name OutputName gives color glyph art.
const coloredSuffix = "_colored"

// SniffTextFormat refines a glyph art format guessed from a file name.
// Grayscale text that holds a color run, or that is named the way
// OutputName names color output, is read as color glyph art. Other
// formats come back unchanged.
func SniffTextFormat(f Format, name string, data []byte) Format {
	if f.Kind != KindText || f.Mode == Color {
		return f
	}
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if bytes.Contains(data, []byte(ColorPrefix)) || strings.HasSuffix(base, coloredSuffix) {
		return FormatTextColor
	}
	return f
}

// OutputName derives the name of a converted file from its input name.
// Glyph art gets "_limited" and "_colored" suffixes as applicable and a
// ".txt" extension; raster outputs get the format's extension.
func OutputName(name string, to Format) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if to.Kind != KindText {
		return base + "." + to.Extension
	}
	if to.Bounds == Bounded {
		base += "_limited"
	}
	if to.Mode == Color {
		base += coloredSuffix
	}
	return base + ".txt"
}
