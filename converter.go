package img2ascii

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/wbrown/img2ascii/imageutil"
)

// File is one named input or output of a batch conversion.
type File struct {
	Name  string
	Bytes []byte
}

// Converter drives conversions between raster containers and glyph art.
// Every conversion goes through a Bitmap: the input is decoded into one,
// the output is encoded from it, so any pair of registry formats can be
// converted.
//
// A Converter must be initialized with Init before use. After Init it is
// safe for concurrent use.
type Converter struct {
	codec   RasterCodec
	logger  log.FieldLogger
	maxW    int
	maxH    int
	interp  imageutil.Interpolation
	workers int
	ready   bool
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// NewConverter creates a Converter with the given options.
// Default values: NativeCodec, the logrus standard logger, a 100×100
// limited box, bilinear resampling, one worker.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		maxW:    LimitedWidth,
		maxH:    LimitedHeight,
		interp:  imageutil.InterpolationLinear,
		workers: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithCodec sets the raster container codec.
func WithCodec(codec RasterCodec) ConverterOption {
	return func(c *Converter) {
		c.codec = codec
	}
}

// WithLogger sets the logger conversions report to.
func WithLogger(logger log.FieldLogger) ConverterOption {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithLimit sets the box the limited formats are resampled into.
func WithLimit(maxW, maxH int) ConverterOption {
	return func(c *Converter) {
		c.maxW, c.maxH = maxW, maxH
	}
}

// WithInterpolation sets the resampling kernel of the limited formats.
func WithInterpolation(interp imageutil.Interpolation) ConverterOption {
	return func(c *Converter) {
		c.interp = interp
	}
}

// WithWorkers sets how many batch items are converted at once.
func WithWorkers(n int) ConverterOption {
	return func(c *Converter) {
		c.workers = n
	}
}

// Init validates the configuration and readies the converter.
func (c *Converter) Init() error {
	if c.maxW <= 0 || c.maxH <= 0 {
		return fmt.Errorf("invalid limited size %dx%d", c.maxW, c.maxH)
	}
	if c.workers < 1 {
		return fmt.Errorf("invalid worker count %d", c.workers)
	}
	if c.codec == nil {
		c.codec = NativeCodec{}
	}
	if c.logger == nil {
		c.logger = log.StandardLogger()
	}
	c.ready = true
	return nil
}

// Ready reports whether Init has succeeded.
func (c *Converter) Ready() bool {
	return c.ready
}

// ToBitmap decodes one input of the given format.
func (c *Converter) ToBitmap(data []byte, from Format) (Bitmap, error) {
	if !c.ready {
		return Bitmap{}, ErrNotInitialized
	}

	switch from.Kind {
	case KindRaster:
		b, err := c.codec.Decode(data, from.MIME)
		if err != nil {
			return Bitmap{}, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return b, nil
	case KindText:
		return Decode(string(data), from.Mode), nil
	}
	return Bitmap{}, fmt.Errorf("%w: %q as input", ErrUnsupportedFormat, from.Tag)
}

// FromBitmap encodes a bitmap to the given format. Bounded glyph art
// formats resample the bitmap into the limited box first.
func (c *Converter) FromBitmap(b Bitmap, to Format) ([]byte, error) {
	if !c.ready {
		return nil, ErrNotInitialized
	}

	switch to.Kind {
	case KindRaster:
		data, err := c.codec.Encode(b, to.MIME)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncode, err)
		}
		return data, nil
	case KindText:
		if to.Bounds == Bounded {
			b = Resample(b, c.maxW, c.maxH, c.interp)
		}
		return []byte(Encode(b, to.Mode)), nil
	}
	return nil, fmt.Errorf("%w: %q as output", ErrUnsupportedFormat, to.Tag)
}

// Convert converts every file from one format to another. Outputs are
// returned in input order, named by OutputName.
//
// The first failing item stops the batch and is returned as an
// *ItemError. With more than one worker the remaining items are
// cancelled.
func (c *Converter) Convert(ctx context.Context, files []File, from, to Format) ([]File, error) {
	if !c.ready {
		return nil, ErrNotInitialized
	}

	out := make([]File, len(files))
	if c.workers == 1 {
		for i, f := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			res, err := c.convertOne(i, f, from, to)
			if err != nil {
				return nil, err
			}
			out[i] = res
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := c.convertOne(i, f, from, to)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Converter) convertOne(i int, f File, from, to Format) (File, error) {
	start := time.Now()
	logger := c.logger.WithFields(log.Fields{
		"file": f.Name,
		"from": from.Tag,
		"to":   to.Tag,
	})

	b, err := c.ToBitmap(f.Bytes, from)
	if err != nil {
		logger.WithError(err).Error("cannot read input")
		return File{}, &ItemError{Index: i, Name: f.Name, Err: err}
	}

	data, err := c.FromBitmap(b, to)
	if err != nil {
		logger.WithError(err).Error("cannot write output")
		return File{}, &ItemError{Index: i, Name: f.Name, Err: err}
	}

	logger.WithFields(log.Fields{
		"width":   b.Width,
		"height":  b.Height,
		"elapsed": time.Since(start),
	}).Debug("converted")

	return File{Name: OutputName(f.Name, to), Bytes: data}, nil
}
