package img2ascii

import (
	"errors"
	"fmt"
)

var (
	// ErrNotInitialized is returned by conversions on a Converter whose
	// Init has not been called.
	ErrNotInitialized = errors.New("converter not initialized")

	// ErrDecode wraps failures to read a raster container into a Bitmap.
	ErrDecode = errors.New("raster decode failed")

	// ErrEncode wraps failures to write a Bitmap as a raster container.
	ErrEncode = errors.New("raster encode failed")

	// ErrUnsupportedFormat is returned for formats a conversion cannot
	// read or write.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// ItemError reports which input of a batch failed.
type ItemError struct {
	Index int
	Name  string
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("converting %q (item %d): %v", e.Name, e.Index, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}
