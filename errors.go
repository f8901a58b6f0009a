package kuwahara

import (
	"errors"
	"fmt"
)

// Filter errors. A *FilterError wraps exactly one of these; test with
// errors.Is.
var (
	// ErrDimensionTooSmall is returned when the image is narrower or
	// shorter than 2*radius+1 pixels.
	ErrDimensionTooSmall = errors.New("kuwahara: image too small for radius")

	// ErrNegativeRadius is returned when the radius is below zero.
	ErrNegativeRadius = errors.New("kuwahara: negative radius")

	// ErrNilPixmap is returned when a source or destination is nil.
	ErrNilPixmap = errors.New("kuwahara: nil pixmap")

	// ErrSizeMismatch is returned when the destination dimensions differ
	// from the source dimensions.
	ErrSizeMismatch = errors.New("kuwahara: destination size differs from source")
)

// FilterError describes a rejected filter invocation. It is always
// returned before any pixel is written.
type FilterError struct {
	// Width and Height are the source dimensions (zero for a nil source).
	Width, Height int

	// Radius is the requested radius.
	Radius int

	// Err is the sentinel describing the failure.
	Err error
}

// Error implements the error interface.
func (e *FilterError) Error() string {
	if errors.Is(e.Err, ErrDimensionTooSmall) {
		need := MinSize(e.Radius)
		return fmt.Sprintf("%v: %dx%d image, radius %d needs at least %dx%d",
			e.Err, e.Width, e.Height, e.Radius, need, need)
	}
	return fmt.Sprintf("%v (image %dx%d, radius %d)", e.Err, e.Width, e.Height, e.Radius)
}

// Unwrap returns the underlying sentinel error.
func (e *FilterError) Unwrap() error {
	return e.Err
}
