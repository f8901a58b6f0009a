package kuwahara

import (
	"image"
	"math"
	"time"

	"github.com/gogpu/kuwahara/internal/filter"
)

// Filter applies the Kuwahara filter with a fixed radius.
//
// Each window has side Radius+1. A Filter is immutable after creation and
// safe for concurrent use on different destinations.
type Filter struct {
	// Radius is the window radius; windows are (Radius+1)x(Radius+1).
	Radius int

	opts options
}

// NewFilter creates a Kuwahara filter with the given radius.
func NewFilter(radius int, opts ...Option) *Filter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Filter{Radius: radius, opts: o}
}

// MinSize returns the smallest width and height the filter accepts for
// radius: 2*radius+1. It saturates at math.MaxInt for radii whose minimum
// does not fit in an int.
func MinSize(radius int) int {
	if radius > (math.MaxInt-1)/2 {
		return math.MaxInt
	}
	return 2*radius + 1
}

// fits reports whether an n-pixel dimension holds a full 2*radius+1 span.
func fits(n, radius int) bool {
	return n > 0 && radius <= (n-1)/2
}

// Apply filters src and writes the result to dst.
//
// dst must have the same dimensions as src and may be src itself. On error
// nothing has been written to dst.
//
// The operation runs in two passes separated by a barrier:
//  1. Precompute the mean and variance of every window once.
//  2. For each pixel, write the mean of its lowest-variance quadrant.
func (f *Filter) Apply(src, dst *Pixmap) error {
	if err := f.validate(src, dst); err != nil {
		return err
	}

	run, workers, release := f.opts.runner()
	defer release()

	in := src.buffer()
	out := dst.buffer()

	start := time.Now()
	table := filter.BuildTable(in, f.Radius, filter.Method(f.opts.method), run)
	built := time.Now()
	filter.Compose(in, out, table, run)

	Logger().Debug("kuwahara: filter applied",
		"width", src.width,
		"height", src.height,
		"radius", f.Radius,
		"workers", workers,
		"method", f.opts.method.String(),
		"windows", table.Cols()*table.Rows(),
		"precompute", built.Sub(start),
		"compose", time.Since(built),
	)
	return nil
}

// validate checks every precondition before any work is done.
func (f *Filter) validate(src, dst *Pixmap) error {
	if src == nil || dst == nil {
		e := &FilterError{Radius: f.Radius, Err: ErrNilPixmap}
		if src != nil {
			e.Width, e.Height = src.width, src.height
		}
		return e
	}

	fail := func(err error) error {
		return &FilterError{Width: src.width, Height: src.height, Radius: f.Radius, Err: err}
	}
	if f.Radius < 0 {
		return fail(ErrNegativeRadius)
	}
	if dst.width != src.width || dst.height != src.height {
		return fail(ErrSizeMismatch)
	}
	if !fits(src.width, f.Radius) || !fits(src.height, f.Radius) {
		return fail(ErrDimensionTooSmall)
	}
	return nil
}

// Apply filters p in place with the given radius.
//
// It fails with a *FilterError wrapping ErrDimensionTooSmall, without
// modifying p, when either dimension is below 2*radius+1.
func Apply(p *Pixmap, radius int, opts ...Option) error {
	return NewFilter(radius, opts...).Apply(p, p)
}

// ApplyImage filters img and returns the result as a new image.NRGBA.
// img is not modified.
func ApplyImage(img image.Image, radius int, opts ...Option) (*image.NRGBA, error) {
	if img == nil {
		return nil, &FilterError{Radius: radius, Err: ErrNilPixmap}
	}

	pm := FromImage(img)
	if err := Apply(pm, radius, opts...); err != nil {
		return nil, err
	}
	return pm.ToImage(), nil
}
