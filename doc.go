// Package kuwahara implements the Kuwahara filter, an edge-preserving
// smoothing filter for raster images.
//
// # Overview
//
// For every output pixel the filter looks at the four (radius+1)x(radius+1)
// windows that have a corner on that pixel, picks the one with the lowest
// color variance, and replaces the pixel with that window's mean color.
// A window that straddles an edge has a high variance and loses to one
// lying entirely on one side, so edges stay sharp while flat regions are
// smoothed.
//
// # Quick Start
//
//	import "github.com/gogpu/kuwahara"
//
//	pm := kuwahara.FromImage(img)
//	if err := kuwahara.Apply(pm, 7); err != nil {
//	    return err
//	}
//	out := pm.ToImage()
//
// # Semantics
//
// Window means are truncated (not rounded) to 8 bits, and the variance is
// measured against the truncated mean. The variance is one scalar: the sum
// of the population variances of the red, green, blue and alpha channels.
// When two quadrants have exactly equal variance the priority is top-left,
// top-right, bottom-left, bottom-right.
//
// Images narrower or shorter than 2*radius+1 are rejected with a
// *FilterError wrapping ErrDimensionTooSmall before any pixel is written.
//
// # Performance
//
// Every window is computed exactly once and shared by the up to four
// pixels that use it. The default MethodSliding gathers window sums with
// running column sums, so the cost per window does not grow with the
// radius. WithWorkers spreads both passes across goroutines; the output is
// identical to a sequential run.
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive debug
// records with per-invocation timings.
package kuwahara
