// Package filter implements the Kuwahara edge-preserving smoothing filter
// on raw RGBA8 buffers.
//
// The filter runs in two strictly ordered passes:
//  1. Precompute: BuildTable computes the mean color and combined variance
//     of every (radius+1)x(radius+1) window exactly once.
//  2. Compose: Compose replaces each pixel with the mean of the
//     lowest-variance window among the (up to) four windows that have a
//     corner on that pixel.
//
// Compose never reads source pixels, so the destination may alias the
// source. Both passes are split into disjoint row blocks by a Runner, and
// the return of the first pass is the barrier before the second begins.
package filter
