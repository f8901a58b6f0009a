package kuwahara

import (
	"image/color"
	"math/rand/v2"
)

// Test helper functions shared across package tests.

// newUniformPixmap creates a pixmap filled with c.
func newUniformPixmap(w, h int, c color.NRGBA) *Pixmap {
	pm := NewPixmap(w, h)
	pm.Fill(c)
	return pm
}

// newRandomPixmap creates a pixmap of deterministic pseudo-random pixels.
func newRandomPixmap(w, h int, seed uint64) *Pixmap {
	rng := rand.New(rand.NewPCG(seed, ^seed))
	pm := NewPixmap(w, h)
	for i := range pm.data {
		pm.data[i] = uint8(rng.UintN(256))
	}
	return pm
}

// equalPixmaps reports whether a and b have identical size and bytes.
func equalPixmaps(a, b *Pixmap) bool {
	if a.width != b.width || a.height != b.height {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}
