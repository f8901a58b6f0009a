package filter

// Buffer is a view of a tightly packed RGBA8 pixel grid.
// Pix holds Width*Height*4 bytes, row-major, with no row padding.
type Buffer struct {
	Pix    []uint8
	Width  int
	Height int
}

// offset returns the index of the red byte of pixel (x, y).
func (b Buffer) offset(x, y int) int {
	return (y*b.Width + x) * 4
}

// set writes the four channels of pixel (x, y).
func (b Buffer) set(x, y int, r, g, bl, a uint8) {
	i := b.offset(x, y)
	b.Pix[i+0] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
	b.Pix[i+3] = a
}
