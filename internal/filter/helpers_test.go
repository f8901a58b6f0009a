package filter

import "math/rand/v2"

// Test helper functions shared across filter tests.

// newTestBuffer creates a width x height buffer filled with one color.
func newTestBuffer(width, height int, r, g, b, a uint8) Buffer {
	buf := Buffer{Pix: make([]uint8, width*height*4), Width: width, Height: height}
	for x, y := range Coords(width, height) {
		buf.set(x, y, r, g, b, a)
	}
	return buf
}

// randomBuffer creates a buffer of deterministic pseudo-random pixels.
func randomBuffer(width, height int, seed uint64) Buffer {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	buf := Buffer{Pix: make([]uint8, width*height*4), Width: width, Height: height}
	for i := range buf.Pix {
		buf.Pix[i] = uint8(rng.UintN(256))
	}
	return buf
}

// redBuffer builds a buffer from a grid of red values; green and blue are
// zero and alpha is opaque, so only the red channel contributes variance.
func redBuffer(rows [][]uint8) Buffer {
	height := len(rows)
	width := len(rows[0])
	buf := Buffer{Pix: make([]uint8, width*height*4), Width: width, Height: height}
	for y, row := range rows {
		for x, v := range row {
			buf.set(x, y, v, 0, 0, 255)
		}
	}
	return buf
}

// pixel returns the four channels of (x, y).
func (b Buffer) pixel(x, y int) [4]uint8 {
	i := b.offset(x, y)
	return [4]uint8{b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]}
}

// chunkRunner splits ranges into fixed-size blocks and runs them in reverse
// order, which exposes any dependency between blocks.
type chunkRunner struct {
	chunk int
}

func (c chunkRunner) ParallelFor(n int, fn func(start, end int)) {
	var blocks [][2]int
	for start := 0; start < n; start += c.chunk {
		blocks = append(blocks, [2]int{start, min(start+c.chunk, n)})
	}
	for i := len(blocks) - 1; i >= 0; i-- {
		fn(blocks[i][0], blocks[i][1])
	}
}
