package filter

import "iter"

// Coords returns the coordinates (x, y) with 0 <= x < maxX and
// 0 <= y < maxY in row-major order. The sequence is empty when either
// bound is zero or negative and may be ranged over any number of times.
func Coords(maxX, maxY int) iter.Seq2[int, int] {
	return CoordsRows(maxX, 0, maxY)
}

// CoordsRows is like Coords but restricted to rows [minY, maxY).
// Parallel passes use it to hand each worker a contiguous block of rows.
func CoordsRows(maxX, minY, maxY int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		if maxX <= 0 {
			return
		}
		for y := minY; y < maxY; y++ {
			for x := range maxX {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}
