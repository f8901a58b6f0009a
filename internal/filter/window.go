package filter

// Window holds the statistics of one (radius+1)x(radius+1) block of pixels:
// the per-channel mean truncated to 8 bits and a single variance that sums
// the contributions of all four channels.
type Window struct {
	R, G, B, A uint8
	Variance   float64
}

// channelSums accumulates Σv and Σv² for the four channels of a window.
// uint64 holds 255²·area for any image that fits in memory.
type channelSums struct {
	sum [4]uint64
	sq  [4]uint64
}

// add accumulates one pixel.
func (s *channelSums) add(px []uint8) {
	for c := range 4 {
		v := uint64(px[c])
		s.sum[c] += v
		s.sq[c] += v * v
	}
}

// window converts the sums over a size x size block to a Window.
//
// Means are truncated, and the deviation is taken from the truncated mean
// m rather than the exact one. Σ(v-m)² is evaluated as Σv² + n·m² - 2mΣv,
// which is exact in integers, so the result does not depend on how the
// sums were gathered.
func (s *channelSums) window(size int) Window {
	area := uint64(size) * uint64(size)
	side := float64(size)

	var mean [4]uint8
	var variance [4]float64
	for c := range 4 {
		m := s.sum[c] / area
		mean[c] = uint8(m)
		dev := s.sq[c] + area*m*m - 2*m*s.sum[c]
		variance[c] = float64(dev) / side / side
	}

	return Window{
		R:        mean[0],
		G:        mean[1],
		B:        mean[2],
		A:        mean[3],
		Variance: variance[0] + variance[1] + variance[2] + variance[3],
	}
}

// ComputeWindow returns the statistics of the size x size window whose
// top-left corner is (x, y).
//
// The window must lie inside buf: x+size <= buf.Width and
// y+size <= buf.Height. Violating this is a programming error and panics
// with an index out of range.
func ComputeWindow(buf Buffer, x, y, size int) Window {
	var s channelSums
	for j, i := range Coords(size, size) {
		off := buf.offset(x+j, y+i)
		s.add(buf.Pix[off : off+4])
	}
	return s.window(size)
}
