package filter

// Select returns the Window whose mean replaces output pixel (x, y).
//
// The candidates are the four windows with a corner on (x, y):
//
//	top-left     anchor (x-r, y-r)   valid if x >= r and y >= r
//	top-right    anchor (x,   y-r)   valid if x < cols and y >= r
//	bottom-left  anchor (x-r, y)     valid if x >= r and y < rows
//	bottom-right anchor (x,   y)     valid if x < cols and y < rows
//
// They are reduced pairwise as better(better(tl, tr), better(bl, br)), so
// on equal variance the priority is top-left, top-right, bottom-left,
// bottom-right. The second result is false when no quadrant is valid.
func (t *Table) Select(x, y int) (Window, bool) {
	r := t.size - 1

	var tl, tr, bl, br *Window
	if x >= r && y >= r {
		tl = &t.entries[t.index(x-r, y-r)]
	}
	if x < t.cols && y >= r {
		tr = &t.entries[t.index(x, y-r)]
	}
	if x >= r && y < t.rows {
		bl = &t.entries[t.index(x-r, y)]
	}
	if x < t.cols && y < t.rows {
		br = &t.entries[t.index(x, y)]
	}

	best := better(better(tl, tr), better(bl, br))
	if best == nil {
		return Window{}, false
	}
	return *best, true
}

// better returns p unless q is present with a strictly lower variance.
// Absent (nil) operands are skipped.
func better(p, q *Window) *Window {
	if p != nil && (q == nil || p.Variance <= q.Variance) {
		return p
	}
	return q
}

// Compose writes the selected window mean of every pixel into dst.
//
// Only t is read for selected pixels, so dst may share its storage with
// the buffer t was built from. A pixel with no valid quadrant keeps the
// color it has in src. src and dst must have equal dimensions.
func Compose(src, dst Buffer, t *Table, run Runner) {
	run.ParallelFor(dst.Height, func(start, end int) {
		for x, y := range CoordsRows(dst.Width, start, end) {
			w, ok := t.Select(x, y)
			if !ok {
				i := src.offset(x, y)
				copy(dst.Pix[i:i+4], src.Pix[i:i+4])
				continue
			}
			dst.set(x, y, w.R, w.G, w.B, w.A)
		}
	})
}
