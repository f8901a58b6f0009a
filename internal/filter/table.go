package filter

import "fmt"

// Method selects how BuildTable gathers window sums.
// All methods produce bit-identical tables.
type Method uint8

const (
	// MethodSliding keeps running column sums and slides them across each
	// anchor row, costing O(1) amortized per anchor.
	MethodSliding Method = iota

	// MethodDirect calls ComputeWindow for every anchor, costing
	// O((radius+1)²) per anchor. It is the reference implementation.
	MethodDirect
)

// String returns the method name as accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case MethodSliding:
		return "sliding"
	case MethodDirect:
		return "direct"
	default:
		return fmt.Sprintf("Method(%d)", uint8(m))
	}
}

// ParseMethod converts a method name to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "sliding":
		return MethodSliding, nil
	case "direct":
		return MethodDirect, nil
	default:
		return 0, fmt.Errorf("filter: unknown method %q", s)
	}
}

// Runner splits the index range [0, n) into blocks and calls fn for each.
// ParallelFor must not return before every call to fn has returned.
type Runner interface {
	ParallelFor(n int, fn func(start, end int))
}

// Sequential is a Runner that processes the whole range on the calling
// goroutine.
type Sequential struct{}

// ParallelFor calls fn(0, n) when n is positive.
func (Sequential) ParallelFor(n int, fn func(start, end int)) {
	if n > 0 {
		fn(0, n)
	}
}

// Table stores the Window of every anchor (x, y) with
// 0 <= x < width-radius and 0 <= y < height-radius.
//
// Each slot is written by exactly one Runner task during BuildTable and is
// read-only afterwards.
type Table struct {
	cols    int
	rows    int
	size    int
	entries []Window
}

// BuildTable computes the statistics of every window of side radius+1 in
// buf. It returns after all slots are filled.
//
// The caller must ensure radius >= 0; an image smaller than the window
// yields an empty table.
func BuildTable(buf Buffer, radius int, method Method, run Runner) *Table {
	t := &Table{
		cols: max(buf.Width-radius, 0),
		rows: max(buf.Height-radius, 0),
		size: radius + 1,
	}
	if t.cols == 0 || t.rows == 0 {
		return t
	}
	t.entries = make([]Window, t.cols*t.rows)

	run.ParallelFor(t.rows, func(start, end int) {
		if method == MethodDirect {
			t.fillDirect(buf, start, end)
		} else {
			t.fillSliding(buf, start, end)
		}
	})
	return t
}

// Cols returns the number of anchor columns (width - radius).
func (t *Table) Cols() int { return t.cols }

// Rows returns the number of anchor rows (height - radius).
func (t *Table) Rows() int { return t.rows }

// Radius returns the radius the table was built for.
func (t *Table) Radius() int { return t.size - 1 }

// At returns the Window anchored at (x, y). It panics if the anchor is
// outside the table.
func (t *Table) At(x, y int) Window {
	return t.entries[t.index(x, y)]
}

func (t *Table) index(x, y int) int {
	if x < 0 || x >= t.cols || y < 0 || y >= t.rows {
		panic(fmt.Sprintf("filter: anchor (%d, %d) outside %dx%d table", x, y, t.cols, t.rows))
	}
	return y*t.cols + x
}

// fillDirect computes anchor rows [start, end) one window at a time.
func (t *Table) fillDirect(buf Buffer, start, end int) {
	for x, y := range CoordsRows(t.cols, start, end) {
		t.entries[y*t.cols+x] = ComputeWindow(buf, x, y, t.size)
	}
}

// fillSliding computes anchor rows [start, end) from column sums.
// col[x] holds the sums of pixel column x over the size rows starting at
// the current anchor row.
func (t *Table) fillSliding(buf Buffer, start, end int) {
	size := t.size
	col := make([]channelSums, buf.Width)

	for dy := range size {
		addRow(col, buf, start+dy)
	}

	for y := start; y < end; y++ {
		if y > start {
			subRow(col, buf, y-1)
			addRow(col, buf, y+size-1)
		}

		var s channelSums
		for x := range size {
			s.plus(&col[x])
		}
		row := t.entries[y*t.cols : (y+1)*t.cols]
		row[0] = s.window(size)

		for x := 1; x < t.cols; x++ {
			s.minus(&col[x-1])
			s.plus(&col[x+size-1])
			row[x] = s.window(size)
		}
	}
}

// addRow adds pixel row y of buf into the column sums.
func addRow(col []channelSums, buf Buffer, y int) {
	pix := buf.Pix[buf.offset(0, y):buf.offset(0, y+1)]
	for x := range col {
		col[x].add(pix[x*4 : x*4+4])
	}
}

// subRow removes pixel row y of buf from the column sums.
func subRow(col []channelSums, buf Buffer, y int) {
	pix := buf.Pix[buf.offset(0, y):buf.offset(0, y+1)]
	for x := range col {
		for c := range 4 {
			v := uint64(pix[x*4+c])
			col[x].sum[c] -= v
			col[x].sq[c] -= v * v
		}
	}
}

func (s *channelSums) plus(o *channelSums) {
	for c := range 4 {
		s.sum[c] += o.sum[c]
		s.sq[c] += o.sq[c]
	}
}

func (s *channelSums) minus(o *channelSums) {
	for c := range 4 {
		s.sum[c] -= o.sum[c]
		s.sq[c] -= o.sq[c]
	}
}
