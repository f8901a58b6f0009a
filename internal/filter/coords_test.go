package filter

import "testing"

func TestCoordsRowMajor(t *testing.T) {
	var got [][2]int
	for x, y := range Coords(3, 2) {
		got = append(got, [2]int{x, y})
	}

	want := [][2]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("coord[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCoordsEmpty(t *testing.T) {
	tests := []struct {
		name       string
		maxX, maxY int
	}{
		{"zero width", 0, 5},
		{"zero height", 5, 0},
		{"both zero", 0, 0},
		{"negative", -1, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for x, y := range Coords(tt.maxX, tt.maxY) {
				t.Fatalf("unexpected coord (%d, %d)", x, y)
			}
		})
	}
}

func TestCoordsRestartable(t *testing.T) {
	seq := Coords(4, 4)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}

	if first, second := count(), count(); first != 16 || second != 16 {
		t.Errorf("counts = %d, %d, want 16, 16", first, second)
	}
}

func TestCoordsEarlyBreak(t *testing.T) {
	n := 0
	for x, y := range Coords(10, 10) {
		n++
		if x == 2 && y == 1 {
			break
		}
	}
	if n != 13 {
		t.Errorf("visited %d coords before break, want 13", n)
	}
}

func TestCoordsRows(t *testing.T) {
	var ys []int
	for x, y := range CoordsRows(2, 3, 5) {
		if x == 0 {
			ys = append(ys, y)
		}
	}
	if len(ys) != 2 || ys[0] != 3 || ys[1] != 4 {
		t.Errorf("rows = %v, want [3 4]", ys)
	}
}
