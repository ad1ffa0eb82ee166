package wm

import "testing"

func TestRectangleContains(t *testing.T) {
	r := Rectangle{X: 20, Y: 0, Width: 5, Height: 5}

	cases := []struct {
		name string
		pos  Position
		want bool
	}{
		{"interior", Position{22, 2}, true},
		{"top-left corner", Position{20, 0}, true},
		{"right edge exclusive", Position{25, 2}, false},
		{"bottom edge exclusive", Position{22, 5}, false},
		{"last contained cell", Position{24, 4}, true},
		{"left of region", Position{19, 2}, false},
		{"above region", Position{22, -1}, false},
	}

	for _, tc := range cases {
		if got := r.Contains(tc.pos); got != tc.want {
			t.Errorf("%s: Contains(%v) = %v, want %v", tc.name, tc.pos, got, tc.want)
		}
	}
}

func TestNewRectangleClampsToMinimums(t *testing.T) {
	r := NewRectangle(5, 5, 1, 2, MinWindowWidth, MinWindowHeight)
	if r.Width != MinWindowWidth || r.Height != MinWindowHeight {
		t.Fatalf("expected %dx%d, got %dx%d", MinWindowWidth, MinWindowHeight, r.Width, r.Height)
	}

	r = NewRectangle(0, 0, 10, 10, MinWindowWidth, MinWindowHeight)
	if r.Width != 10 || r.Height != 10 {
		t.Fatalf("dimensions above minimum must be kept, got %dx%d", r.Width, r.Height)
	}
}

func TestCloseBoxHugsTopRightCorner(t *testing.T) {
	bounds := Rectangle{X: 20, Y: 0, Width: 5, Height: 5}
	box := DefaultMetrics().closeBoxFor(bounds)

	want := Rectangle{X: 23, Y: 0, Width: 2, Height: 2}
	if box != want {
		t.Fatalf("close box = %+v, want %+v", box, want)
	}
	if !box.Contains(Position{24, 0}) {
		t.Errorf("close box should contain its top-right interior")
	}
	if box.Contains(Position{22, 0}) {
		t.Errorf("close box should not reach left of the corner region")
	}
}

func TestCloseBoxLargerThanWindowIsClamped(t *testing.T) {
	m := Metrics{MinWidth: 4, MinHeight: 4, CloseBoxWidth: 10, CloseBoxHeight: 10}
	bounds := Rectangle{X: 0, Y: 0, Width: 4, Height: 4}

	box := m.closeBoxFor(bounds)
	if box.Width != 4 || box.Height != 4 {
		t.Fatalf("close box must not exceed window bounds, got %+v", box)
	}
	if box.X != 0 || box.Y != 0 {
		t.Fatalf("clamped close box should still anchor to the corner, got %+v", box)
	}
}

func TestCloseBoxZeroMetricsFallBack(t *testing.T) {
	m := Metrics{MinWidth: 4, MinHeight: 4}
	bounds := Rectangle{X: 0, Y: 0, Width: 10, Height: 10}

	box := m.closeBoxFor(bounds)
	if box.Width != DefaultCloseBoxWidth || box.Height != DefaultCloseBoxHeight {
		t.Fatalf("zero metrics should fall back to defaults, got %+v", box)
	}
}
