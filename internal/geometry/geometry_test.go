package geometry

import (
	"math"
	"testing"
)

func TestDock_Example(t *testing.T) {
	screen := Screen{W: 1920, H: 1080}
	got := Dock(screen, Placement{ScaleX: 0.5, ScaleY: 0.25, BottomMargin: 10})

	want := Rect{X: 480, Y: 800, W: 960, H: 270}
	if got != want {
		t.Errorf("Dock() = %+v; want %+v", got, want)
	}
}

func TestDock_Properties(t *testing.T) {
	screens := []Screen{
		{X: 0, Y: 0, W: 1920, H: 1080},
		{X: 1920, Y: 0, W: 2560, H: 1440},
		{X: -1280, Y: 200, W: 1280, H: 1024},
		{X: 0, Y: 0, W: 1366, H: 768},
	}
	placements := []Placement{
		{ScaleX: 0.5, ScaleY: 0.25},
		{ScaleX: 1, ScaleY: 1},
		{ScaleX: 0.333, ScaleY: 0.1, BottomMargin: 48},
		{ScaleX: 0.77, ScaleY: 0.61, BottomMargin: -20, SideOffset: 150},
		{ScaleX: 0.01, ScaleY: 0.99, SideOffset: -300},
	}

	for _, s := range screens {
		for _, p := range placements {
			r := Dock(s, p)

			if want := int(math.Floor(float64(s.W) * p.ScaleX)); r.W != want {
				t.Errorf("%+v %+v: width = %d; want %d", s, p, r.W, want)
			}
			if want := int(math.Floor(float64(s.H) * p.ScaleY)); r.H != want {
				t.Errorf("%+v %+v: height = %d; want %d", s, p, r.H, want)
			}

			// Centered to within half a pixel before the side offset.
			center := float64(r.X-p.SideOffset) + float64(r.W)/2
			screenCenter := float64(s.X) + float64(s.W)/2
			if math.Abs(center-screenCenter) > 0.5 {
				t.Errorf("%+v %+v: center = %v; want %v", s, p, center, screenCenter)
			}

			if want := s.Y + s.H - p.BottomMargin; r.Bottom() != want {
				t.Errorf("%+v %+v: bottom = %d; want %d", s, p, r.Bottom(), want)
			}
		}
	}
}

func TestDock_NoClamping(t *testing.T) {
	screen := Screen{W: 1000, H: 1000}
	r := Dock(screen, Placement{ScaleX: 0.5, ScaleY: 0.5, BottomMargin: 2000, SideOffset: 5000})

	if r.X != 250+5000 {
		t.Errorf("Expected x pushed off-screen to %d, got %d", 5250, r.X)
	}
	if r.Y != 1000-500-2000 {
		t.Errorf("Expected y pushed off-screen to %d, got %d", -1500, r.Y)
	}
}

func TestPointArithmetic(t *testing.T) {
	a := Point{X: 10, Y: -4}
	b := Point{X: 3, Y: 6}

	if got := a.Sub(b); got != (Point{X: 7, Y: -10}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Sub(b).Add(b); got != a {
		t.Errorf("Sub then Add = %+v; want %+v", got, a)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{7, 2, 3},
		{6, 2, 3},
		{-7, 2, -4},
		{-6, 2, -3},
		{0, 2, 0},
	}

	for _, tc := range tests {
		if got := floorDiv(tc.a, tc.b); got != tc.want {
			t.Errorf("floorDiv(%d, %d) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
