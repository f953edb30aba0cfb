package core

import "testing"

func TestScaleFor(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		scaleX float64
	}{
		{"reference 1280x720", 1280, 720, 1280.0 / 50},
		{"wide window is height bound", 2560, 720, 1280.0 / 50},
		{"tall window is width bound", 640, 2000, 640.0 / 50},
		{"terminal 80x48", 80, 48, 80.0 / 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := ScaleFor(tc.w, tc.h)
			if !approx(s.X, tc.scaleX) {
				t.Errorf("ScaleFor().X = %v, expected %v", s.X, tc.scaleX)
			}
			if !approx(s.Y, tc.scaleX) {
				t.Errorf("ScaleFor().Y = %v, expected %v (uniform scale)", s.Y, tc.scaleX)
			}
		})
	}
}

func TestCoordinateSpaceZeroWindow(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {0, 720}, {1280, 0}, {-5, 10}} {
		c := NewCoordinateSpace(size[0], size[1])
		if !c.Degenerate() {
			t.Errorf("Degenerate() = false for %dx%d, expected true", size[0], size[1])
		}
		if s := c.Scale(); s.X != 0 || s.Y != 0 {
			t.Errorf("Scale() = %v for %dx%d, expected zero", s, size[0], size[1])
		}
		if _, ok := c.ToLogical(10, 10); ok {
			t.Errorf("ToLogical() ok for %dx%d, expected false", size[0], size[1])
		}
	}
}

func TestCoordinateSpaceRoundTrip(t *testing.T) {
	sizes := [][2]int{{1280, 720}, {1, 1}, {333, 1999}, {4000, 17}, {80, 48}}
	points := []WorldVec2{Vec(0, 0), Vec(12.5, -3.25), Vec(-25, 14.0625), Vec(1e-3, 1e3)}

	for _, size := range sizes {
		c := NewCoordinateSpace(size[0], size[1])
		for _, p := range points {
			x, y := c.ToPixels(p)
			back, ok := c.ToLogical(x, y)
			if !ok {
				t.Fatalf("ToLogical() failed for %dx%d", size[0], size[1])
			}
			if !approx(float64(back.X), float64(p.X)) || !approx(float64(back.Y), float64(p.Y)) {
				t.Errorf("round trip %v on %dx%d = %v", p, size[0], size[1], back)
			}

			wx, wy := c.ToWindow(p)
			back, ok = c.FromWindow(wx, wy)
			if !ok || !approx(float64(back.X), float64(p.X)) || !approx(float64(back.Y), float64(p.Y)) {
				t.Errorf("window round trip %v on %dx%d = %v", p, size[0], size[1], back)
			}
		}
	}
}

func TestCoordinateSpaceToWindow(t *testing.T) {
	c := NewCoordinateSpace(1280, 720)

	x, y := c.ToWindow(Vec(0, 0))
	if x != 640 || y != 360 {
		t.Errorf("ToWindow(origin) = (%v, %v), expected (640, 360)", x, y)
	}

	x, y = c.ToWindow(WorldVec2{X: Left, Y: Top})
	if !approx(x, 0) || !approx(y, 0) {
		t.Errorf("ToWindow(top-left) = (%v, %v), expected (0, 0)", x, y)
	}
}

func TestCoordinateSpaceResize(t *testing.T) {
	c := NewCoordinateSpace(1280, 720)
	c.Resize(640, 360)

	if s := c.Scale(); !approx(s.X, 640.0/50) {
		t.Errorf("Scale().X after Resize = %v, expected %v", s.X, 640.0/50)
	}
	vx, vy, vw, vh := c.Viewport()
	if !approx(vx, 0) || !approx(vy, 0) || !approx(vw, 640) || !approx(vh, 360) {
		t.Errorf("Viewport() = (%v, %v, %v, %v), expected full window", vx, vy, vw, vh)
	}

	c.Resize(1000, 360)
	vx, _, vw, _ = c.Viewport()
	if !approx(vw, 640) || !approx(vx, 180) {
		t.Errorf("Viewport() letterbox = x %v w %v, expected x 180 w 640", vx, vw)
	}
}
