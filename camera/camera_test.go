package camera

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.01
}

func TestNew(t *testing.T) {
	cam := New(1280, 720, 30)

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at origin, got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 30)
	cam.X, cam.Y = 200, -150

	// Camera center should map to screen center
	sx, sy := cam.WorldToScreen(200, -150)
	if !near(sx, 640) || !near(sy, 360) {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 30)
	cam.X, cam.Y = -300, 40
	cam.Zoom = 0.6

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !near(sx, tc.sx) || !near(sy, tc.sy) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestFollowEases(t *testing.T) {
	cam := New(1280, 720, 30)
	cam.Smoothing = 0.5

	cam.Follow(100, -100, 30)
	if !near(cam.X, 50) || !near(cam.Y, -50) {
		t.Errorf("after one follow expected (50, -50), got (%f, %f)", cam.X, cam.Y)
	}

	for i := 0; i < 40; i++ {
		cam.Follow(100, -100, 30)
	}
	if !near(cam.X, 100) || !near(cam.Y, -100) {
		t.Errorf("camera did not converge, at (%f, %f)", cam.X, cam.Y)
	}

	// No player: position still eases, zoom untouched
	cam.Zoom = 0.8
	cam.Follow(100, -100, 0)
	if cam.Zoom != 0.8 {
		t.Errorf("zoom changed without a player radius: %f", cam.Zoom)
	}
}

func TestZoomFor(t *testing.T) {
	cam := New(1280, 720, 30)

	tests := []struct {
		radius float32
		want   float32
	}{
		{30, 1.0},
		{120, 0.5},
		{7.5, 2.0},
		{10000, 0.25}, // Clamped to MinZoom
		{1, 2.0},      // Clamped to MaxZoom
	}
	for _, tt := range tests {
		if got := cam.ZoomFor(tt.radius); !near(got, tt.want) {
			t.Errorf("ZoomFor(%v) = %v, want %v", tt.radius, got, tt.want)
		}
	}
}

func TestSnap(t *testing.T) {
	cam := New(1280, 720, 30)
	cam.Snap(10, 20, 120)
	if cam.X != 10 || cam.Y != 20 || !near(cam.Zoom, 0.5) {
		t.Errorf("Snap gave (%f, %f) zoom %f", cam.X, cam.Y, cam.Zoom)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, 30)

	cam.SetZoom(0.1) // Below min
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}

	cam.SetZoom(10.0) // Above max
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MaxZoom, cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 30)

	// Visible range in world coords: (-640, -360) to (640, 360)
	if !cam.IsVisible(0, 0, 10) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(1200, 700, 10) {
		t.Error("far point should not be visible")
	}
	if !cam.IsVisible(-700, 0, 100) {
		t.Error("edge point with large radius should be visible")
	}
}

func TestGridLines(t *testing.T) {
	cam := New(400, 200, 30)
	// Visible x in [-200, 200], y in [-100, 100]
	xs, ys := cam.GridLines(100)
	if len(xs) != 5 || xs[0] != -200 || xs[4] != 200 {
		t.Errorf("xs = %v, want -200..200 step 100", xs)
	}
	if len(ys) != 3 || ys[0] != -100 {
		t.Errorf("ys = %v, want -100..100 step 100", ys)
	}
	if xs, ys := cam.GridLines(0); xs != nil || ys != nil {
		t.Error("zero spacing should produce no lines")
	}
}

func TestReset(t *testing.T) {
	cam := New(1280, 720, 30)
	cam.X = 500
	cam.Y = 500
	cam.Zoom = 1.5

	cam.Reset()

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected origin, got (%f, %f)", cam.X, cam.Y)
	}
	if cam.Zoom != 1.0 {
		t.Errorf("expected zoom 1.0, got %f", cam.Zoom)
	}
}
