package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(1280, 720, 12)

	if cam.X != 0 || cam.Y != 0 {
		t.Errorf("expected camera at origin, got (%f, %f)", cam.X, cam.Y)
	}
	// 12 world units should fit the viewport height
	if math.Abs(float64(cam.Zoom-60)) > 0.01 {
		t.Errorf("expected zoom 60 px/unit, got %f", cam.Zoom)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	cam := New(1280, 720, 12)

	// Camera center should map to screen center
	sx, sy := cam.WorldToScreen(0, 0)
	if math.Abs(float64(sx-640)) > 0.01 || math.Abs(float64(sy-360)) > 0.01 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestWorldYPointsUp(t *testing.T) {
	cam := New(1280, 720, 12)

	// A point above the camera should be above screen center
	_, sy := cam.WorldToScreen(0, 2)
	if sy >= 360 {
		t.Errorf("expected screen y above center, got %f", sy)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam := New(1280, 720, 12)
	cam.X = 1.5
	cam.Y = -0.5

	testCases := []struct{ sx, sy float32 }{
		{640, 360},  // center
		{100, 100},  // top-left
		{1200, 600}, // near bottom-right
	}

	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if math.Abs(float64(sx-tc.sx)) > 0.01 || math.Abs(float64(sy-tc.sy)) > 0.01 {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestPan(t *testing.T) {
	cam := New(1280, 720, 12)

	// Dragging right by 60px at 60 px/unit moves the camera one unit
	cam.Pan(60, 0)
	if math.Abs(float64(cam.X-1)) > 0.001 {
		t.Errorf("expected X=1 after pan, got %f", cam.X)
	}
	// Dragging down moves the camera down in world space (y-up)
	cam.Pan(0, 60)
	if math.Abs(float64(cam.Y+1)) > 0.001 {
		t.Errorf("expected Y=-1 after pan, got %f", cam.Y)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(1280, 720, 12)

	cam.SetZoom(0.1)
	if cam.Zoom != cam.MinZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MinZoom, cam.Zoom)
	}

	cam.SetZoom(100000)
	if cam.Zoom != cam.MaxZoom {
		t.Errorf("expected zoom clamped to %f, got %f", cam.MaxZoom, cam.Zoom)
	}
}

func TestIsVisible(t *testing.T) {
	cam := New(1280, 720, 12)

	// Visible extent: 1280/60 wide, 720/60 = 12 units tall
	if !cam.IsVisible(0, 0, 0.1) {
		t.Error("center should be visible")
	}
	if cam.IsVisible(50, 0, 0.1) {
		t.Error("far point should not be visible")
	}
	// Point just past the edge with a large radius should still be visible
	if !cam.IsVisible(11, 0, 1) {
		t.Error("edge point with large radius should be visible")
	}
}

func TestVisibleWorldBounds(t *testing.T) {
	cam := New(1280, 720, 12)

	minX, minY, maxX, maxY := cam.VisibleWorldBounds()
	if math.Abs(float64(maxY-minY-12)) > 0.01 {
		t.Errorf("expected 12 units of visible height, got %f", maxY-minY)
	}
	if minX >= maxX {
		t.Errorf("invalid bounds: minX %f >= maxX %f", minX, maxX)
	}
}
