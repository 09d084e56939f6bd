package render

import (
	"math"
	"testing"

	"github.com/stuXoon/game-of-life/pkg/life"
)

func TestScreenToCellFloors(t *testing.T) {
	cam := &Camera{X: -2, Y: -2, Zoom: 10}
	if got := cam.ScreenToCell(0, 0); got != (life.Cell{X: -2, Y: -2}) {
		t.Fatalf("origin cell = %v, want (-2,-2)", got)
	}
	if got := cam.ScreenToCell(19, 25); got != (life.Cell{X: -1, Y: 0}) {
		t.Fatalf("cell = %v, want (-1,0)", got)
	}
}

func TestRoundTripProjection(t *testing.T) {
	cam := &Camera{X: 3.5, Y: -8.25, Zoom: 13}
	sx, sy := cam.WorldToScreen(12.75, -1.5)
	wx, wy := cam.ScreenToWorld(sx, sy)
	if math.Abs(wx-12.75) > 1e-9 || math.Abs(wy+1.5) > 1e-9 {
		t.Fatalf("round trip drifted to (%v,%v)", wx, wy)
	}
}

func TestZoomAtKeepsCursorAnchored(t *testing.T) {
	cam := &Camera{X: 10, Y: 20, Zoom: 8}
	const sx, sy = 123.0, 77.0
	wantX, wantY := cam.ScreenToWorld(sx, sy)
	cam.ZoomAt(1.5, sx, sy)
	gotX, gotY := cam.ScreenToWorld(sx, sy)
	if math.Abs(gotX-wantX) > 1e-9 || math.Abs(gotY-wantY) > 1e-9 {
		t.Fatalf("world point under cursor moved from (%v,%v) to (%v,%v)", wantX, wantY, gotX, gotY)
	}
}

func TestZoomClamping(t *testing.T) {
	cam := &Camera{Zoom: 2}
	cam.ZoomAt(0.0001, 0, 0)
	if cam.Zoom != MinZoom {
		t.Fatalf("zoom = %v, want clamped to %v", cam.Zoom, MinZoom)
	}
	cam.ZoomAt(1e9, 0, 0)
	if cam.Zoom != MaxZoom {
		t.Fatalf("zoom = %v, want clamped to %v", cam.Zoom, MaxZoom)
	}
}

func TestPanMatchesZoom(t *testing.T) {
	cam := &Camera{Zoom: 4}
	cam.Pan(40, -8)
	if cam.X != -10 || cam.Y != 2 {
		t.Fatalf("pan moved camera to (%v,%v), want (-10,2)", cam.X, cam.Y)
	}
}

func TestCenterOn(t *testing.T) {
	cam := &Camera{Zoom: 10}
	cam.CenterOn(life.Rect{MinX: 0, MinY: 0, MaxX: 9, MaxY: 9}, 200, 100)
	// The rect center (5,5) must land at screen center (100,50).
	sx, sy := cam.WorldToScreen(5, 5)
	if math.Abs(sx-100) > 1e-9 || math.Abs(sy-50) > 1e-9 {
		t.Fatalf("rect center landed at (%v,%v), want (100,50)", sx, sy)
	}
}
