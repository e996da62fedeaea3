package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

const tol = 1e-9

func nearVec(a, b vmath.Vec2, eps float64) bool {
	return vmath.NearlyEqual(a.X, b.X, eps) && vmath.NearlyEqual(a.Y, b.Y, eps)
}

func newTestCamera() *Camera {
	return NewCamera(DefaultCameraConfig(), 120, 40, 40*parameter.AU)
}

func TestCameraSunAtCenter(t *testing.T) {
	c := newTestCamera()
	got := c.WorldToScreen(vmath.V2(0, 0))
	if !nearVec(got, vmath.V2(60, 20), tol) {
		t.Errorf("Expected Sun at (60,20), got %v", got)
	}
}

func TestCameraFitsExtentAtZoomOne(t *testing.T) {
	c := newTestCamera()
	edgeX := c.WorldToScreen(vmath.V2(40*parameter.AU, 0))
	edgeY := c.WorldToScreen(vmath.V2(0, 40*parameter.AU))
	inside := func(p vmath.Vec2) bool {
		return p.X >= 0 && p.Y >= 0 && p.X < 120 && p.Y < 40
	}
	if !inside(edgeX) || !inside(edgeY) {
		t.Errorf("Expected outermost orbit visible, got %v and %v", edgeX, edgeY)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := newTestCamera()
	states := []func(){
		func() {},
		func() { c.PanBy(vmath.V2(13, -7)) },
		func() { c.ZoomBy(3.7, vmath.V2(10, 5)) },
		func() { c.SetFocus(vmath.V2(1.2*parameter.AU, -0.4*parameter.AU)) },
		func() { c.ZoomBy(0.01, vmath.V2(100, 30)) },
	}
	points := []vmath.Vec2{
		vmath.V2(0, 0),
		vmath.V2(parameter.AU, 0),
		vmath.V2(-5.2*parameter.AU, 3.1*parameter.AU),
		vmath.V2(12345.678, -98765.4321),
	}

	for i, apply := range states {
		apply()
		for _, p := range points {
			back := c.ScreenToWorld(c.WorldToScreen(p))
			if math.Abs(back.X-p.X) > 1e-6*parameter.AU || math.Abs(back.Y-p.Y) > 1e-6*parameter.AU {
				t.Errorf("State %d: expected %v, got %v", i, p, back)
			}
		}
		s := vmath.V2(33, 17)
		if back := c.WorldToScreen(c.ScreenToWorld(s)); !nearVec(back, s, 1e-9) {
			t.Errorf("State %d: screen round trip expected %v, got %v", i, s, back)
		}
	}
}

func TestCameraZoomKeepsAnchor(t *testing.T) {
	c := newTestCamera()
	c.PanBy(vmath.V2(4, 2))
	anchor := vmath.V2(90, 10)
	before := c.ScreenToWorld(anchor)

	c.ZoomBy(2.5, anchor)

	after := c.WorldToScreen(before)
	if !nearVec(after, anchor, 1e-9) {
		t.Errorf("Expected anchor world point to stay at %v, got %v", anchor, after)
	}
}

func TestCameraZoomInverseRestoresState(t *testing.T) {
	factors := []float64{1.25, 2, 0.5, 7.3}
	anchors := []vmath.Vec2{vmath.V2(60, 20), vmath.V2(0, 0), vmath.V2(119, 39), vmath.V2(-30, 80)}

	for _, f := range factors {
		for _, a := range anchors {
			c := newTestCamera()
			c.PanBy(vmath.V2(-11, 6))
			orig := c.State()

			c.ZoomBy(f, a)
			c.ZoomBy(1/f, a)

			got := c.State()
			if !vmath.NearlyEqual(got.Zoom, orig.Zoom, tol) || !nearVec(got.Pan, orig.Pan, 1e-9) {
				t.Errorf("factor %g anchor %v: expected %+v, got %+v", f, a, orig, got)
			}
		}
	}
}

func TestCameraZoomClamped(t *testing.T) {
	c := newTestCamera()
	for i := 0; i < 100; i++ {
		c.ZoomAtCenter(10)
	}
	if c.Zoom() != parameter.DefaultMaxZoom {
		t.Errorf("Expected zoom clamped to %g, got %g", parameter.DefaultMaxZoom, c.Zoom())
	}
	for i := 0; i < 100; i++ {
		c.ZoomAtCenter(0.1)
	}
	if c.Zoom() != parameter.DefaultMinZoom {
		t.Errorf("Expected zoom clamped to %g, got %g", parameter.DefaultMinZoom, c.Zoom())
	}

	z := c.Zoom()
	c.ZoomAtCenter(0)
	c.ZoomAtCenter(-2)
	c.ZoomAtCenter(math.NaN())
	if c.Zoom() != z || c.Zoom() <= 0 {
		t.Errorf("Expected invalid factors ignored, zoom %g -> %g", z, c.Zoom())
	}
}

func TestCameraPanIndependentOfZoom(t *testing.T) {
	for _, zoom := range []float64{0.5, 1, 8} {
		c := newTestCamera()
		c.ZoomTo(zoom, c.Center())
		p := vmath.V2(parameter.AU, parameter.AU)
		before := c.WorldToScreen(p)
		c.PanBy(vmath.V2(5, -3))
		after := c.WorldToScreen(p)
		if !nearVec(vmath.V2(after.X-before.X, after.Y-before.Y), vmath.V2(5, -3), 1e-9) {
			t.Errorf("zoom %g: expected shift (5,-3), got (%g,%g)", zoom, after.X-before.X, after.Y-before.Y)
		}
	}
}

func TestCameraResetAndResize(t *testing.T) {
	c := newTestCamera()
	c.PanBy(vmath.V2(3, 3))
	c.ZoomAtCenter(4)
	c.SetFocus(vmath.V2(parameter.AU, 0))
	c.Reset()

	if got := c.State(); got != (CameraState{Zoom: 1}) {
		t.Errorf("Expected default state, got %+v", got)
	}

	au := vmath.V2(parameter.AU, 0)
	old := vmath.V2Dist(c.WorldToScreen(au), c.Center())
	c.Resize(240, 80)
	if got := vmath.V2Dist(c.WorldToScreen(au), c.Center()); got <= old {
		t.Errorf("Expected larger scale for larger viewport, %g -> %g cells per AU", old, got)
	}
	if w, h := c.Size(); w != 240 || h != 80 {
		t.Errorf("Expected size 240x80, got %dx%d", w, h)
	}

	c.Resize(0, -5)
	if w, h := c.Size(); w != 1 || h != 1 {
		t.Errorf("Expected degenerate size clamped to 1x1, got %dx%d", w, h)
	}
}
