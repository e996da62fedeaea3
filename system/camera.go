package system

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// CameraState is the user-controlled view transform
// Pan is a screen-space offset in cells; it is added after projection so a pan
// delta moves the scene by the same number of cells at any zoom
type CameraState struct {
	Pan   vmath.Vec2
	Zoom  float64
	Focus vmath.Vec2 // world point projected to screen center
}

// CameraConfig bounds zoom and sets the cell aspect ratio
type CameraConfig struct {
	MinZoom float64
	MaxZoom float64
	Aspect  float64 // vertical cells per horizontal cell for equal world distance
}

// DefaultCameraConfig returns parameter defaults
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		MinZoom: parameter.DefaultMinZoom,
		MaxZoom: parameter.DefaultMaxZoom,
		Aspect:  parameter.CellAspect,
	}
}

// Camera maps world meters to screen cells:
// screen = (world - focus) * zoom * baseScale * (1, aspect) + center + pan
type Camera struct {
	state CameraState
	cfg   CameraConfig

	width, height int
	extent        float64 // world radius that fits the viewport at zoom 1
	baseScale     float64 // cells per meter at zoom 1
}

// NewCamera creates a camera fitting a world radius of extent meters into the viewport
func NewCamera(cfg CameraConfig, width, height int, extent float64) *Camera {
	if cfg.MinZoom <= 0 {
		cfg.MinZoom = parameter.DefaultMinZoom
	}
	if cfg.MaxZoom < cfg.MinZoom {
		cfg.MaxZoom = cfg.MinZoom
	}
	if cfg.Aspect <= 0 {
		cfg.Aspect = 1
	}
	if extent <= 0 || !vmath.Finite(extent) {
		extent = parameter.AU
	}

	c := &Camera{
		cfg:    cfg,
		extent: extent,
		state:  CameraState{Zoom: vmath.Clamp(1, cfg.MinZoom, cfg.MaxZoom)},
	}
	c.Resize(width, height)
	return c
}

// Resize updates viewport dimensions and refits the base scale
func (c *Camera) Resize(width, height int) {
	c.width = max(width, 1)
	c.height = max(height, 1)

	halfW := float64(c.width) / 2
	halfH := float64(c.height) / 2 / c.cfg.Aspect
	c.baseScale = parameter.FitMargin * math.Min(halfW, halfH) / c.extent
}

// State returns a copy of the current camera state
func (c *Camera) State() CameraState {
	return c.state
}

// Zoom returns current zoom multiplier
func (c *Camera) Zoom() float64 {
	return c.state.Zoom
}

// Size returns viewport dimensions in cells
func (c *Camera) Size() (width, height int) {
	return c.width, c.height
}

// Center returns the screen-space center of the viewport
func (c *Camera) Center() vmath.Vec2 {
	return vmath.V2(float64(c.width)/2, float64(c.height)/2)
}

func (c *Camera) scale() vmath.Vec2 {
	s := c.state.Zoom * c.baseScale
	return vmath.V2(s, s*c.cfg.Aspect)
}

// WorldToScreen projects a world position to screen cells
func (c *Camera) WorldToScreen(world vmath.Vec2) vmath.Vec2 {
	projected := vmath.V2Mul(r2.Sub(world, c.state.Focus), c.scale())
	return r2.Add(r2.Add(projected, c.Center()), c.state.Pan)
}

// ScreenToWorld is the exact inverse of WorldToScreen
func (c *Camera) ScreenToWorld(screen vmath.Vec2) vmath.Vec2 {
	local := r2.Sub(r2.Sub(screen, c.Center()), c.state.Pan)
	return r2.Add(vmath.V2Div(local, c.scale()), c.state.Focus)
}

// PanBy shifts the view by a screen-space delta in cells
func (c *Camera) PanBy(delta vmath.Vec2) {
	if !vmath.V2Finite(delta) {
		return
	}
	c.state.Pan = r2.Add(c.state.Pan, delta)
}

// ZoomBy multiplies zoom by factor keeping the world point under anchor fixed on screen
// Resulting zoom is clamped to configured bounds; non-positive factors are ignored
func (c *Camera) ZoomBy(factor float64, anchor vmath.Vec2) {
	if factor <= 0 || !vmath.Finite(factor) || !vmath.V2Finite(anchor) {
		return
	}
	c.ZoomTo(c.state.Zoom*factor, anchor)
}

// ZoomAtCenter zooms anchored at the viewport center
func (c *Camera) ZoomAtCenter(factor float64) {
	c.ZoomBy(factor, c.Center())
}

// ClampZoom limits zoom to the configured bounds
func (c *Camera) ClampZoom(zoom float64) float64 {
	return vmath.Clamp(zoom, c.cfg.MinZoom, c.cfg.MaxZoom)
}

// ZoomTo sets an absolute zoom keeping the world point under anchor fixed
func (c *Camera) ZoomTo(zoom float64, anchor vmath.Vec2) {
	if !vmath.Finite(zoom) || !vmath.V2Finite(anchor) {
		return
	}
	newZoom := c.ClampZoom(zoom)
	k := newZoom / c.state.Zoom

	// pan' = (anchor - center)(1 - k) + pan*k
	rel := r2.Sub(anchor, c.Center())
	c.state.Pan = r2.Add(r2.Scale(1-k, rel), r2.Scale(k, c.state.Pan))
	c.state.Zoom = newZoom
}

// SetFocus places a world point at screen center (before pan)
func (c *Camera) SetFocus(world vmath.Vec2) {
	if !vmath.V2Finite(world) {
		return
	}
	c.state.Focus = world
}

// Reset restores zoom 1, no pan, focus on the Sun
func (c *Camera) Reset() {
	c.state = CameraState{Zoom: c.ClampZoom(1)}
}
