package engine

import (
	"time"

	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/system"
	"github.com/lixenwraith/orrery/vmath"
)

// TrailPoint is one recorded position in screen space
// Opacity rises from parameter.TrailMinOpacity (oldest) to 1 (newest)
type TrailPoint struct {
	Screen  vmath.Vec2
	Opacity float64
}

// BodyView is a body projected for drawing
type BodyView struct {
	Index  int
	Name   string
	Screen vmath.Vec2
	Radius float64 // cells
	Color  core.RGB
	Trail  []TrailPoint // oldest first, nil when trails are hidden
}

// HUD is the status line content
type HUD struct {
	SimTime     time.Time
	JulianDay   float64
	ElapsedDays float64
	Speed       float64 // simulated seconds per real second
	StepHours   float64 // simulated hours covered by the latest frame
	Zoom        float64
	Paused      bool
	Integrator  string
	EnergyDrift float64
	Following   string // empty when the camera is free
	Active      int    // planets in the simulation
	ShowTrails  bool
	Muted       bool
}

// Frame is everything the renderer needs for one draw
type Frame struct {
	Width, Height int

	Sun     BodyView
	Planets []BodyView

	Hover        system.Hover
	Hovered      bool
	HoverEntered bool // hover target changed to a planet this frame

	HUD HUD
}
