package parameter

import "time"

// Frame pacing
const (
	// FrameInterval drives the render loop (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// EventQueueSize buffers terminal events between frames
	EventQueueSize = 100
)

// Hover
const (
	// DefaultHoverMargin is added to a planet's rendered radius for hit testing, in cells
	DefaultHoverMargin = 2.0

	// RadiusCellScale converts table display radius (pixels) to cells
	RadiusCellScale = 0.25
)

// Glyphs
const (
	GlyphSun        = '☼'
	GlyphPlanet     = '●'
	GlyphPlanetFill = '•'
	GlyphTrail      = '·'
)

// Layout
const (
	// HUDRows reserved at top of screen for status text
	HUDRows = 2

	// LabelOffsetY places the hover label above the planet
	LabelOffsetY = 2
)

// TrailMinOpacity is the opacity of the oldest trail point
const TrailMinOpacity = 0.08

// Logging
const (
	LogDir      = "logs"
	LogFileName = "orrery.log"

	// StallLogInterval throttles clamped-frame diagnostics
	StallLogInterval = 5 * time.Second
)
