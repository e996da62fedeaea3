package parameter

// Camera zoom and pan configuration
const (
	// DefaultMinZoom and DefaultMaxZoom bound the zoom multiplier
	DefaultMinZoom = 0.05
	DefaultMaxZoom = 400.0

	// DefaultZoomStep is the multiplier per zoom key press or wheel notch
	DefaultZoomStep = 1.25

	// DefaultInnerZoom is the zoom used by the zoom toggle key
	// Close-up scale relative to the overview scale
	DefaultInnerZoom = 4.0

	// DefaultPanStep is the screen-space pan per arrow key press, in cells
	DefaultPanStep = 5.0

	// FitMargin is the fraction of the half-viewport the outermost orbit occupies at zoom 1
	FitMargin = 0.9

	// CellAspect is the vertical world-to-cell factor relative to horizontal
	// Terminal cells are roughly twice as tall as wide
	CellAspect = 0.5
)
