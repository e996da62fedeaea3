package component

import "github.com/lixenwraith/orrery/core"

// OrbitalElements holds static per-planet constants, loaded once from the planet table
type OrbitalElements struct {
	Name              string
	SemiMajorAxisAU   float64
	Eccentricity      float64 // [0, 1) for a bound ellipse
	OrbitalPeriodDays float64
	Mass              float64 // kg, informational only; planets do not attract each other
	DisplayRadius     float64 // pixels in the source table, renderer scales to cells
	Color             core.RGB
}

// BodyInfo describes the fixed central body
type BodyInfo struct {
	Name          string
	Mass          float64
	DisplayRadius float64
	Color         core.RGB
}
