package system

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// HoverTarget is a planet as seen on screen this frame
type HoverTarget struct {
	Index  int
	Name   string
	Screen vmath.Vec2
	Radius float64    // rendered radius in cells
	World  vmath.Vec2 // heliocentric position in meters
}

// Hover identifies the planet under the cursor
type Hover struct {
	Index          int
	Name           string
	DistanceAU     float64 // true distance from the Sun
	ScreenDistance float64 // cursor to planet, cells
	Anchor         vmath.Vec2
}

// Label formats the overlay text
func (h Hover) Label() string {
	return fmt.Sprintf("%s: %.2f AU", h.Name, h.DistanceAU)
}

// ResolveHover returns the nearest target whose screen distance from cursor is below radius+margin
// Equal distances resolve to the earlier target
func ResolveHover(cursor vmath.Vec2, targets []HoverTarget, margin float64) (Hover, bool) {
	if !vmath.V2Finite(cursor) {
		return Hover{}, false
	}

	best := -1
	bestDist := math.Inf(1)
	for i, t := range targets {
		d := vmath.V2Dist(cursor, t.Screen)
		if d >= t.Radius+margin {
			continue
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Hover{}, false
	}

	t := targets[best]
	return Hover{
		Index:          t.Index,
		Name:           t.Name,
		DistanceAU:     r2.Norm(t.World) / parameter.AU,
		ScreenDistance: bestDist,
		Anchor:         t.Screen,
	}, true
}
