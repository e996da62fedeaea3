package physics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// ValidateElements rejects elements that do not describe a bound ellipse
// Errors wrap ErrInvalidElements
func ValidateElements(el component.OrbitalElements) error {
	a, e := el.SemiMajorAxisAU, el.Eccentricity
	switch {
	case !vmath.Finite(a) || !vmath.Finite(e):
		return fmt.Errorf("%w: %s: non-finite element (a=%g, e=%g)", ErrInvalidElements, el.Name, a, e)
	case a <= 0:
		return fmt.Errorf("%w: %s: semi-major axis %g AU must be positive", ErrInvalidElements, el.Name, a)
	case e < 0 || e >= 1:
		return fmt.Errorf("%w: %s: eccentricity %g outside [0, 1)", ErrInvalidElements, el.Name, e)
	}
	return nil
}

// GravParamFromKepler returns GM = 4π²a³/T² for a in meters and T in seconds
func GravParamFromKepler(semiMajorAxis, period float64) float64 {
	return 4 * math.Pi * math.Pi * semiMajorAxis * semiMajorAxis * semiMajorAxis / (period * period)
}

// ReferenceGravParam derives the Sun's GM from the named planet's period and semi-major axis
// Falls back to the first valid planet with a period, then to parameter.SunGM
// Returns the name of the body used, empty when the fallback constant was used
func ReferenceGravParam(table []component.OrbitalElements, name string) (float64, string) {
	usable := func(el component.OrbitalElements) bool {
		return ValidateElements(el) == nil && el.OrbitalPeriodDays > 0 && vmath.Finite(el.OrbitalPeriodDays)
	}
	for _, el := range table {
		if el.Name == name && usable(el) {
			return elementsGravParam(el), el.Name
		}
	}
	for _, el := range table {
		if usable(el) {
			return elementsGravParam(el), el.Name
		}
	}
	return parameter.SunGM, ""
}

func elementsGravParam(el component.OrbitalElements) float64 {
	return GravParamFromKepler(el.SemiMajorAxisAU*parameter.AU, el.OrbitalPeriodDays*parameter.SecondsPerDay)
}

// Perihelion returns closest approach distance a(1-e) in meters
func Perihelion(el component.OrbitalElements) float64 {
	return el.SemiMajorAxisAU * parameter.AU * (1 - el.Eccentricity)
}

// Aphelion returns farthest distance a(1+e) in meters
func Aphelion(el component.OrbitalElements) float64 {
	return el.SemiMajorAxisAU * parameter.AU * (1 + el.Eccentricity)
}

// PerihelionSpeed returns vis-viva speed at perihelion: sqrt(GM(1+e)/(a(1-e)))
func PerihelionSpeed(el component.OrbitalElements, mu float64) float64 {
	a := el.SemiMajorAxisAU * parameter.AU
	e := el.Eccentricity
	return math.Sqrt(mu * (1 + e) / (a * (1 - e)))
}

// InitialState places the planet at perihelion on +X moving along +Y (counter-clockwise)
func InitialState(el component.OrbitalElements, mu float64) (core.PhysicalState, error) {
	if err := ValidateElements(el); err != nil {
		return core.PhysicalState{}, err
	}
	if mu <= 0 || !vmath.Finite(mu) {
		return core.PhysicalState{}, fmt.Errorf("%w: %s: gravitational parameter %g must be positive", ErrInvalidElements, el.Name, mu)
	}

	rp := Perihelion(el)
	radial := vmath.V2(rp, 0)

	// Tangent is perpendicular to radius
	tangent := r2.Unit(vmath.V2Perp(radial))

	return core.PhysicalState{
		Position: radial,
		Velocity: r2.Scale(PerihelionSpeed(el, mu), tangent),
	}, nil
}

// OrbitalAttraction returns inverse-square acceleration toward the Sun at origin
// |r| is clamped to parameter.MinSunDistance
func OrbitalAttraction(pos vmath.Vec2, mu float64) vmath.Vec2 {
	dist := math.Max(r2.Norm(pos), parameter.MinSunDistance)
	return r2.Scale(-mu/(dist*dist*dist), pos)
}

// SpecificEnergy returns orbital energy per unit mass: v²/2 - GM/r
func SpecificEnergy(s core.PhysicalState, mu float64) float64 {
	dist := math.Max(r2.Norm(s.Position), parameter.MinSunDistance)
	return 0.5*r2.Norm2(s.Velocity) - mu/dist
}

// EnergyDrift returns relative change of specific energy from initial to current
func EnergyDrift(initial, current core.PhysicalState, mu float64) float64 {
	e0 := SpecificEnergy(initial, mu)
	if e0 == 0 {
		return 0
	}
	return (SpecificEnergy(current, mu) - e0) / math.Abs(e0)
}
