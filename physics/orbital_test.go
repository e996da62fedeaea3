package physics

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/parameter"
)

var (
	earth   = component.OrbitalElements{Name: "Earth", SemiMajorAxisAU: 1.0, Eccentricity: 0.0167, OrbitalPeriodDays: 365.25}
	mercury = component.OrbitalElements{Name: "Mercury", SemiMajorAxisAU: 0.3871, Eccentricity: 0.2056, OrbitalPeriodDays: 87.97}
	mars    = component.OrbitalElements{Name: "Mars", SemiMajorAxisAU: 1.5234, Eccentricity: 0.0934, OrbitalPeriodDays: 686.98}
	pluto   = component.OrbitalElements{Name: "Pluto", SemiMajorAxisAU: 39.4786, Eccentricity: 0.2488, OrbitalPeriodDays: 90560}
)

func earthMu() float64 {
	return GravParamFromKepler(parameter.AU, 365.25*parameter.SecondsPerDay)
}

func TestGravParamFromKepler(t *testing.T) {
	mu := earthMu()
	// Solar GM is ~1.327e20 m³/s², Earth's rounded elements land within half a percent
	if math.Abs(mu-parameter.SunGM)/parameter.SunGM > 0.005 {
		t.Errorf("Expected GM near %g, got %g", parameter.SunGM, mu)
	}

	a, T := 2.0, 3.0
	want := 4 * math.Pi * math.Pi * a * a * a / (T * T)
	if got := GravParamFromKepler(a, T); got != want {
		t.Errorf("Expected %g, got %g", want, got)
	}
}

func TestReferenceGravParam(t *testing.T) {
	table := []component.OrbitalElements{mercury, earth}

	mu, ref := ReferenceGravParam(table, "Earth")
	if ref != "Earth" || mu != earthMu() {
		t.Errorf("Expected Earth reference with GM %g, got %q %g", earthMu(), ref, mu)
	}

	_, ref = ReferenceGravParam(table, "Vulcan")
	if ref != "Mercury" {
		t.Errorf("Expected fallback to first valid planet Mercury, got %q", ref)
	}

	noPeriod := component.OrbitalElements{Name: "X", SemiMajorAxisAU: 1, Eccentricity: 0.1}
	mu, ref = ReferenceGravParam([]component.OrbitalElements{noPeriod}, "X")
	if ref != "" || mu != parameter.SunGM {
		t.Errorf("Expected SunGM fallback, got %q %g", ref, mu)
	}
}

func TestValidateElements(t *testing.T) {
	tests := []struct {
		name  string
		a, e  float64
		valid bool
	}{
		{"circle", 1, 0, true},
		{"ellipse", 1, 0.99, true},
		{"parabola", 1, 1, false},
		{"hyperbola", 1, 1.5, false},
		{"negative e", 1, -0.1, false},
		{"zero a", 0, 0.1, false},
		{"negative a", -2, 0.1, false},
		{"nan a", math.NaN(), 0.1, false},
		{"inf e", 1, math.Inf(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateElements(component.OrbitalElements{Name: tt.name, SemiMajorAxisAU: tt.a, Eccentricity: tt.e})
			if tt.valid && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidElements) {
				t.Errorf("Expected ErrInvalidElements, got %v", err)
			}
		})
	}
}

func TestInitialStateAtPerihelion(t *testing.T) {
	mu := earthMu()
	for _, el := range []component.OrbitalElements{earth, mercury, pluto} {
		s, err := InitialState(el, mu)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", el.Name, err)
		}

		rp := el.SemiMajorAxisAU * parameter.AU * (1 - el.Eccentricity)
		if s.Position.X != rp || s.Position.Y != 0 {
			t.Errorf("%s: expected position (%g,0), got %v", el.Name, rp, s.Position)
		}

		// Velocity is tangential
		if dot := r2.Dot(s.Position, s.Velocity); math.Abs(dot) > 1e-6*rp {
			t.Errorf("%s: expected tangential velocity, dot=%g", el.Name, dot)
		}

		a := el.SemiMajorAxisAU * parameter.AU
		vp := math.Sqrt(mu * (1 + el.Eccentricity) / (a * (1 - el.Eccentricity)))
		if got := r2.Norm(s.Velocity); math.Abs(got-vp)/vp > 1e-12 {
			t.Errorf("%s: expected speed %g, got %g", el.Name, vp, got)
		}
		if s.Velocity.Y <= 0 {
			t.Errorf("%s: expected counter-clockwise motion (+Y), got %v", el.Name, s.Velocity)
		}
	}
}

func TestInitialStateRejectsInvalid(t *testing.T) {
	_, err := InitialState(component.OrbitalElements{Name: "Comet", SemiMajorAxisAU: 3, Eccentricity: 1.0}, earthMu())
	if !errors.Is(err, ErrInvalidElements) {
		t.Errorf("Expected ErrInvalidElements, got %v", err)
	}
	_, err = InitialState(earth, 0)
	if !errors.Is(err, ErrInvalidElements) {
		t.Errorf("Expected ErrInvalidElements for zero GM, got %v", err)
	}
}

func TestOrbitalAttractionGuard(t *testing.T) {
	acc := OrbitalAttraction(r2.Vec{}, earthMu())
	if math.IsNaN(acc.X) || math.IsNaN(acc.Y) || math.IsInf(acc.X, 0) {
		t.Errorf("Expected finite acceleration at origin, got %v", acc)
	}

	// Points toward the Sun with inverse-square magnitude
	mu := earthMu()
	acc = OrbitalAttraction(r2.Vec{X: parameter.AU}, mu)
	want := mu / (parameter.AU * parameter.AU)
	if acc.X >= 0 || math.Abs(-acc.X-want)/want > 1e-12 || acc.Y != 0 {
		t.Errorf("Expected (%g,0), got %v", -want, acc)
	}
}

func TestEnergyDriftZeroAtStart(t *testing.T) {
	mu := earthMu()
	s, _ := InitialState(earth, mu)
	if d := EnergyDrift(s, s, mu); d != 0 {
		t.Errorf("Expected zero drift, got %g", d)
	}
	if SpecificEnergy(s, mu) >= 0 {
		t.Error("Expected bound orbit to have negative specific energy")
	}
}

func TestPerihelionAphelionHelpers(t *testing.T) {
	if got := Perihelion(earth) + Aphelion(earth); math.Abs(got-2*parameter.AU) > 1 {
		t.Errorf("Expected rp+ra = 2a, got %g", got)
	}
	if !scalar.EqualWithinRel(Aphelion(pluto)/Perihelion(pluto), (1+pluto.Eccentricity)/(1-pluto.Eccentricity), 1e-12) {
		t.Error("Expected ra/rp = (1+e)/(1-e)")
	}
}
