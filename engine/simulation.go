package engine

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/physics"
)

// SimulationConfig selects the propagation scheme and buffers
type SimulationConfig struct {
	Integrator    physics.Integrator // nil selects the default scheme
	MaxSubstep    float64            // simulated seconds, <= 0 disables substepping
	TrailCapacity int
	ReferenceBody string // planet whose Kepler elements define GM
}

// Simulation owns the active planets and advances them under the Sun's attraction
// The Sun is fixed at origin and never integrated
type Simulation struct {
	cfg     SimulationConfig
	integ   physics.Integrator
	mu      float64
	refBody string

	sun     component.BodyInfo
	planets []*component.Planet

	substeps int64
	logger   log.Logger
}

// NewSimulation builds the active planet set from the table
// Planets with invalid elements are excluded; one diagnostic per exclusion is returned and logged
func NewSimulation(cfg SimulationConfig, sun component.BodyInfo, table []component.OrbitalElements, logger log.Logger) (*Simulation, []error) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if cfg.Integrator == nil {
		cfg.Integrator = physics.SemiImplicitEuler{}
	}
	if cfg.ReferenceBody == "" {
		cfg.ReferenceBody = parameter.DefaultReferenceBody
	}

	s := &Simulation{
		cfg:    cfg,
		integ:  cfg.Integrator,
		sun:    sun,
		logger: log.With(logger, "component", "simulation"),
	}
	s.mu, s.refBody = physics.ReferenceGravParam(table, cfg.ReferenceBody)
	if s.refBody != cfg.ReferenceBody {
		level.Warn(s.logger).Log("msg", "reference body unavailable", "requested", cfg.ReferenceBody, "using", fallbackName(s.refBody))
	}

	var diags []error
	for _, el := range table {
		initial, err := physics.InitialState(el, s.mu)
		if err != nil {
			level.Warn(s.logger).Log("msg", "planet excluded", "planet", el.Name, "err", err)
			diags = append(diags, err)
			continue
		}
		s.planets = append(s.planets, component.NewPlanet(el, initial, cfg.TrailCapacity))
	}

	level.Info(s.logger).Log("msg", "simulation ready", "planets", len(s.planets), "integrator", s.integ.Name(), "mu", s.mu, "reference", fallbackName(s.refBody))
	return s, diags
}

func fallbackName(ref string) string {
	if ref == "" {
		return "SunGM"
	}
	return ref
}

// Step advances every planet by dt simulated seconds and records trails
// dt <= 0 leaves states and trails untouched
func (s *Simulation) Step(dt float64) {
	if dt <= 0 {
		return
	}
	for _, p := range s.planets {
		var n int
		p.State, n = physics.Advance(s.integ, p.State, s.mu, dt, s.cfg.MaxSubstep)
		p.Trail.Record(p.State.Position)
		s.substeps += int64(n)
	}
}

// Reset returns every planet to perihelion and clears trails
func (s *Simulation) Reset() {
	for _, p := range s.planets {
		p.Reset()
	}
	s.substeps = 0
}

// Planets returns the active planets in table order
func (s *Simulation) Planets() []*component.Planet {
	return s.planets
}

// Sun returns the central body description
func (s *Simulation) Sun() component.BodyInfo {
	return s.sun
}

// GravParam returns GM in m³/s²
func (s *Simulation) GravParam() float64 {
	return s.mu
}

// Reference returns the planet GM was derived from, empty for the constant fallback
func (s *Simulation) Reference() string {
	return s.refBody
}

// Integrator returns the active propagation scheme
func (s *Simulation) Integrator() physics.Integrator {
	return s.integ
}

// Substeps returns integration steps taken since reset across all planets
func (s *Simulation) Substeps() int64 {
	return s.substeps
}

// Extent returns the largest aphelion among active planets in meters
func (s *Simulation) Extent() float64 {
	extent := 0.0
	for _, p := range s.planets {
		extent = max(extent, physics.Aphelion(p.Elements))
	}
	if extent <= 0 {
		return parameter.AU
	}
	return extent
}

// EnergyDrift returns relative specific energy change of planet i since reset
func (s *Simulation) EnergyDrift(i int) float64 {
	if i < 0 || i >= len(s.planets) {
		return 0
	}
	p := s.planets[i]
	return physics.EnergyDrift(p.Initial, p.State, s.mu)
}
