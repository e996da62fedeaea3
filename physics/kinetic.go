package physics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/parameter"
)

// Integrator advances a physical state by dt seconds under the central attraction mu
// The same convention is applied to every planet and every step
type Integrator interface {
	Name() string
	Step(s core.PhysicalState, mu, dt float64) core.PhysicalState
}

// SemiImplicitEuler integrates v = v + a*dt; p = p + v*dt using the post-step velocity
type SemiImplicitEuler struct{}

func (SemiImplicitEuler) Name() string { return parameter.IntegratorSemiImplicitEuler }

func (SemiImplicitEuler) Step(s core.PhysicalState, mu, dt float64) core.PhysicalState {
	vel := r2.Add(s.Velocity, r2.Scale(dt, OrbitalAttraction(s.Position, mu)))
	return core.PhysicalState{
		Position: r2.Add(s.Position, r2.Scale(dt, vel)),
		Velocity: vel,
	}
}

// ExplicitEuler integrates position with the pre-step velocity
// Accumulates secular energy gain; kept for comparison
type ExplicitEuler struct{}

func (ExplicitEuler) Name() string { return parameter.IntegratorExplicitEuler }

func (ExplicitEuler) Step(s core.PhysicalState, mu, dt float64) core.PhysicalState {
	return core.PhysicalState{
		Position: r2.Add(s.Position, r2.Scale(dt, s.Velocity)),
		Velocity: r2.Add(s.Velocity, r2.Scale(dt, OrbitalAttraction(s.Position, mu))),
	}
}

// RK4 is classic fourth-order Runge-Kutta on (position, velocity)
type RK4 struct{}

func (RK4) Name() string { return parameter.IntegratorRK4 }

func (RK4) Step(s core.PhysicalState, mu, dt float64) core.PhysicalState {
	const (
		half     = 1 / 2.0
		oneSixth = 1 / 6.0
		oneThird = 1 / 3.0
	)

	// Derivative of (p, v) is (v, a(p))
	k1p, k1v := s.Velocity, OrbitalAttraction(s.Position, mu)

	p2 := r2.Add(s.Position, r2.Scale(dt*half, k1p))
	k2p, k2v := r2.Add(s.Velocity, r2.Scale(dt*half, k1v)), OrbitalAttraction(p2, mu)

	p3 := r2.Add(s.Position, r2.Scale(dt*half, k2p))
	k3p, k3v := r2.Add(s.Velocity, r2.Scale(dt*half, k2v)), OrbitalAttraction(p3, mu)

	p4 := r2.Add(s.Position, r2.Scale(dt, k3p))
	k4p, k4v := r2.Add(s.Velocity, r2.Scale(dt, k3v)), OrbitalAttraction(p4, mu)

	dp := r2.Add(r2.Scale(oneSixth, r2.Add(k1p, k4p)), r2.Scale(oneThird, r2.Add(k2p, k3p)))
	dv := r2.Add(r2.Scale(oneSixth, r2.Add(k1v, k4v)), r2.Scale(oneThird, r2.Add(k2v, k3v)))

	return core.PhysicalState{
		Position: r2.Add(s.Position, r2.Scale(dt, dp)),
		Velocity: r2.Add(s.Velocity, r2.Scale(dt, dv)),
	}
}

// NewIntegrator resolves a configured scheme name
func NewIntegrator(name string) (Integrator, error) {
	switch name {
	case "", parameter.IntegratorSemiImplicitEuler:
		return SemiImplicitEuler{}, nil
	case parameter.IntegratorExplicitEuler:
		return ExplicitEuler{}, nil
	case parameter.IntegratorRK4:
		return RK4{}, nil
	default:
		return nil, fmt.Errorf("unknown integrator %q", name)
	}
}

// Advance integrates dt in equal substeps no longer than maxStep
// Substep count is capped at parameter.MaxSubstepsPerFrame; returns substeps taken
func Advance(integ Integrator, s core.PhysicalState, mu, dt, maxStep float64) (core.PhysicalState, int) {
	if dt <= 0 {
		return s, 0
	}
	n := 1
	if maxStep > 0 && dt > maxStep {
		n = int(math.Ceil(dt / maxStep))
	}
	n = min(n, parameter.MaxSubstepsPerFrame)

	h := dt / float64(n)
	for i := 0; i < n; i++ {
		s = integ.Step(s, mu, h)
	}
	return s, n
}
