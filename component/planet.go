package component

import "github.com/lixenwraith/orrery/core"

// Planet is one simulated body: immutable elements, mutable state, and its trail
// State and Trail are owned by the planet and mutated only by the simulation step
type Planet struct {
	Elements OrbitalElements
	State    core.PhysicalState
	Trail    *core.Trail

	// Initial is the state at construction, used by reset and drift diagnostics
	Initial core.PhysicalState
}

// NewPlanet creates a planet at the given initial state with an empty trail
func NewPlanet(el OrbitalElements, initial core.PhysicalState, trailCapacity int) *Planet {
	return &Planet{
		Elements: el,
		State:    initial,
		Initial:  initial,
		Trail:    core.NewTrail(trailCapacity),
	}
}

// Reset returns planet to its initial state and clears the trail
func (p *Planet) Reset() {
	p.State = p.Initial
	p.Trail.Reset()
}
