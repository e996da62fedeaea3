package core

import "github.com/lixenwraith/orrery/vmath"

// PhysicalState is a heliocentric position and velocity in SI units
// Position in meters with the Sun at origin, Velocity in meters per second
type PhysicalState struct {
	Position vmath.Vec2
	Velocity vmath.Vec2
}
