package parameter

import "time"

// Unit conversions, world unit is the meter
const (
	// AU is the astronomical unit in meters, same value the planet table was built with
	AU = 1.496e11

	// SecondsPerDay converts orbital periods given in days
	SecondsPerDay = 86400.0

	// SecondsPerHour for HUD time step display
	SecondsPerHour = 3600.0
)

// Gravity
const (
	// SunGM is the fallback standard gravitational parameter of the Sun (m³/s²)
	// Used only when no planet in the table can serve as the Kepler reference
	SunGM = 1.32712440018e20

	// MinSunDistance clamps |r| in the acceleration to avoid division blow-up
	MinSunDistance = 1e3

	// DefaultReferenceBody is the planet whose period and semi-major axis define GM
	DefaultReferenceBody = "Earth"
)

// Integration
const (
	// IntegratorSemiImplicitEuler updates velocity first, then position with the new velocity
	IntegratorSemiImplicitEuler = "semi-implicit-euler"

	// IntegratorExplicitEuler updates position with the pre-step velocity
	IntegratorExplicitEuler = "explicit-euler"

	// IntegratorRK4 is classic fourth-order Runge-Kutta
	IntegratorRK4 = "rk4"

	// DefaultIntegrator is symplectic and keeps orbits closed over long runs
	DefaultIntegrator = IntegratorSemiImplicitEuler
)

// Simulation clock
const (
	// DefaultSpeed is simulated seconds per real second
	// One simulated hour per frame at 60 FPS
	DefaultSpeed = 3600.0 * 60

	// MinSpeed and MaxSpeed bound the speed controls
	MinSpeed = 60.0
	MaxSpeed = 3600.0 * 24 * 365

	// SpeedStep is the multiplier applied by faster/slower
	SpeedStep = 2.0

	// DefaultMaxFrameTime caps real elapsed time per frame (window stalls, suspend)
	DefaultMaxFrameTime = 250 * time.Millisecond

	// DefaultMaxSubstep bounds a single integration step in simulated seconds
	DefaultMaxSubstep = 3600.0

	// MaxSubstepsPerFrame bounds work per frame when speed is very high
	MaxSubstepsPerFrame = 512
)

// Trail
const (
	// DefaultTrailCapacity is the number of recorded positions per planet
	DefaultTrailCapacity = 200
)

// Calendar
const (
	// J2000 is the Julian day of the default epoch, 2000-01-01 12:00 TT
	J2000 = 2451545.0
)
