package engine

import (
	"time"

	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/vmath"
)

// SimulationClock converts real frame time into simulated seconds
// Pausing forces dt to zero while keeping accumulated elapsed time
// Owned by the frame loop, not safe for concurrent use
type SimulationClock struct {
	speed    float64       // simulated seconds per real second
	maxFrame time.Duration // real elapsed cap per frame

	paused bool

	elapsed     float64 // simulated seconds since reset
	lastDt      float64
	lastClamped bool
	clamped     int64
}

// NewSimulationClock creates a running clock
// Non-positive speed falls back to parameter.DefaultSpeed
func NewSimulationClock(speed float64, maxFrame time.Duration) *SimulationClock {
	c := &SimulationClock{maxFrame: maxFrame}
	if speed <= 0 || !vmath.Finite(speed) {
		speed = parameter.DefaultSpeed
	}
	c.SetSpeed(speed)
	return c
}

// Advance consumes one frame of real elapsed time and returns the simulated dt
func (c *SimulationClock) Advance(frameTime time.Duration) float64 {
	c.lastDt = 0
	c.lastClamped = false
	if c.paused || frameTime <= 0 {
		return 0
	}

	if c.maxFrame > 0 && frameTime > c.maxFrame {
		frameTime = c.maxFrame
		c.lastClamped = true
		c.clamped++
	}

	dt := frameTime.Seconds() * c.speed
	c.elapsed += dt
	c.lastDt = dt
	return dt
}

// Pause stops simulated time advancement
func (c *SimulationClock) Pause() {
	c.paused = true
}

// Resume continues simulated time advancement
func (c *SimulationClock) Resume() {
	c.paused = false
}

// TogglePause flips the paused state and returns the new state
func (c *SimulationClock) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

// IsPaused returns true if clock is paused
func (c *SimulationClock) IsPaused() bool {
	return c.paused
}

// SetSpeed sets simulated seconds per real second, clamped to [MinSpeed, MaxSpeed]
func (c *SimulationClock) SetSpeed(speed float64) {
	if !vmath.Finite(speed) {
		return
	}
	c.speed = vmath.Clamp(speed, parameter.MinSpeed, parameter.MaxSpeed)
}

// Speed returns simulated seconds per real second
func (c *SimulationClock) Speed() float64 {
	return c.speed
}

// Faster multiplies speed by parameter.SpeedStep
func (c *SimulationClock) Faster() {
	c.SetSpeed(c.speed * parameter.SpeedStep)
}

// Slower divides speed by parameter.SpeedStep
func (c *SimulationClock) Slower() {
	c.SetSpeed(c.speed / parameter.SpeedStep)
}

// Reset zeroes elapsed time and diagnostics, keeping speed and pause state
func (c *SimulationClock) Reset() {
	c.elapsed = 0
	c.lastDt = 0
	c.lastClamped = false
	c.clamped = 0
}

// Elapsed returns simulated seconds since the last reset
func (c *SimulationClock) Elapsed() float64 {
	return c.elapsed
}

// LastDt returns the dt produced by the latest Advance
func (c *SimulationClock) LastDt() float64 {
	return c.lastDt
}

// LastClamped reports whether the latest Advance hit the frame time cap
func (c *SimulationClock) LastClamped() bool {
	return c.lastClamped
}

// ClampedFrames returns the number of frames whose real time was capped
func (c *SimulationClock) ClampedFrames() int64 {
	return c.clamped
}
