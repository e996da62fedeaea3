package parameter

import "time"

// Audio hardware settings
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
)

// Hover chime
const (
	ChimeFrequency = 880.0
	ChimeOvertone  = 1760.0
	ChimeDuration  = 120 * time.Millisecond
	ChimeAttack    = 5 * time.Millisecond
	ChimeRelease   = 90 * time.Millisecond

	DefaultVolume = 0.3
)
