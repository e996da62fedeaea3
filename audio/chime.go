package audio

import (
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/orrery/parameter"
)

// Chime plays the hover sound through the system speaker
// Audio is optional: every method is safe without a working device
type Chime struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	muted       bool
	initialized bool
	logger      log.Logger
}

// NewChime creates an uninitialized chime player
func NewChime(volume float64, muted bool, logger log.Logger) *Chime {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Chime{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: volume,
		muted:  muted,
		logger: log.With(logger, "component", "audio"),
	}
}

// Initialize opens the speaker, a second call is a no-op
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(c.rate, c.rate.N(parameter.AudioBufferDuration)); err != nil {
		level.Warn(c.logger).Log("msg", "audio unavailable", "err", err)
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	level.Info(c.logger).Log("msg", "audio ready", "rate", int(c.rate))
	return nil
}

// Play queues one chime unless muted or uninitialized
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted {
		return
	}

	s := NewChimeSound(c.volume, c.rate)
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new state
func (c *Chime) ToggleMute() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = !c.muted
	return c.muted
}

// Muted reports whether playback is suppressed
func (c *Chime) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Ready reports whether the speaker was opened
func (c *Chime) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// Cleanup clears queued sounds and closes the speaker
func (c *Chime) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// Name implements service.Service
func (c *Chime) Name() string { return "audio" }

// Start implements service.Service
func (c *Chime) Start() error { return c.Initialize() }

// Stop implements service.Service
func (c *Chime) Stop() error {
	c.Cleanup()
	return nil
}
