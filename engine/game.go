package engine

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/soniakeys/meeus/v3/julian"
	"golang.org/x/time/rate"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/lixenwraith/orrery/input"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/status"
	"github.com/lixenwraith/orrery/system"
	"github.com/lixenwraith/orrery/vmath"
)

// GameConfig holds view and interaction settings
type GameConfig struct {
	Camera      system.CameraConfig
	ZoomStep    float64
	InnerZoom   float64
	HoverMargin float64
	Epoch       time.Time
	Metrics     *status.Registry // optional
}

// gameMetrics caches registry pointers for lock-free per-frame updates
type gameMetrics struct {
	days    *status.Gauge
	speed   *status.Gauge
	fps     *status.Gauge
	drift   *status.Gauge
	zoom    *status.Gauge
	clamped *atomic.Int64
	planets *atomic.Int64
	integ   *status.Label
	hovered *status.Label
}

func newGameMetrics(reg *status.Registry) *gameMetrics {
	return &gameMetrics{
		days:    reg.Gauges.Bind(status.KeySimDays),
		speed:   reg.Gauges.Bind(status.KeySimSpeed),
		fps:     reg.Gauges.Bind(status.KeyFrameFPS),
		drift:   reg.Gauges.Bind(status.KeyEnergyDrift),
		zoom:    reg.Gauges.Bind(status.KeyCameraZoom),
		clamped: reg.Ints.Bind(status.KeyFrameClamps),
		planets: reg.Ints.Bind(status.KeySimPlanets),
		integ:   reg.Labels.Bind(status.KeyIntegrator),
		hovered: reg.Labels.Bind(status.KeyHovered),
	}
}

// Game runs one frame of the orrery per Tick: input, camera, clock, propagation, projection, hover
// All state is owned by the frame loop goroutine
type Game struct {
	cfg    GameConfig
	sim    *Simulation
	clock  *SimulationClock
	camera *system.Camera

	timeProvider TimeProvider
	lastUpdate   time.Time

	following  int // planet index, -1 when free
	showTrails bool
	muted      bool
	hoverIndex int // -1 when nothing hovered

	epochJD float64

	fpsFrames int
	fpsReal   time.Duration

	metrics      *gameMetrics
	stallLimiter *rate.Limiter
	logger       log.Logger
}

// NewGame wires the simulation, clock and a camera fitted to the simulation extent
func NewGame(cfg GameConfig, sim *Simulation, clock *SimulationClock, tp TimeProvider, width, height int, logger log.Logger) *Game {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if tp == nil {
		tp = NewMonotonicTimeProvider()
	}
	if cfg.ZoomStep <= 1 {
		cfg.ZoomStep = parameter.DefaultZoomStep
	}
	if cfg.InnerZoom <= 0 {
		cfg.InnerZoom = parameter.DefaultInnerZoom
	}
	if cfg.HoverMargin < 0 {
		cfg.HoverMargin = parameter.DefaultHoverMargin
	}
	if cfg.Epoch.IsZero() {
		cfg.Epoch = julian.JDToTime(parameter.J2000)
	}

	g := &Game{
		cfg:          cfg,
		sim:          sim,
		clock:        clock,
		camera:       system.NewCamera(cfg.Camera, width, height, sim.Extent()),
		timeProvider: tp,
		lastUpdate:   tp.Now(),
		following:    -1,
		showTrails:   true,
		hoverIndex:   -1,
		epochJD:      julian.TimeToJD(cfg.Epoch),
		stallLimiter: rate.NewLimiter(rate.Every(parameter.StallLogInterval), 1),
		logger:       log.With(logger, "component", "game"),
	}
	if cfg.Metrics != nil {
		g.metrics = newGameMetrics(cfg.Metrics)
		g.metrics.planets.Store(int64(len(sim.Planets())))
		g.metrics.integ.Set(sim.Integrator().Name())
	}
	return g
}

// Camera exposes the view transform
func (g *Game) Camera() *system.Camera {
	return g.camera
}

// Clock exposes the simulation clock
func (g *Game) Clock() *SimulationClock {
	return g.clock
}

// Simulation exposes the planet set
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// SetMuted records the audio mute state for the HUD
func (g *Game) SetMuted(muted bool) {
	g.muted = muted
}

// Update runs a frame using real elapsed time from the time provider
func (g *Game) Update(in input.Snapshot) Frame {
	now := g.timeProvider.Now()
	frameTime := now.Sub(g.lastUpdate)
	g.lastUpdate = now
	return g.Tick(in, frameTime)
}

// Tick runs one frame with an explicit real elapsed time
func (g *Game) Tick(in input.Snapshot, frameTime time.Duration) Frame {
	g.applyInput(in)

	dt := g.clock.Advance(frameTime)
	if g.clock.LastClamped() && g.stallLimiter.Allow() {
		level.Debug(g.logger).Log("msg", "frame stall clamped", "frame_time", frameTime, "clamped_total", g.clock.ClampedFrames())
	}
	g.sim.Step(dt)

	if g.following >= 0 {
		g.camera.SetFocus(g.sim.Planets()[g.following].State.Position)
	}

	frame := g.buildFrame(in, dt)
	g.publish(&frame, frameTime)
	return frame
}

func (g *Game) applyInput(in input.Snapshot) {
	if in.Resized {
		g.camera.Resize(in.Width, in.Height)
	}
	if in.Reset {
		g.reset()
	}
	if in.TogglePause {
		paused := g.clock.TogglePause()
		level.Debug(g.logger).Log("msg", "pause toggled", "paused", paused)
	}
	if in.ToggleTrails {
		g.showTrails = !g.showTrails
	}

	for i := in.SpeedSteps; i > 0; i-- {
		g.clock.Faster()
	}
	for i := in.SpeedSteps; i < 0; i++ {
		g.clock.Slower()
	}

	if in.Follow != input.FollowNone {
		g.setFollow(in.Follow)
	}

	g.camera.PanBy(r2.Add(in.PanDelta, in.DragDelta))

	if in.ToggleZoom {
		// Both toggle targets are clamped to the reachable zoom range
		target := g.camera.ClampZoom(g.cfg.InnerZoom)
		if vmath.NearlyEqual(g.camera.Zoom(), target, 1e-9) {
			target = g.camera.ClampZoom(1)
		}
		g.camera.ZoomTo(target, g.camera.Center())
	}
	if in.ZoomSteps != 0 {
		g.camera.ZoomAtCenter(math.Pow(g.cfg.ZoomStep, float64(in.ZoomSteps)))
	}
	if in.WheelSteps != 0 {
		anchor := g.camera.Center()
		if in.CursorValid {
			anchor = in.Cursor
		}
		g.camera.ZoomBy(math.Pow(g.cfg.ZoomStep, float64(in.WheelSteps)), anchor)
	}
}

// setFollow selects 0 for the Sun or n for the n-th active planet; out of range keys are ignored
func (g *Game) setFollow(n int) {
	switch {
	case n == 0:
		g.following = -1
		g.camera.SetFocus(vmath.Vec2{})
	case n >= 1 && n <= len(g.sim.Planets()):
		g.following = n - 1
	}
}

func (g *Game) reset() {
	g.sim.Reset()
	g.clock.Reset()
	g.camera.Reset()
	g.following = -1
	g.hoverIndex = -1
	level.Info(g.logger).Log("msg", "simulation reset")
}

func (g *Game) buildFrame(in input.Snapshot, dt float64) Frame {
	w, h := g.camera.Size()
	sun := g.sim.Sun()
	frame := Frame{
		Width:  w,
		Height: h,
		Sun: BodyView{
			Index:  -1,
			Name:   sun.Name,
			Screen: g.camera.WorldToScreen(vmath.Vec2{}),
			Radius: sun.DisplayRadius * parameter.RadiusCellScale,
			Color:  sun.Color,
		},
	}

	planets := g.sim.Planets()
	frame.Planets = make([]BodyView, len(planets))
	targets := make([]system.HoverTarget, len(planets))
	for i, p := range planets {
		view := BodyView{
			Index:  i,
			Name:   p.Elements.Name,
			Screen: g.camera.WorldToScreen(p.State.Position),
			Radius: p.Elements.DisplayRadius * parameter.RadiusCellScale,
			Color:  p.Elements.Color,
		}
		if g.showTrails {
			view.Trail = g.projectTrail(i)
		}
		frame.Planets[i] = view
		targets[i] = system.HoverTarget{
			Index:  i,
			Name:   view.Name,
			Screen: view.Screen,
			Radius: view.Radius,
			World:  p.State.Position,
		}
	}

	prev := g.hoverIndex
	g.hoverIndex = -1
	if in.CursorValid {
		if hv, ok := system.ResolveHover(in.Cursor, targets, g.cfg.HoverMargin); ok {
			frame.Hover = hv
			frame.Hovered = true
			frame.HoverEntered = hv.Index != prev
			g.hoverIndex = hv.Index
		}
	}

	elapsedDays := g.clock.Elapsed() / parameter.SecondsPerDay
	jd := g.epochJD + elapsedDays
	frame.HUD = HUD{
		SimTime:     julian.JDToTime(jd),
		JulianDay:   jd,
		ElapsedDays: elapsedDays,
		Speed:       g.clock.Speed(),
		StepHours:   dt / parameter.SecondsPerHour,
		Zoom:        g.camera.Zoom(),
		Paused:      g.clock.IsPaused(),
		Integrator:  g.sim.Integrator().Name(),
		EnergyDrift: g.sim.EnergyDrift(max(g.following, 0)),
		Active:      len(planets),
		ShowTrails:  g.showTrails,
		Muted:       g.muted,
	}
	if g.following >= 0 {
		frame.HUD.Following = planets[g.following].Elements.Name
	}
	return frame
}

func (g *Game) projectTrail(i int) []TrailPoint {
	trail := g.sim.Planets()[i].Trail
	n := trail.Len()
	if n == 0 {
		return nil
	}
	points := make([]TrailPoint, 0, n)
	for j, pos := range trail.Snapshot() {
		opacity := parameter.TrailMinOpacity + (1-parameter.TrailMinOpacity)*float64(j+1)/float64(n)
		points = append(points, TrailPoint{Screen: g.camera.WorldToScreen(pos), Opacity: opacity})
	}
	return points
}

func (g *Game) publish(frame *Frame, frameTime time.Duration) {
	if g.metrics == nil {
		return
	}
	g.fpsFrames++
	g.fpsReal += frameTime
	if g.fpsReal >= time.Second {
		g.metrics.fps.Set(float64(g.fpsFrames) / g.fpsReal.Seconds())
		g.fpsFrames = 0
		g.fpsReal = 0
	}

	g.metrics.days.Set(frame.HUD.ElapsedDays)
	g.metrics.speed.Set(frame.HUD.Speed)
	g.metrics.drift.Set(frame.HUD.EnergyDrift)
	g.metrics.zoom.Set(frame.HUD.Zoom)
	g.metrics.clamped.Store(g.clock.ClampedFrames())
	if frame.Hovered {
		g.metrics.hovered.Set(frame.Hover.Name)
	} else {
		g.metrics.hovered.Set("")
	}
}
