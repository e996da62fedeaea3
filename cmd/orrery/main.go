package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/lixenwraith/orrery/audio"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/input"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/physics"
	"github.com/lixenwraith/orrery/render"
	"github.com/lixenwraith/orrery/service"
	"github.com/lixenwraith/orrery/status"
	"github.com/lixenwraith/orrery/system"
)

var (
	configFlag     = flag.String("config", "", "TOML file overriding the built-in settings and planet table")
	debugFlag      = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	metricsFlag    = flag.String("metrics", "", "Serve Prometheus metrics on this address, e.g. :9100")
	muteFlag       = flag.Bool("mute", false, "Disable the hover chime")
	integratorFlag = flag.String("integrator", "", "Propagation scheme: semi-implicit-euler, explicit-euler, rk4")
)

func main() {
	flag.Parse()

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		fmt.Fprintf(os.Stderr, "orrery: %v\n", err)
		os.Exit(1)
	}
}

// applyFlags layers command-line settings over the loaded config
func applyFlags(cfg *config.Config) {
	if *integratorFlag != "" {
		cfg.Simulation.Integrator = *integratorFlag
	}
	if *metricsFlag != "" {
		cfg.MetricsAddr = *metricsFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
}

func run(cfg *config.Config, logger log.Logger) error {
	integ, err := physics.NewIntegrator(cfg.Simulation.Integrator)
	if err != nil {
		return err
	}

	sim, diags := engine.NewSimulation(engine.SimulationConfig{
		Integrator:    integ,
		MaxSubstep:    cfg.Simulation.MaxSubstep,
		TrailCapacity: cfg.TrailCapacity,
		ReferenceBody: cfg.Simulation.ReferenceBody,
	}, cfg.Sun, cfg.Planets, logger)
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "orrery: skipping planet: %v\n", d)
	}
	if len(sim.Planets()) == 0 {
		return errors.New("no valid planets in table")
	}

	reg := status.NewRegistry()
	chime := audio.NewChime(cfg.Audio.Volume, !cfg.Audio.Enabled, logger)

	services := service.NewHub(logger)
	if cfg.Audio.Enabled {
		// Non-fatal, the orrery runs without sound
		services.Register(chime, false)
	}
	if cfg.MetricsAddr != "" {
		services.Register(status.NewServer(cfg.MetricsAddr, reg, logger), true)
	}
	if err := services.StartAll(); err != nil {
		return err
	}
	defer services.StopAll()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			level.Error(logger).Log("msg", "crashed", "panic", fmt.Sprint(r))
			fmt.Fprintf(os.Stderr, "\nORRERY CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	width, height := screen.Size()
	clock := engine.NewSimulationClock(cfg.Simulation.Speed, cfg.Simulation.MaxFrameTime)
	game := engine.NewGame(engine.GameConfig{
		Camera: system.CameraConfig{
			MinZoom: cfg.Camera.MinZoom,
			MaxZoom: cfg.Camera.MaxZoom,
			Aspect:  parameter.CellAspect,
		},
		ZoomStep:    cfg.Camera.ZoomStep,
		InnerZoom:   cfg.Camera.InnerZoom,
		HoverMargin: cfg.HoverMargin,
		Epoch:       cfg.Simulation.Epoch,
		Metrics:     reg,
	}, sim, clock, engine.NewMonotonicTimeProvider(), width, height, logger)
	game.SetMuted(chime.Muted())

	loop := &frameLoop{
		screen:    screen,
		game:      game,
		renderer:  render.NewTerminalRenderer(screen),
		collector: input.NewCollector(cfg.Camera.PanStep, width, height),
		chime:     chime,
	}
	loop.run()

	level.Info(logger).Log("msg", "exit", "sim_days", clock.Elapsed()/parameter.SecondsPerDay)
	return nil
}

// frameLoop pumps terminal events into the collector and ticks the game at a fixed interval
type frameLoop struct {
	screen    tcell.Screen
	game      *engine.Game
	renderer  *render.TerminalRenderer
	collector *input.Collector
	chime     *audio.Chime
}

func (l *frameLoop) run() {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, parameter.EventQueueSize)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			l.collector.Handle(ev)
			if _, resized := ev.(*tcell.EventResize); resized {
				l.screen.Sync()
			}

		case <-ticker.C:
			if !l.tick() {
				return
			}
		}
	}
}

// tick advances one frame, false when the user asked to quit
func (l *frameLoop) tick() bool {
	snap := l.collector.Drain()
	if snap.Quit {
		return false
	}
	if snap.ToggleMute {
		l.game.SetMuted(l.chime.ToggleMute())
	}

	frame := l.game.Update(snap)
	if frame.HoverEntered {
		l.chime.Play()
	}
	l.renderer.RenderFrame(frame)
	return true
}
