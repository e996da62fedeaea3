// Package config loads orrery settings from the embedded defaults, an optional TOML file and ORRERY_ environment variables
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/viper"

	"github.com/lixenwraith/orrery/asset"
	"github.com/lixenwraith/orrery/component"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/parameter"
	"github.com/lixenwraith/orrery/physics"
)

// EnvPrefix namespaces environment overrides, e.g. ORRERY_SIMULATION_SPEED
const EnvPrefix = "ORRERY"

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// SimulationConfig controls time and propagation
type SimulationConfig struct {
	Speed         float64 // simulated seconds per real second
	MaxFrameTime  time.Duration
	MaxSubstep    float64 // simulated seconds
	Integrator    string
	ReferenceBody string
	Epoch         time.Time
}

// CameraConfig controls zoom and pan steps
type CameraConfig struct {
	MinZoom   float64
	MaxZoom   float64
	ZoomStep  float64
	PanStep   float64
	InnerZoom float64
}

// AudioConfig controls the hover chime
type AudioConfig struct {
	Enabled bool
	Volume  float64
}

// Config is the resolved application configuration
type Config struct {
	Simulation    SimulationConfig
	Camera        CameraConfig
	TrailCapacity int
	HoverMargin   float64
	Audio         AudioConfig
	MetricsAddr   string

	Sun     component.BodyInfo
	Planets []component.OrbitalElements
}

type rawBody struct {
	Name       string  `mapstructure:"name"`
	A          float64 `mapstructure:"a_au"`
	E          float64 `mapstructure:"e"`
	PeriodDays float64 `mapstructure:"period_days"`
	Mass       float64 `mapstructure:"mass_kg"`
	Radius     float64 `mapstructure:"radius"`
	Color      []int   `mapstructure:"color"`
}

type rawConfig struct {
	Simulation struct {
		Speed         float64 `mapstructure:"speed"`
		MaxFrameMs    int     `mapstructure:"max_frame_ms"`
		MaxSubstepS   float64 `mapstructure:"max_substep_s"`
		Integrator    string  `mapstructure:"integrator"`
		ReferenceBody string  `mapstructure:"reference_body"`
		Epoch         string  `mapstructure:"epoch"`
	} `mapstructure:"simulation"`
	Camera struct {
		MinZoom   float64 `mapstructure:"min_zoom"`
		MaxZoom   float64 `mapstructure:"max_zoom"`
		ZoomStep  float64 `mapstructure:"zoom_step"`
		PanStep   float64 `mapstructure:"pan_step"`
		InnerZoom float64 `mapstructure:"inner_zoom"`
	} `mapstructure:"camera"`
	Trail struct {
		Capacity int `mapstructure:"capacity"`
	} `mapstructure:"trail"`
	Hover struct {
		Margin float64 `mapstructure:"margin"`
	} `mapstructure:"hover"`
	Audio struct {
		Enabled bool    `mapstructure:"enabled"`
		Volume  float64 `mapstructure:"volume"`
	} `mapstructure:"audio"`
	Metrics struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"metrics"`
	Sun     rawBody   `mapstructure:"sun"`
	Planets []rawBody `mapstructure:"planets"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("simulation.speed", parameter.DefaultSpeed)
	v.SetDefault("simulation.max_frame_ms", parameter.DefaultMaxFrameTime.Milliseconds())
	v.SetDefault("simulation.max_substep_s", parameter.DefaultMaxSubstep)
	v.SetDefault("simulation.integrator", parameter.DefaultIntegrator)
	v.SetDefault("simulation.reference_body", parameter.DefaultReferenceBody)
	v.SetDefault("simulation.epoch", julian.JDToTime(parameter.J2000).UTC().Format(time.RFC3339))
	v.SetDefault("camera.min_zoom", parameter.DefaultMinZoom)
	v.SetDefault("camera.max_zoom", parameter.DefaultMaxZoom)
	v.SetDefault("camera.zoom_step", parameter.DefaultZoomStep)
	v.SetDefault("camera.pan_step", parameter.DefaultPanStep)
	v.SetDefault("camera.inner_zoom", parameter.DefaultInnerZoom)
	v.SetDefault("trail.capacity", parameter.DefaultTrailCapacity)
	v.SetDefault("hover.margin", parameter.DefaultHoverMargin)
	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", parameter.DefaultVolume)
	v.SetDefault("metrics.addr", "")
}

// Load resolves configuration: code defaults, embedded table, optional file at path, then environment
// An empty path skips the file layer
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if err := v.ReadConfig(strings.NewReader(asset.DefaultConfigTOML)); err != nil {
		return nil, fmt.Errorf("embedded config: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg, err := raw.resolve()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *rawConfig) resolve() (*Config, error) {
	epoch, err := time.Parse(time.RFC3339, r.Simulation.Epoch)
	if err != nil {
		return nil, fmt.Errorf("%w: simulation.epoch: %v", ErrInvalidConfig, err)
	}

	cfg := &Config{
		Simulation: SimulationConfig{
			Speed:         r.Simulation.Speed,
			MaxFrameTime:  time.Duration(r.Simulation.MaxFrameMs) * time.Millisecond,
			MaxSubstep:    r.Simulation.MaxSubstepS,
			Integrator:    r.Simulation.Integrator,
			ReferenceBody: r.Simulation.ReferenceBody,
			Epoch:         epoch,
		},
		Camera: CameraConfig{
			MinZoom:   r.Camera.MinZoom,
			MaxZoom:   r.Camera.MaxZoom,
			ZoomStep:  r.Camera.ZoomStep,
			PanStep:   r.Camera.PanStep,
			InnerZoom: r.Camera.InnerZoom,
		},
		TrailCapacity: r.Trail.Capacity,
		HoverMargin:   r.Hover.Margin,
		Audio:         AudioConfig{Enabled: r.Audio.Enabled, Volume: r.Audio.Volume},
		MetricsAddr:   r.Metrics.Addr,
		Sun: component.BodyInfo{
			Name:          r.Sun.Name,
			Mass:          r.Sun.Mass,
			DisplayRadius: r.Sun.Radius,
			Color:         core.RGBFromSlice(r.Sun.Color),
		},
	}
	if cfg.Sun.Name == "" {
		cfg.Sun.Name = "Sun"
	}

	cfg.Planets = make([]component.OrbitalElements, 0, len(r.Planets))
	for _, p := range r.Planets {
		cfg.Planets = append(cfg.Planets, component.OrbitalElements{
			Name:              p.Name,
			SemiMajorAxisAU:   p.A,
			Eccentricity:      p.E,
			OrbitalPeriodDays: p.PeriodDays,
			Mass:              p.Mass,
			DisplayRadius:     p.Radius,
			Color:             core.RGBFromSlice(p.Color),
		})
	}
	return cfg, nil
}

// Validate checks settings that would make the simulation meaningless
// Planet elements are not checked here; invalid planets are excluded at simulation setup
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if _, err := physics.NewIntegrator(c.Simulation.Integrator); err != nil {
		fail("simulation.integrator: %v", err)
	}
	if c.Simulation.Speed <= 0 {
		fail("simulation.speed %g must be positive", c.Simulation.Speed)
	}
	if c.Simulation.MaxFrameTime <= 0 {
		fail("simulation.max_frame_ms %v must be positive", c.Simulation.MaxFrameTime)
	}
	if c.Simulation.MaxSubstep < 0 {
		fail("simulation.max_substep_s %g must not be negative", c.Simulation.MaxSubstep)
	}
	if c.TrailCapacity <= 0 {
		fail("trail.capacity %d must be positive", c.TrailCapacity)
	}
	if c.Camera.MinZoom <= 0 || c.Camera.MaxZoom < c.Camera.MinZoom {
		fail("camera zoom range [%g, %g] invalid", c.Camera.MinZoom, c.Camera.MaxZoom)
	}
	if c.Camera.InnerZoom < c.Camera.MinZoom || c.Camera.InnerZoom > c.Camera.MaxZoom {
		fail("camera.inner_zoom %g outside [%g, %g]", c.Camera.InnerZoom, c.Camera.MinZoom, c.Camera.MaxZoom)
	}
	if c.Camera.ZoomStep <= 1 {
		fail("camera.zoom_step %g must exceed 1", c.Camera.ZoomStep)
	}
	if c.HoverMargin < 0 {
		fail("hover.margin %g must not be negative", c.HoverMargin)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		fail("audio.volume %g outside [0, 1]", c.Audio.Volume)
	}

	return errors.Join(errs...)
}
