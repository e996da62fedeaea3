package status

import "sync/atomic"

// Metric keys published by the frame loop
const (
	KeySimDays     = "sim.days"
	KeySimSpeed    = "sim.speed"
	KeySimPlanets  = "sim.planets"
	KeyEnergyDrift = "sim.energy_drift"
	KeyFrameFPS    = "frame.fps"
	KeyFrameClamps = "frame.clamped"
	KeyCameraZoom  = "camera.zoom"
	KeyIntegrator  = "sim.integrator"
	KeyHovered     = "hover.name"
)

// Registry is the central metrics facade
// The frame loop binds pointers once and writes atomics directly; the exporter reads them
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Gauges *MetricMap[Gauge]
	Labels *MetricMap[Label]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Gauges: NewMetricMap[Gauge](),
		Labels: NewMetricMap[Label](),
	}
}
