package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float metric written by the frame loop and read by the exporter
type Gauge struct {
	bits atomic.Uint64
}

// Set stores v
func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Value returns the last stored value, 0 before the first Set
func (g *Gauge) Value() float64 {
	return math.Float64frombits(g.bits.Load())
}
