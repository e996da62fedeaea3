package status

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "orrery"

// Exporter exposes registry metrics to prometheus
// Ints and gauges export as gauges; labels export as an info gauge with a value label
type Exporter struct {
	reg *Registry
}

// NewExporter wraps a registry as a prometheus.Collector
func NewExporter(reg *Registry) *Exporter {
	return &Exporter{reg: reg}
}

// MetricName converts a registry key to a prometheus metric name
func MetricName(key string) string {
	return prometheus.BuildFQName(namespace, "", strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

// Describe sends nothing, which makes this an unchecked collector with a dynamic metric set
func (x *Exporter) Describe(chan<- *prometheus.Desc) {}

// Collect snapshots every registry value
func (x *Exporter) Collect(ch chan<- prometheus.Metric) {
	for _, e := range x.reg.Gauges.Entries() {
		ch <- gauge(e.Name, e.Key, e.Value.Value())
	}
	for _, e := range x.reg.Ints.Entries() {
		ch <- gauge(e.Name, e.Key, float64(e.Value.Load()))
	}
	for _, e := range x.reg.Labels.Entries() {
		ch <- gauge(e.Name+"_info", e.Key, 1, e.Value.Value())
	}
}

// gauge builds a const gauge; a rejected value is reported as an invalid metric instead of panicking
func gauge(name, key string, v float64, value ...string) prometheus.Metric {
	var labels []string
	if len(value) > 0 {
		labels = []string{"value"}
	}
	desc := prometheus.NewDesc(name, "orrery metric "+key, labels, nil)
	m, err := prometheus.NewConstMetric(desc, prometheus.GaugeValue, v, value...)
	if err != nil {
		return prometheus.NewInvalidMetric(desc, err)
	}
	return m
}

// Handler returns an HTTP handler serving the registry on its own prometheus registry
func Handler(reg *Registry) (http.Handler, error) {
	pr := prometheus.NewRegistry()
	if err := pr.Register(NewExporter(reg)); err != nil {
		return nil, err
	}
	return promhttp.HandlerFor(pr, promhttp.HandlerOpts{ErrorHandling: promhttp.ContinueOnError}), nil
}
