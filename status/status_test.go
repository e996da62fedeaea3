package status

import (
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMetricMapBindCachesPointer(t *testing.T) {
	m := NewMetricMap[Gauge]()
	a := m.Bind("x")
	a.Set(2.5)
	if b := m.Bind("x"); b != a || b.Value() != 2.5 {
		t.Errorf("Expected cached pointer with 2.5, got %v", b.Value())
	}
	if m.Len() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Len())
	}
}

func TestMetricMapConcurrentBind(t *testing.T) {
	m := NewMetricMap[Gauge]()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Bind("shared").Set(float64(j))
			}
		}()
	}
	wg.Wait()
	if m.Len() != 1 {
		t.Errorf("Expected single shared metric, got %d", m.Len())
	}
}

func TestMetricMapEntriesSortedWithNames(t *testing.T) {
	m := NewMetricMap[Gauge]()
	m.Bind(KeySimSpeed)
	m.Bind(KeyCameraZoom)
	m.Bind(KeySimDays)

	entries := m.Entries()
	var keys, names []string
	for _, e := range entries {
		keys = append(keys, e.Key)
		names = append(names, e.Name)
	}
	if got := strings.Join(keys, ","); got != "camera.zoom,sim.days,sim.speed" {
		t.Errorf("Expected sorted keys, got %s", got)
	}
	if got := strings.Join(names, ","); got != "orrery_camera_zoom,orrery_sim_days,orrery_sim_speed" {
		t.Errorf("Expected exported names, got %s", got)
	}

	// Snapshot is detached from later registrations
	m.Bind("a.first")
	if len(entries) != 3 || m.Len() != 4 {
		t.Errorf("Expected detached snapshot of 3 and map of 4, got %d and %d", len(entries), m.Len())
	}
}

func TestLabelSet(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"short", "Earth", "Earth"},
		{"ascii cut", strings.Repeat("x", MaxLabelLen+10), strings.Repeat("x", MaxLabelLen)},
		{"multibyte at limit", strings.Repeat("a", MaxLabelLen-1) + "ö", strings.Repeat("a", MaxLabelLen-1)},
		{"multibyte fits", strings.Repeat("a", MaxLabelLen-2) + "ö", strings.Repeat("a", MaxLabelLen-2) + "ö"},
		{"invalid bytes", "Ea\xffrth", "Ea\uFFFDrth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l Label
			l.Set(tt.in)
			got := l.Value()
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
			if !utf8.ValidString(got) || len(got) > MaxLabelLen {
				t.Errorf("Expected valid label of at most %d bytes, got %q", MaxLabelLen, got)
			}
		})
	}
}

func TestMetricName(t *testing.T) {
	if got := MetricName(KeySimDays); got != "orrery_sim_days" {
		t.Errorf("Expected orrery_sim_days, got %s", got)
	}
	if got := MetricName(KeyEnergyDrift); got != "orrery_sim_energy_drift" {
		t.Errorf("Expected orrery_sim_energy_drift, got %s", got)
	}
}

func TestExporterCollect(t *testing.T) {
	reg := NewRegistry()
	reg.Gauges.Bind(KeySimDays).Set(42.5)
	reg.Ints.Bind(KeySimPlanets).Store(9)
	reg.Labels.Bind(KeyIntegrator).Set("rk4")

	ch := make(chan prometheus.Metric, 10)
	NewExporter(reg).Collect(ch)
	close(ch)

	n := 0
	for range ch {
		n++
	}
	if n != 3 {
		t.Errorf("Expected 3 metrics, got %d", n)
	}
}

func scrape(t *testing.T, reg *Registry) (int, string) {
	t.Helper()
	h, err := Handler(reg)
	if err != nil {
		t.Fatalf("Handler: %v", err)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	return rec.Code, string(body)
}

func TestHandlerServesMetrics(t *testing.T) {
	reg := NewRegistry()
	reg.Gauges.Bind(KeyCameraZoom).Set(4)
	reg.Labels.Bind(KeyHovered).Set("Earth")

	_, body := scrape(t, reg)
	if !strings.Contains(body, "orrery_camera_zoom 4") {
		t.Errorf("Expected zoom gauge in output, got:\n%s", body)
	}
	if !strings.Contains(body, `orrery_hover_name_info{value="Earth"} 1`) {
		t.Errorf("Expected hover info gauge in output, got:\n%s", body)
	}
}

func TestHandlerServesLongMultibyteLabel(t *testing.T) {
	reg := NewRegistry()
	reg.Labels.Bind(KeyHovered).Set(strings.Repeat("a", MaxLabelLen-1) + "ö")
	reg.Gauges.Bind(KeySimDays).Set(1)

	code, body := scrape(t, reg)
	if code != 200 {
		t.Fatalf("Expected status 200, got %d:\n%s", code, body)
	}
	want := `orrery_hover_name_info{value="` + strings.Repeat("a", MaxLabelLen-1) + `"} 1`
	if !strings.Contains(body, want) {
		t.Errorf("Expected truncated hover label, got:\n%s", body)
	}
	if !strings.Contains(body, "orrery_sim_days 1") {
		t.Errorf("Expected remaining gauges exported, got:\n%s", body)
	}
}

func TestGaugeRejectsInvalidLabelWithoutPanic(t *testing.T) {
	m := gauge("orrery_test_info", "test", 1, "bad\xc3")
	if err := m.Write(nil); err == nil {
		t.Error("Expected invalid metric for non-UTF-8 label value")
	}
}
