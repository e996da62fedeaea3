package status

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/lixenwraith/orrery/service"
)

var _ service.Service = (*Server)(nil)

func TestServerServesMetrics(t *testing.T) {
	reg := NewRegistry()
	reg.Gauges.Bind(KeySimDays).Set(365)

	s := NewServer("127.0.0.1:0", reg, nil)
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer s.Stop()

	resp, err := http.Get("http://" + s.Addr() + "/metrics")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if !strings.Contains(string(body), "orrery_sim_days 365") {
		t.Errorf("Expected sim days gauge, got:\n%s", body)
	}
}

func TestServerStopIdempotent(t *testing.T) {
	s := NewServer("127.0.0.1:0", NewRegistry(), nil)
	if err := s.Stop(); err != nil {
		t.Errorf("Expected stop before start to succeed, got %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Expected second stop to succeed, got %v", err)
	}
	if s.Addr() != "" {
		t.Errorf("Expected empty addr after stop, got %q", s.Addr())
	}
}

func TestServerStartFailsOnBadAddr(t *testing.T) {
	s := NewServer("not-an-address", NewRegistry(), nil)
	if err := s.Start(); err == nil {
		s.Stop()
		t.Error("Expected listen error")
	}
}
