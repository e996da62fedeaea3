package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources outside the frame loop: audio backend, metrics endpoint
//
// Lifecycle:
//  1. Construction
//  2. Start() - acquire resources, launch background goroutines
//  3. [runtime operation]
//  4. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}

type entry struct {
	svc      Service
	required bool
}

// Hub starts services in registration order and stops them in reverse
type Hub struct {
	mu      sync.Mutex
	entries []entry
	started []Service
	logger  log.Logger
}

// NewHub creates an empty hub
func NewHub(logger log.Logger) *Hub {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Hub{logger: log.With(logger, "component", "services")}
}

// Register adds a service; a required service failing to start aborts StartAll
func (h *Hub) Register(svc Service, required bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries, entry{svc: svc, required: required})
}

// StartAll starts every registered service
// Optional failures are logged and skipped; a required failure stops what was started and is returned
func (h *Hub) StartAll() error {
	h.mu.Lock()
	entries := append([]entry(nil), h.entries...)
	h.mu.Unlock()

	for _, e := range entries {
		if err := e.svc.Start(); err != nil {
			if e.required {
				h.StopAll()
				return fmt.Errorf("start %s: %w", e.svc.Name(), err)
			}
			level.Warn(h.logger).Log("msg", "optional service unavailable", "service", e.svc.Name(), "err", err)
			continue
		}
		level.Debug(h.logger).Log("msg", "service started", "service", e.svc.Name())

		h.mu.Lock()
		h.started = append(h.started, e.svc)
		h.mu.Unlock()
	}
	return nil
}

// StopAll stops started services in reverse order, returns joined stop errors
func (h *Hub) StopAll() error {
	h.mu.Lock()
	started := h.started
	h.started = nil
	h.mu.Unlock()

	var errs []error
	for i := len(started) - 1; i >= 0; i-- {
		if err := started[i].Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", started[i].Name(), err))
		}
	}
	return errors.Join(errs...)
}

// Running returns names of started services in start order
func (h *Hub) Running() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	names := make([]string, len(h.started))
	for i, s := range h.started {
		names[i] = s.Name()
	}
	return names
}
