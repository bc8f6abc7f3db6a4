// Package health reports whether the server and its backing services are
// reachable.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Probe returns an error when a dependency is unavailable.
type Probe func(ctx context.Context) error

// Detail reports an informational value that never fails the check.
type Detail func(ctx context.Context) interface{}

type Status struct {
	Healthy   bool                   `json:"healthy"`
	Checks    map[string]string      `json:"checks"`
	Details   map[string]interface{} `json:"details,omitempty"`
	CheckedAt time.Time              `json:"checked_at"`
}

// Checker runs every registered probe on each request.
type Checker struct {
	timeout time.Duration

	mu      sync.RWMutex
	probes  map[string]Probe
	details map[string]Detail
}

func NewChecker(timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Checker{
		timeout: timeout,
		probes:  make(map[string]Probe),
		details: make(map[string]Detail),
	}
}

func (c *Checker) AddProbe(name string, p Probe) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.probes[name] = p
}

func (c *Checker) AddDetail(name string, d Detail) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.details[name] = d
}

// Check runs probes in name order. Any failing probe marks the status
// unhealthy.
func (c *Checker) Check(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.mu.RLock()
	defer c.mu.RUnlock()

	status := Status{
		Healthy:   true,
		Checks:    make(map[string]string, len(c.probes)),
		CheckedAt: time.Now().UTC(),
	}
	names := make([]string, 0, len(c.probes))
	for name := range c.probes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := c.probes[name](ctx); err != nil {
			status.Healthy = false
			status.Checks[name] = err.Error()
			continue
		}
		status.Checks[name] = "ok"
	}

	if len(c.details) > 0 {
		status.Details = make(map[string]interface{}, len(c.details))
		for name, d := range c.details {
			status.Details[name] = d(ctx)
		}
	}
	return status
}

func (c *Checker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := c.Check(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if !status.Healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(status); err != nil {
		log.Error().Err(err).Msg("failed to write health check response")
	}
}
