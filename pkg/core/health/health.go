// ============================================================================
// wandler - Naming Convention Converter
// ============================================================================
//
// Package:     health
// Description: Readiness checks reported by the session host
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/msto63/wandler/internal/transform"
)

// Status represents the health status of a component
type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusDegraded  Status = "degraded"
	StatusUnknown   Status = "unknown"
)

// CheckResult represents the result of a single check
type CheckResult struct {
	Name     string         `json:"name"`
	Status   Status         `json:"status"`
	Message  string         `json:"message,omitempty"`
	Duration time.Duration  `json:"duration"`
	Details  map[string]any `json:"details,omitempty"`
}

// Checker is implemented by every health check
type Checker interface {
	Name() string
	Check(ctx context.Context) CheckResult
}

type namedCheck struct {
	name string
	fn   func(ctx context.Context) CheckResult
}

// NewChecker creates a named checker from a function
func NewChecker(name string, fn func(ctx context.Context) CheckResult) Checker {
	return &namedCheck{name: name, fn: fn}
}

func (c *namedCheck) Name() string                          { return c.name }
func (c *namedCheck) Check(ctx context.Context) CheckResult { return c.fn(ctx) }

// Registry runs a set of checkers and folds them into one Report
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	service  string
	version  string
	startAt  time.Time
}

// NewRegistry creates an empty registry for the named service
func NewRegistry(service, version string) *Registry {
	return &Registry{
		checkers: make(map[string]Checker),
		service:  service,
		version:  version,
		startAt:  time.Now(),
	}
}

// Register adds or replaces a checker
func (r *Registry) Register(checker Checker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[checker.Name()] = checker
}

// Check runs all checkers concurrently. Any unhealthy check makes the
// report unhealthy; otherwise any degraded check makes it degraded.
func (r *Registry) Check(ctx context.Context) *Report {
	r.mu.RLock()
	checkers := make([]Checker, 0, len(r.checkers))
	for _, c := range r.checkers {
		checkers = append(checkers, c)
	}
	r.mu.RUnlock()

	results := make([]CheckResult, len(checkers))
	var wg sync.WaitGroup
	for i, checker := range checkers {
		wg.Add(1)
		go func(i int, c Checker) {
			defer wg.Done()
			start := time.Now()
			result := c.Check(ctx)
			result.Duration = time.Since(start)
			if result.Name == "" {
				result.Name = c.Name()
			}
			results[i] = result
		}(i, checker)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	overall := StatusHealthy
	for _, result := range results {
		switch result.Status {
		case StatusUnhealthy:
			overall = StatusUnhealthy
		case StatusDegraded:
			if overall != StatusUnhealthy {
				overall = StatusDegraded
			}
		}
	}

	return &Report{
		Service:   r.service,
		Version:   r.version,
		Status:    overall,
		Uptime:    time.Since(r.startAt).Round(time.Second).String(),
		Timestamp: time.Now().UTC(),
		Checks:    results,
	}
}

// Handler serves the report as JSON. Unhealthy reports answer 503.
func (r *Registry) Handler(timeout time.Duration) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), timeout)
		defer cancel()

		report := r.Check(ctx)
		code := http.StatusOK
		if report.Status == StatusUnhealthy {
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(report)
	})
}

// Report is the overall health report
type Report struct {
	Service   string        `json:"service"`
	Version   string        `json:"version"`
	Status    Status        `json:"status"`
	Uptime    string        `json:"uptime"`
	Timestamp time.Time     `json:"timestamp"`
	Checks    []CheckResult `json:"checks"`
}

// String returns a one-line summary
func (r *Report) String() string {
	return fmt.Sprintf("Service: %s, Status: %s, Uptime: %s, Checks: %d",
		r.Service, r.Status, r.Uptime, len(r.Checks))
}

// CatalogCheck probes every catalog entry with a short sample so a broken
// registration shows up before a client hits it.
func CatalogCheck(c *transform.Catalog) Checker {
	return NewChecker("catalog", func(ctx context.Context) CheckResult {
		result := CheckResult{Name: "catalog", Status: StatusHealthy}
		entries := c.Entries()
		result.Details = map[string]any{"transforms": len(entries)}

		if len(entries) == 0 {
			result.Status = StatusUnhealthy
			result.Message = "no transforms registered"
			return result
		}

		var failed []string
		for _, e := range entries {
			if ctx.Err() != nil {
				result.Status = StatusUnknown
				result.Message = ctx.Err().Error()
				return result
			}
			if _, err := e.Apply("Health Check", transform.Args{Pattern: "Check", Replacement: "Probe"}); err != nil {
				failed = append(failed, string(e.ID))
			}
		}
		if len(failed) > 0 {
			result.Status = StatusUnhealthy
			result.Message = fmt.Sprintf("%d transforms failed the probe", len(failed))
			result.Details["failed"] = failed
			return result
		}
		result.Message = "all transforms respond"
		return result
	})
}

// ClipboardCheck reports degraded when no system clipboard is reachable.
// The session host works without one; only the terminal UI copy and paste
// keys are affected.
func ClipboardCheck() Checker {
	return NewChecker("clipboard", func(ctx context.Context) CheckResult {
		if clipboard.Unsupported {
			return CheckResult{
				Name:    "clipboard",
				Status:  StatusDegraded,
				Message: "no clipboard utility found",
			}
		}
		return CheckResult{Name: "clipboard", Status: StatusHealthy}
	})
}

// SessionsCheck reports the number of live sessions and degrades once the
// count reaches limit. A limit of zero disables the threshold.
func SessionsCheck(count func() int, limit int) Checker {
	return NewChecker("sessions", func(ctx context.Context) CheckResult {
		n := count()
		result := CheckResult{
			Name:    "sessions",
			Status:  StatusHealthy,
			Details: map[string]any{"active": n},
		}
		if limit > 0 && n >= limit {
			result.Status = StatusDegraded
			result.Message = fmt.Sprintf("%d of %d sessions in use", n, limit)
		}
		return result
	})
}
