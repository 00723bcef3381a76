package handlers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

const readinessTimeout = 3 * time.Second

// HealthHandler serves GET /health. It never touches a dependency.
type HealthHandler struct {
	started time.Time
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{started: time.Now()}
}

type livenessResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, livenessResponse{
		Status: "ok",
		Uptime: time.Since(h.started).Round(time.Second).String(),
	})
}

// Dependency is one backing service checked by the readiness check. Details,
// when set, is reported alongside a healthy status.
type Dependency struct {
	Name    string
	Ping    func(ctx context.Context) error
	Details func() any
}

// HealthDependenciesHandler serves GET /health/ready. Dependencies are
// pinged concurrently under one shared deadline.
type HealthDependenciesHandler struct {
	deps    []Dependency
	timeout time.Duration
}

func NewHealthDependenciesHandler(deps ...Dependency) *HealthDependenciesHandler {
	return &HealthDependenciesHandler{deps: deps, timeout: readinessTimeout}
}

type dependencyStatus struct {
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *HealthDependenciesHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	results := make([]dependencyStatus, len(h.deps))
	var wg sync.WaitGroup
	for i, d := range h.deps {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = check(ctx, d)
		}()
	}
	wg.Wait()

	resp := readinessResponse{Status: "ok", Dependencies: make(map[string]dependencyStatus, len(h.deps))}
	code := http.StatusOK
	for i, d := range h.deps {
		resp.Dependencies[d.Name] = results[i]
		if results[i].Status != "ok" {
			resp.Status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}
	return c.JSON(code, resp)
}

func check(ctx context.Context, d Dependency) dependencyStatus {
	if err := d.Ping(ctx); err != nil {
		return dependencyStatus{Status: "unhealthy", Error: err.Error()}
	}
	st := dependencyStatus{Status: "ok"}
	if d.Details != nil {
		st.Details = d.Details()
	}
	return st
}
