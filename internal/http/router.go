// Package httpapi assembles the public HTTP surface: the submission endpoint,
// the draft endpoints, health, and metrics.
package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"onboard/internal/draft"
	employeehandler "onboard/internal/employee/handler"
	"onboard/internal/platform/middleware"
	"onboard/pkg/platform/httputil"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps carries everything the router mounts. Nil draft handler or health
// checkers are simply skipped.
type Deps struct {
	Employees *employeehandler.Handler
	Drafts    *draft.Handler
	Logger    *slog.Logger
	Checks    map[string]HealthChecker
}

// NewRouter wires middleware and routes. Submissions carry file uploads, so
// the request timeout is generous.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	r.Use(middleware.Timeout(2 * time.Minute))

	r.Mount("/employees", deps.Employees.Routes())
	if deps.Drafts != nil {
		r.Mount("/drafts", deps.Drafts.Routes())
	}

	r.Get("/healthz", healthHandler(deps.Checks))
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func healthHandler(checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		report := make(map[string]string, len(checks)+1)
		report["status"] = "ok"

		for name, check := range checks {
			if err := check.Health(ctx); err != nil {
				status = http.StatusServiceUnavailable
				report["status"] = "degraded"
				report[name] = err.Error()
				continue
			}
			report[name] = "ok"
		}

		httputil.WriteJSON(w, status, report)
	}
}
