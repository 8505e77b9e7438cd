package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tour-planner-service/internal/api/handlers"
	"tour-planner-service/internal/platform/metrics"
	"tour-planner-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	repo ports.LocationRepository,
	source ports.LocationSource,
	solver ports.TourSolver,
) http.Handler {
	mux := http.NewServeMux()

	locHandler := &handlers.LocationHandler{Repo: repo}
	tourHandler := &handlers.TourHandler{
		Repo:   repo,
		Source: source,
		Solver: solver,
	}

	metrics.RegisterDefault()

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/locations", locHandler.List)
	mux.HandleFunc("/tours", tourHandler.Plan)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
