package api

import (
	"delivery-route-optimizer/internal/api/handlers"
	"delivery-route-optimizer/internal/platform/metrics"
	"delivery-route-optimizer/internal/ports"
	"delivery-route-optimizer/internal/services"
	"net/http"
	"time"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// maxLocations caps the location list of a route request; zero disables the cap.
func NewRouter(repo ports.LocationRepository, planner *services.RoutePlanner, solveTimeout time.Duration, maxLocations int) http.Handler {
	mux := http.NewServeMux()

	locationHandler := &handlers.LocationHandler{Repo: repo}
	routeHandler := &handlers.RouteHandler{
		Repo:         repo,
		Planner:      planner,
		Timeout:      solveTimeout,
		MaxLocations: maxLocations,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/locations", locationHandler.List)
	mux.HandleFunc("/routes", routeHandler.Plan)
	mux.Handle("/metrics", metrics.Handler())

	return requestIDMiddleware(loggingMiddleware(mux))
}
