package handlers

import (
	"context"
	"delivery-route-optimizer/internal/api/dto"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/ports"
	"delivery-route-optimizer/internal/services"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	maxMultiStart     = 64
	maxRouteBodyBytes = 1 << 20
)

type RouteHandler struct {
	Repo    ports.LocationRepository
	Planner *services.RoutePlanner
	Timeout time.Duration

	// Largest accepted len(locations). Zero means no cap.
	MaxLocations int
}

// Plan computes the shortest closed route over the request's locations, or
// over the stored locations when the request names none.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxRouteBodyBytes)
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	planner := *h.Planner
	if a := strings.ToLower(strings.TrimSpace(req.Algorithm)); a != "" {
		planner.Options.Algorithm = domain.Algorithm(a)
	}
	if req.MultiStart != 0 {
		if req.MultiStart < 1 || req.MultiStart > maxMultiStart {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("multi_start must be between 1 and %d", maxMultiStart))
			return
		}
		planner.Options.MultiStart = req.MultiStart
	}

	if h.MaxLocations > 0 && len(req.Locations) > h.MaxLocations {
		writeError(w, r, http.StatusBadRequest, fmt.Sprintf("at most %d locations per request, got %d", h.MaxLocations, len(req.Locations)))
		return
	}

	locations, err := requestLocations(req.Locations)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	if h.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.Timeout)
		defer cancel()
	}

	var plan *domain.RoutePlan
	if len(locations) == 0 {
		plan, err = planner.PlanStored(ctx, h.Repo)
	} else {
		plan, err = planner.Plan(ctx, locations)
	}
	if err != nil {
		writePlanError(w, r, "plan route", err)
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteResponse(plan, req.IncludeMatrix))
}

func requestLocations(in []dto.LocationRequest) ([]domain.Location, error) {
	out := make([]domain.Location, 0, len(in))
	for i, l := range in {
		if l.Lat == nil || l.Lon == nil {
			return nil, fmt.Errorf("locations[%d]: lat and lon are required", i)
		}

		name := strings.TrimSpace(l.Name)
		if name == "" {
			name = fmt.Sprintf("location %d", i)
		}

		out = append(out, domain.Location{
			Name:        name,
			Coordinates: domain.Coordinates{Lat: *l.Lat, Lon: *l.Lon},
		})
	}
	return out, nil
}

func toRouteResponse(p *domain.RoutePlan, includeMatrix bool) dto.RouteResponse {
	res := dto.RouteResponse{
		Algorithm:           string(p.Algorithm),
		Tour:                p.Tour,
		TotalDistanceMeters: p.TotalDistanceMeters,
		TotalDistanceKm:     p.Summary.TotalDistanceKm,
		Legs:                make([]dto.RouteLegResponse, 0, len(p.Summary.Legs)),
	}

	for _, l := range p.Summary.Legs {
		res.Legs = append(res.Legs, dto.RouteLegResponse{
			From:         l.From,
			To:           l.To,
			DistanceKm:   l.DistanceKm,
			CumulativeKm: l.CumulativeKm,
		})
	}

	if includeMatrix {
		res.Matrix = p.Matrix
	}

	return res
}
