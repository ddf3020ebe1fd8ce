package handlers

import (
	"delivery-route-optimizer/internal/api/dto"
	"delivery-route-optimizer/internal/ports"
	"log"
	"net/http"
)

// LocationHandler exposes the stored location list.
type LocationHandler struct {
	Repo ports.LocationRepository
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	locs, err := h.Repo.ListLocations(r.Context())
	if err != nil {
		log.Printf("list locations failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListLocationsResponse{
		Locations: make([]dto.LocationResponse, 0, len(locs)),
	}
	for i, l := range locs {
		res.Locations = append(res.Locations, dto.LocationResponse{
			LocationID: l.ID,
			Name:       l.Name,
			Lat:        l.Lat,
			Lon:        l.Lon,
			IsDepot:    i == 0,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
