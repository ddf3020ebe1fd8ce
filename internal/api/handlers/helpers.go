package handlers

import (
	"context"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/services"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// statusForError maps planning errors onto HTTP statuses.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoSolution), errors.Is(err, services.ErrSearchSpaceTooLarge):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// writePlanError reports client-facing errors verbatim and hides the rest.
func writePlanError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status := statusForError(err)
	if status == http.StatusInternalServerError {
		log.Printf("%s failed: %v", op, err)
		writeError(w, r, status, "internal server error")
		return
	}
	if status == http.StatusGatewayTimeout {
		writeError(w, r, status, "route planning timed out")
		return
	}
	writeError(w, r, status, err.Error())
}
