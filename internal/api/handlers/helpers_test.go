package handlers

import (
	"context"
	"delivery-route-optimizer/internal/domain"
	"delivery-route-optimizer/internal/services"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("plan: %w", domain.ErrInvalidInput), http.StatusBadRequest},
		{fmt.Errorf("plan: %w", domain.ErrNoSolution), http.StatusUnprocessableEntity},
		{fmt.Errorf("plan: %w", services.ErrSearchSpaceTooLarge), http.StatusUnprocessableEntity},
		{fmt.Errorf("plan: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := statusForError(tc.err); got != tc.want {
			t.Fatalf("statusForError(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
