package domain

import "errors"

var (
	// ErrInvalidInput marks malformed or insufficient location data.
	// The caller must correct the input; retrying cannot succeed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSolution is returned when no closed tour exists for a distance matrix,
	// which only happens when the matrix itself is inconsistent.
	ErrNoSolution = errors.New("no solution")

	// ErrInvalidTour marks a tour that breaks its structural invariants.
	ErrInvalidTour = errors.New("invalid tour")
)
