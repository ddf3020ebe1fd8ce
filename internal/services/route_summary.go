package services

import (
	"delivery-route-optimizer/internal/domain"
	"fmt"
)

// Summarize converts a tour into ordered legs with per-leg and cumulative
// kilometers.
//
// The route starts at tour[0]; no particular depot index is assumed.
// names supplies the display name of each matrix index. Cumulative values are
// derived from an integer meter running sum, so the last leg's CumulativeKm
// equals TotalDistanceKm exactly.
func Summarize(tour domain.Tour, m domain.DistanceMatrix, names []string) (domain.RouteSummary, error) {
	n := m.Size()

	if err := tour.Validate(n); err != nil {
		return domain.RouteSummary{}, fmt.Errorf("summarize route: %w", err)
	}
	if len(names) != n {
		return domain.RouteSummary{}, fmt.Errorf(
			"summarize route: got %d names for %d locations: %w",
			len(names), n, domain.ErrInvalidInput,
		)
	}

	legs := make([]domain.RouteLeg, 0, len(tour)-1)
	var running int64

	for i := 0; i+1 < len(tour); i++ {
		from, to := tour[i], tour[i+1]
		d := m[from][to]
		running += d

		legs = append(legs, domain.RouteLeg{
			FromIndex:    from,
			ToIndex:      to,
			From:         names[from],
			To:           names[to],
			DistanceKm:   metersToKm(d),
			CumulativeKm: metersToKm(running),
		})
	}

	return domain.RouteSummary{
		Legs:                legs,
		TotalDistanceMeters: running,
		TotalDistanceKm:     metersToKm(running),
	}, nil
}

func metersToKm(m int64) float64 { return float64(m) / 1000 }
