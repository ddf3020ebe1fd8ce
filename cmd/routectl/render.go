package main

import (
	"delivery-route-optimizer/internal/domain"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// writePlanTable prints one row per leg with 2-decimal kilometers and a total row.
func writePlanTable(w io.Writer, p *domain.RoutePlan) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Algorithm: %s\n\n", p.Algorithm)
	fmt.Fprintln(tw, "From\tTo\tDistance (km)\tCumulative (km)")
	for _, l := range p.Summary.Legs {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%.2f\n", l.From, l.To, l.DistanceKm, l.CumulativeKm)
	}
	fmt.Fprintf(tw, "Total\t\t%.2f\t\n", p.Summary.TotalDistanceKm)

	return tw.Flush()
}

type jsonLeg struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	DistanceKm   float64 `json:"distance_km"`
	CumulativeKm float64 `json:"cumulative_km"`
}

type jsonPlan struct {
	Algorithm           string    `json:"algorithm"`
	Tour                []int     `json:"tour"`
	TotalDistanceMeters int64     `json:"total_distance_meters"`
	TotalDistanceKm     float64   `json:"total_distance_km"`
	Legs                []jsonLeg `json:"legs"`
}

func writePlanJSON(w io.Writer, p *domain.RoutePlan) error {
	out := jsonPlan{
		Algorithm:           string(p.Algorithm),
		Tour:                p.Tour,
		TotalDistanceMeters: p.TotalDistanceMeters,
		TotalDistanceKm:     p.Summary.TotalDistanceKm,
		Legs:                make([]jsonLeg, 0, len(p.Summary.Legs)),
	}
	for _, l := range p.Summary.Legs {
		out.Legs = append(out.Legs, jsonLeg{From: l.From, To: l.To, DistanceKm: l.DistanceKm, CumulativeKm: l.CumulativeKm})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeMatrix(w io.Writer, names []string, m domain.DistanceMatrix) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprint(tw, "\t")
	for _, n := range names {
		fmt.Fprintf(tw, "%s\t", n)
	}
	fmt.Fprintln(tw)

	for i, row := range m {
		fmt.Fprintf(tw, "%s\t", names[i])
		for _, d := range row {
			fmt.Fprintf(tw, "%d\t", d)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
