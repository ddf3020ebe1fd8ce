package dto

type LocationRequest struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lon  *float64 `json:"lon"`
}

// RouteRequest plans over Locations, or over the stored locations when empty.
// The first location is the depot.
type RouteRequest struct {
	Locations     []LocationRequest `json:"locations"`
	Algorithm     string            `json:"algorithm"`
	MultiStart    int               `json:"multi_start"`
	IncludeMatrix bool              `json:"include_matrix"`
}

type RouteLegResponse struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	DistanceKm   float64 `json:"distance_km"`
	CumulativeKm float64 `json:"cumulative_km"`
}

type RouteResponse struct {
	Algorithm           string             `json:"algorithm"`
	Tour                []int              `json:"tour"`
	TotalDistanceMeters int64              `json:"total_distance_meters"`
	TotalDistanceKm     float64            `json:"total_distance_km"`
	Legs                []RouteLegResponse `json:"legs"`
	Matrix              [][]int64          `json:"matrix,omitempty"`
}
