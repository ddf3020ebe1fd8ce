package dto

type LocationResponse struct {
	LocationID int     `json:"location_id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	IsDepot    bool    `json:"is_depot"`
}

type ListLocationsResponse struct {
	Locations []LocationResponse `json:"locations"`
}
