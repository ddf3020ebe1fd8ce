package domain

// A named stop on a route. Index 0 of any location list is the depot.
// ID is the repository key and is zero for ad-hoc input.
type Location struct {
	ID   int
	Name string
	Coordinates
}

// Names returns the display names of locations in index order.
func Names(locations []Location) []string {
	out := make([]string, len(locations))
	for i, l := range locations {
		out[i] = l.Name
	}
	return out
}
