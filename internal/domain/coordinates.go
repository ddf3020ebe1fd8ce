package domain

import (
	"fmt"
	"math"
)

// Immutable WGS-84 geographic coordinates in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Validate reports whether the coordinates lie inside the WGS-84 degree ranges.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]: %w", c.Lat, ErrInvalidInput)
	}
	if math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]: %w", c.Lon, ErrInvalidInput)
	}
	return nil
}

// Key returns a stable cache key. Seven decimals is ~1cm at the equator.
func (c Coordinates) Key() string { return fmt.Sprintf("%.7f,%.7f", c.Lat, c.Lon) }
