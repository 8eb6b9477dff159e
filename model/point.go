package model

import (
	"errors"
	"fmt"
)

// ErrInvalidPoint indicates caller-supplied coordinates outside the valid range
var ErrInvalidPoint = errors.New("invalid coordinates")

// GeoPoint is a WGS84 latitude/longitude pair supplied by the caller
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// Validate checks the point against the valid coordinate ranges
func (p GeoPoint) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v is outside [-90, 90]", ErrInvalidPoint, p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v is outside [-180, 180]", ErrInvalidPoint, p.Longitude)
	}
	return nil
}

// PathRow identifies a single WRS-2 ground track grid cell. A point near a
// swath boundary can belong to more than one cell.
type PathRow struct {
	Path int `json:"path"`
	Row  int `json:"row"`
}

func (pr PathRow) String() string {
	return fmt.Sprintf("path %d row %d", pr.Path, pr.Row)
}
