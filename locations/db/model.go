package db

import "time"

// SavedLocation is one row of the saved_locations table
type SavedLocation struct {
	ID               int64
	Name             string
	Latitude         float64
	Longitude        float64
	WRSPath          int
	WRSRow           int
	PredictionStatus string
	NextOverpassDate string
	NextOverpassTime string
	DateSaved        time.Time
}
