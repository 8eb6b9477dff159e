package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeoPoint_Validate(t *testing.T) {
	assert.Nil(t, GeoPoint{Latitude: 37.77, Longitude: -122.42}.Validate())
	assert.Nil(t, GeoPoint{Latitude: 0, Longitude: 0}.Validate())

	// boundary values are valid
	assert.Nil(t, GeoPoint{Latitude: 90, Longitude: 180}.Validate())
	assert.Nil(t, GeoPoint{Latitude: -90, Longitude: -180}.Validate())

	assert.ErrorIs(t, GeoPoint{Latitude: 90.1, Longitude: 0}.Validate(), ErrInvalidPoint)
	assert.ErrorIs(t, GeoPoint{Latitude: -90.1, Longitude: 0}.Validate(), ErrInvalidPoint)
	assert.ErrorIs(t, GeoPoint{Latitude: 0, Longitude: 180.1}.Validate(), ErrInvalidPoint)
	assert.ErrorIs(t, GeoPoint{Latitude: 0, Longitude: -180.1}.Validate(), ErrInvalidPoint)
}

func TestPathRow_String(t *testing.T) {
	assert.Equal(t, "path 44 row 34", PathRow{Path: 44, Row: 34}.String())
}
