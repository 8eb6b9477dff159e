package locations

import (
	"testing"
	"time"

	"github.com/ishaanJ91/landsat/locations/db"
	"github.com/stretchr/testify/assert"
)

var sampleLocation = db.SavedLocation{
	ID:               7,
	Name:             "Golden Gate",
	Latitude:         37.77,
	Longitude:        -122.42,
	WRSPath:          44,
	WRSRow:           34,
	PredictionStatus: "success",
	NextOverpassDate: "2024-09-26",
	NextOverpassTime: "03:15:22",
	DateSaved:        time.Date(2024, time.September, 10, 12, 0, 0, 0, time.UTC),
}

var sampleNotFoundLocation = db.SavedLocation{
	ID:               8,
	Name:             "Nowhere",
	Latitude:         0,
	Longitude:        0,
	PredictionStatus: "notfound",
	DateSaved:        time.Date(2024, time.September, 11, 12, 0, 0, 0, time.UTC),
}

func TestLocationResultGeoJSONFeature(t *testing.T) {
	feature, err := locationResult{SavedLocation: sampleLocation}.GeoJSONFeature()
	assert.Nil(t, err, "%v", err)

	assert.Equal(t, "7", feature.IDStr())
	assert.Equal(t, "Golden Gate", feature.Properties["name"])
	assert.Equal(t, "success", feature.Properties["predictionStatus"])
	assert.Equal(t, "2024-09-10", feature.Properties["dateSaved"])
	assert.Equal(t, 44, feature.Properties["path"])
	assert.Equal(t, 34, feature.Properties["row"])
	assert.Equal(t, "2024-09-26", feature.Properties["nextOverpassDate"])
	assert.Equal(t, "03:15:22", feature.Properties["nextOverpassTime"])
	assert.NotNil(t, feature.Bbox)
}

func TestLocationResultGeoJSONFeature_NoPrediction(t *testing.T) {
	feature, err := locationResult{SavedLocation: sampleNotFoundLocation}.GeoJSONFeature()
	assert.Nil(t, err, "%v", err)

	assert.Equal(t, "notfound", feature.Properties["predictionStatus"])
	assert.NotContains(t, feature.Properties, "path")
	assert.NotContains(t, feature.Properties, "nextOverpassDate")
}

func TestExportResult(t *testing.T) {
	collection, err := exportResult([]db.SavedLocation{sampleLocation, sampleNotFoundLocation}).GeoJSONFeatureCollection()
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, 2, len(collection.Features))
}

func TestExportResult_Empty(t *testing.T) {
	collection, err := exportResult(nil).GeoJSONFeatureCollection()
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, 0, len(collection.Features))
}
