package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/geojson-go/geojson"
)

func TestOverpassData_Apply(t *testing.T) {
	// Mock
	feature := geojson.NewFeature(nil, "test-id", nil)
	data := OverpassData{
		PathRow:          PathRow{Path: 44, Row: 34},
		NextOverpassDate: "2024-09-26",
		NextOverpassTime: "03:15:22",
	}

	// Tested code
	err := data.Apply(feature)

	// Asserts
	assert.Nil(t, err)
	assert.Equal(t, 44, feature.Properties["path"])
	assert.Equal(t, 34, feature.Properties["row"])
	assert.Equal(t, "2024-09-26", feature.PropertyString("nextOverpassDate"))
	assert.Equal(t, "03:15:22", feature.PropertyString("nextOverpassTime"))
}
