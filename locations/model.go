package locations

import (
	"database/sql"
	"strconv"

	"github.com/ishaanJ91/landsat/locations/db"
	"github.com/ishaanJ91/landsat/model"
	"github.com/ishaanJ91/landsat/overpass"
	"github.com/ishaanJ91/landsat/util"
	"github.com/venicegeo/geojson-go/geojson"
)

// Context is the context for saved location operations
type Context struct {
	DB        *sql.DB
	Overpass  *overpass.Context
	sessionID string
}

// AppName returns the service name
func (c *Context) AppName() string {
	return "landsat-overpass"
}

// SessionID returns a Session ID, creating one if needed
func (c *Context) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = util.PsuUUID()
	}
	return c.sessionID
}

// LogRootDir returns an empty string
func (c *Context) LogRootDir() string {
	return ""
}

// locationResult wraps a saved location row for GeoJSON export
type locationResult struct {
	db.SavedLocation
}

// GeoJSONFeature implements the model.GeoJSONFeatureCreator interface
func (result locationResult) GeoJSONFeature() (*geojson.Feature, error) {
	properties := map[string]interface{}{
		"name":             result.Name,
		"predictionStatus": result.PredictionStatus,
		"dateSaved":        result.DateSaved.Format(model.DateLayout),
	}
	feature := geojson.NewFeature(
		geojson.NewPoint([]float64{result.Longitude, result.Latitude}),
		strconv.FormatInt(result.ID, 10),
		properties,
	)

	if result.PredictionStatus == string(model.StatusSuccess) {
		overpassData := model.OverpassData{
			PathRow:          model.PathRow{Path: result.WRSPath, Row: result.WRSRow},
			NextOverpassDate: result.NextOverpassDate,
			NextOverpassTime: result.NextOverpassTime,
		}
		if err := overpassData.Apply(feature); err != nil {
			return nil, err
		}
	}

	feature.Bbox = feature.ForceBbox()
	return feature, nil
}

// exportResult builds the GeoJSON export collection from stored rows
func exportResult(locations []db.SavedLocation) model.GeoJSONFeatureCollectionCreator {
	multiResult := model.MultiFeatureResult{
		FeatureCreators: make([]model.GeoJSONFeatureCreator, len(locations)),
	}
	for i, location := range locations {
		multiResult.FeatureCreators[i] = locationResult{SavedLocation: location}
	}
	return multiResult
}
