package model

import "github.com/venicegeo/geojson-go/geojson"

// OverpassData is a mixin containing a stored overpass prediction for a location
type OverpassData struct {
	PathRow
	NextOverpassDate string
	NextOverpassTime string
}

// Apply implements the GeoJSONFeatureMixin interface
func (od OverpassData) Apply(feature *geojson.Feature) error {
	feature.Properties["path"] = od.Path
	feature.Properties["row"] = od.Row
	feature.Properties["nextOverpassDate"] = od.NextOverpassDate
	feature.Properties["nextOverpassTime"] = od.NextOverpassTime
	return nil
}
