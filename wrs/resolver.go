// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package wrs

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/ishaanJ91/landsat/model"
	"github.com/ishaanJ91/landsat/util"
)

// ErrNoCoverage indicates the lookup service returned no intersecting cells
var ErrNoCoverage = errors.New("no WRS-2 cells intersect the given point")

var httpRequestKnownJSONWithObject = util.ReqByObjJSON

// ResolvePathRows maps a point to every WRS-2 path/row cell whose daytime
// descending outline intersects it. Callers should try each candidate in
// turn; uniqueness is not guaranteed near swath boundaries.
func ResolvePathRows(ctx context.Context, c *Context, point model.GeoPoint) ([]model.PathRow, error) {
	if err := point.Validate(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("where", "MODE='D'")
	query.Set("geometry", fmt.Sprintf("%v,%v", point.Longitude, point.Latitude))
	query.Set("geometryType", "esriGeometryPoint")
	query.Set("spatialRel", "esriSpatialRelIntersects")
	query.Set("outFields", "PATH,ROW")
	query.Set("returnGeometry", "false")
	query.Set("f", "json")
	lookupURL := c.BaseURL + "?" + query.Encode()

	util.LogAudit(c, util.LogAuditInput{
		Actor: "anon user", Action: "GET", Actee: c.BaseURL, Message: "Requesting WRS-2 path/row for point", Severity: util.INFO,
	})
	var out lookupResponse
	if _, err := httpRequestKnownJSONWithObject(ctx, c, "GET", lookupURL, nil, &out); err != nil {
		return nil, err
	}
	util.LogAudit(c, util.LogAuditInput{
		Actor: c.BaseURL, Action: "GET response", Actee: "anon user", Message: "Retrieving WRS-2 path/row", Severity: util.INFO,
	})

	if len(out.Features) == 0 {
		return nil, ErrNoCoverage
	}

	pathRows := make([]model.PathRow, len(out.Features))
	for i, feature := range out.Features {
		pathRows[i] = model.PathRow{Path: feature.Attributes.Path, Row: feature.Attributes.Row}
	}
	return pathRows, nil
}
