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

package overpass

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ishaanJ91/landsat/acquisition"
	"github.com/ishaanJ91/landsat/model"
	"github.com/ishaanJ91/landsat/util"
	"github.com/ishaanJ91/landsat/wrs"
	"github.com/stretchr/testify/assert"
)

var testStart = time.Date(2024, time.September, 10, 0, 0, 0, 0, time.UTC)
var testPoint = model.GeoPoint{Latitude: 37.77, Longitude: -122.42}

func restoreSeams() {
	resolvePathRowsFunc = wrs.ResolvePathRows
	findNextOverpassFunc = FindNextOverpass
}

func TestPredict_NoCoverage(t *testing.T) {
	var searchCalls int32
	resolvePathRowsFunc = func(ctx context.Context, c *wrs.Context, point model.GeoPoint) ([]model.PathRow, error) {
		return nil, wrs.ErrNoCoverage
	}
	findNextOverpassFunc = func(ctx context.Context, c *Context, pathRow model.PathRow, start time.Time) (model.OverpassPrediction, error) {
		atomic.AddInt32(&searchCalls, 1)
		return model.OverpassPrediction{}, nil
	}
	defer restoreSeams()

	prediction, err := Predict(context.Background(), testContext(), testPoint, testStart)
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, model.StatusNotFound, prediction.Status)
	assert.Equal(t, int32(0), atomic.LoadInt32(&searchCalls), "No candidates should mean no searches")
}

func TestPredict_ResolutionFailure(t *testing.T) {
	upstreamErr := util.HTTPErr{Status: 500, Message: "lookup service unavailable"}
	resolvePathRowsFunc = func(ctx context.Context, c *wrs.Context, point model.GeoPoint) ([]model.PathRow, error) {
		return nil, upstreamErr
	}
	defer restoreSeams()

	prediction, err := Predict(context.Background(), testContext(), testPoint, testStart)
	assert.Equal(t, upstreamErr, err)
	assert.Equal(t, model.StatusError, prediction.Status)
}

func TestPredict_FirstSuccessWins(t *testing.T) {
	resolvePathRowsFunc = func(ctx context.Context, c *wrs.Context, point model.GeoPoint) ([]model.PathRow, error) {
		return []model.PathRow{{Path: 44, Row: 34}, {Path: 43, Row: 34}}, nil
	}
	findNextOverpassFunc = func(ctx context.Context, c *Context, pathRow model.PathRow, start time.Time) (model.OverpassPrediction, error) {
		if pathRow.Path == 43 {
			return model.OverpassPrediction{Status: model.StatusNotFound, PathRow: pathRow}, nil
		}
		return model.OverpassPrediction{
			Status:        model.StatusSuccess,
			PathRow:       pathRow,
			PredictedDate: testStart.AddDate(0, 0, 16),
			PredictedTime: "03:15:22",
		}, nil
	}
	defer restoreSeams()

	prediction, err := Predict(context.Background(), testContext(), testPoint, testStart)
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, model.StatusSuccess, prediction.Status)
	assert.Equal(t, 44, prediction.Path)
	assert.Equal(t, "2024-09-26", prediction.PredictedDateString())
}

func TestPredict_AllCandidatesExhausted(t *testing.T) {
	resolvePathRowsFunc = func(ctx context.Context, c *wrs.Context, point model.GeoPoint) ([]model.PathRow, error) {
		return []model.PathRow{{Path: 44, Row: 34}, {Path: 43, Row: 34}}, nil
	}
	findNextOverpassFunc = func(ctx context.Context, c *Context, pathRow model.PathRow, start time.Time) (model.OverpassPrediction, error) {
		return model.OverpassPrediction{Status: model.StatusNotFound, PathRow: pathRow}, nil
	}
	defer restoreSeams()

	prediction, err := Predict(context.Background(), testContext(), testPoint, testStart)
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, model.StatusNotFound, prediction.Status)
}

func TestPredict_SearchErrorPropagates(t *testing.T) {
	resolvePathRowsFunc = func(ctx context.Context, c *wrs.Context, point model.GeoPoint) ([]model.PathRow, error) {
		return []model.PathRow{{Path: 44, Row: 34}}, nil
	}
	findNextOverpassFunc = func(ctx context.Context, c *Context, pathRow model.PathRow, start time.Time) (model.OverpassPrediction, error) {
		return model.OverpassPrediction{Status: model.StatusError, PathRow: pathRow}, acquisition.ErrMalformedSchedule
	}
	defer restoreSeams()

	prediction, err := Predict(context.Background(), testContext(), testPoint, testStart)
	assert.ErrorIs(t, err, acquisition.ErrMalformedSchedule)
	assert.Equal(t, model.StatusError, prediction.Status)
}

const predictorSampleLookup = `{"features": [{"attributes": {"PATH": 44, "ROW": 34, "MODE": "D"}}]}`

const predictorSampleSchedule = `LANDSAT 9 PENDING ACQUISITIONS
Report generated: Tue Sep 10 01:02:03 2024

----------------------------------------------
PATH  ROW   DATE-TIME       STATION
----------------------------------------------
  13   29   254-14:11:08    LGS
  44   34   254-03:15:22    LGS
`

func TestPredict_EndToEnd(t *testing.T) {
	wrsServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(predictorSampleLookup))
	}))
	defer wrsServer.Close()

	var scheduleRequests []string
	acqServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scheduleRequests = append(scheduleRequests, r.URL.Path)
		w.Write([]byte(predictorSampleSchedule))
	}))
	defer acqServer.Close()

	c := &Context{
		WRS:         &wrs.Context{BaseURL: wrsServer.URL},
		Acquisition: &acquisition.Context{Host: acqServer.URL, SatelliteID: "L9"},
		CycleDays:   16,
	}

	prediction, err := Predict(context.Background(), c, testPoint, testStart)
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, model.StatusSuccess, prediction.Status)
	assert.Equal(t, 44, prediction.Path)
	assert.Equal(t, 34, prediction.Row)
	assert.Equal(t, "2024-09-26", prediction.PredictedDateString())
	assert.Equal(t, "03:15:22", prediction.PredictedTime)

	assert.Equal(t,
		[]string{"/landsat/all_in_one_pending_acquisition/L9/Pend_Acq/y2024/Sep/Sep-10-2024.txt"},
		scheduleRequests)
}
