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
	"errors"
	"fmt"
	"time"

	"github.com/ishaanJ91/landsat/model"
	"github.com/ishaanJ91/landsat/util"
	"github.com/ishaanJ91/landsat/wrs"
)

var resolvePathRowsFunc = wrs.ResolvePathRows
var findNextOverpassFunc = FindNextOverpass

type searchOutcome struct {
	prediction model.OverpassPrediction
	err        error
}

// Predict resolves a point to its WRS-2 path/row candidates and searches
// each for the next overpass. Candidates are searched concurrently; the
// first success wins and cancels the remaining searches. Day-by-day fetches
// within one candidate stay serial, since each day's result decides whether
// the walk continues.
func Predict(ctx context.Context, c *Context, point model.GeoPoint, start time.Time) (model.OverpassPrediction, error) {
	pathRows, err := resolvePathRowsFunc(ctx, c.WRS, point)
	if err != nil {
		if errors.Is(err, wrs.ErrNoCoverage) {
			return model.OverpassPrediction{
				Status:  model.StatusNotFound,
				Message: "no WRS-2 path/row found for the given location",
			}, nil
		}
		return model.OverpassPrediction{Status: model.StatusError, Message: err.Error()}, err
	}

	util.LogInfo(c, fmt.Sprintf("Searching %d path/row candidate(s) for point (%v, %v)", len(pathRows), point.Latitude, point.Longitude))

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	outcomes := make(chan searchOutcome, len(pathRows))
	for _, pathRow := range pathRows {
		go func(pathRow model.PathRow) {
			prediction, err := findNextOverpassFunc(searchCtx, c, pathRow, start)
			outcomes <- searchOutcome{prediction: prediction, err: err}
		}(pathRow)
	}

	var firstErr error
	var firstErrPrediction model.OverpassPrediction
	for range pathRows {
		outcome := <-outcomes
		if outcome.err == nil && outcome.prediction.Status == model.StatusSuccess {
			return outcome.prediction, nil
		}
		if outcome.err != nil && firstErr == nil {
			firstErr = outcome.err
			firstErrPrediction = outcome.prediction
		}
	}

	if firstErr != nil {
		return firstErrPrediction, firstErr
	}
	return model.OverpassPrediction{
		Status:  model.StatusNotFound,
		Message: fmt.Sprintf("no overpass found within %d days for any of %d path/row candidate(s)", c.CycleDays, len(pathRows)),
	}, nil
}
