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

	"github.com/ishaanJ91/landsat/acquisition"
	"github.com/ishaanJ91/landsat/model"
	"github.com/ishaanJ91/landsat/util"
)

var fetchDayRecordFunc = acquisition.FetchDayRecord

// FindNextOverpass walks backward day-by-day from start, looking for the
// most recent day on which the feed schedules a pass over the given
// path/row, then projects one repeat cycle forward to predict the next
// overpass. The walk is bounded to one full cycle: within that window the
// ground track must be covered by some scheduled pass if the feed has any
// data for the cell at all.
//
// Only a day with no matching record advances the walk. Upstream and
// format failures abort immediately rather than probing the rest of the
// window against a broken feed.
func FindNextOverpass(ctx context.Context, c *Context, pathRow model.PathRow, start time.Time) (model.OverpassPrediction, error) {
	day := start
	for attempt := 0; attempt < c.CycleDays; attempt++ {
		record, err := fetchDayRecordFunc(ctx, c.Acquisition, day, pathRow.Path, pathRow.Row)
		if err == nil {
			return predictionFromRecord(c, pathRow, day, record)
		}
		if !errors.Is(err, acquisition.ErrNoAcquisition) {
			util.LogAlert(c, fmt.Sprintf("Overpass search aborted for %v: %v", pathRow, err))
			return model.OverpassPrediction{
				Status:  model.StatusError,
				PathRow: pathRow,
				Message: err.Error(),
			}, err
		}
		day = day.AddDate(0, 0, -1)
	}

	return model.OverpassPrediction{
		Status:  model.StatusNotFound,
		PathRow: pathRow,
		Message: fmt.Sprintf("no overpass found for %v within %d days", pathRow, c.CycleDays),
	}, nil
}

func predictionFromRecord(c *Context, pathRow model.PathRow, day time.Time, record *acquisition.Record) (model.OverpassPrediction, error) {
	acquired, err := acquisition.JulianToDate(day.Year(), record.DayOfYear)
	if err != nil {
		return model.OverpassPrediction{Status: model.StatusError, PathRow: pathRow, Message: err.Error()}, err
	}

	// The repeat cycle guarantees the same path/row is revisited after
	// exactly CycleDays.
	next := acquired.AddDate(0, 0, c.CycleDays)
	return model.OverpassPrediction{
		Status:        model.StatusSuccess,
		PathRow:       pathRow,
		PredictedDate: next,
		PredictedTime: record.TimeOfDay,
		Message:       fmt.Sprintf("overpass found for %v, julian day %d", pathRow, record.DayOfYear),
	}, nil
}
