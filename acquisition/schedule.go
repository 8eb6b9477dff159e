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

package acquisition

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ishaanJ91/landsat/util"
)

// scheduleURL builds the feed URL for one calendar day. The month token is
// a case-sensitive 3-letter abbreviation and the day is not zero-padded.
func scheduleURL(c *Context, day time.Time) string {
	month := day.Format("Jan")
	return fmt.Sprintf("%s/landsat/all_in_one_pending_acquisition/%s/Pend_Acq/y%d/%s/%s-%d-%d.txt",
		c.Host, c.SatelliteID, day.Year(), month, month, day.Day(), day.Year())
}

// FetchDaySchedule retrieves the raw acquisition schedule text for one day
func FetchDaySchedule(ctx context.Context, c *Context, day time.Time) ([]byte, error) {
	feedURL := scheduleURL(c, day)

	util.LogAudit(c, util.LogAuditInput{
		Actor: "anon user", Action: "GET", Actee: feedURL, Message: "Requesting acquisition schedule", Severity: util.INFO,
	})
	request, err := http.NewRequestWithContext(ctx, "GET", feedURL, nil)
	if err != nil {
		return nil, util.LogSimpleErr(c, fmt.Sprintf("Failed to make a new HTTP request for %v.", feedURL), err)
	}
	response, err := util.HTTPClient().Do(request)
	if err != nil {
		return nil, util.HTTPErr{Status: http.StatusBadGateway, Message: fmt.Sprintf("Failed to reach %v: %v", feedURL, err)}
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		message := fmt.Sprintf("Failed to retrieve acquisition schedule: %v. ", response.Status)
		util.LogAlert(c, message)
		return nil, util.HTTPErr{Status: response.StatusCode, Message: message}
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, util.LogSimpleErr(c, fmt.Sprintf("Failed to read schedule response from %v.", feedURL), err)
	}
	return body, nil
}

// FetchDayRecord retrieves one day's schedule and extracts the record for
// the given path/row, if any is scheduled that day.
func FetchDayRecord(ctx context.Context, c *Context, day time.Time, path, row int) (*Record, error) {
	body, err := FetchDaySchedule(ctx, c, day)
	if err != nil {
		return nil, err
	}
	return ParseDaySchedule(body, path, row)
}
