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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// The feed carries two dash-separated header blocks; the data table starts
// after the second separator. That positional layout is part of the feed
// contract.
const separatorToken = "----------------------"

// ErrNoAcquisition indicates no scheduled pass for the path/row that day
var ErrNoAcquisition = errors.New("no pending acquisition for the requested path/row")

// ErrMalformedSchedule indicates the feed is missing its expected structure
var ErrMalformedSchedule = errors.New("schedule feed is malformed")

// ParseDaySchedule extracts the first record matching path and row from a
// raw daily schedule. Data rows are whitespace-delimited:
// PATH ROW DDD-HH:MM:SS ...
func ParseDaySchedule(body []byte, path, row int) (*Record, error) {
	lines := strings.Split(string(body), "\n")

	separatorIndices := []int{}
	for i, line := range lines {
		if strings.Contains(line, separatorToken) {
			separatorIndices = append(separatorIndices, i)
		}
	}
	if len(separatorIndices) < 2 {
		return nil, fmt.Errorf("%w: found %d separator lines, need 2", ErrMalformedSchedule, len(separatorIndices))
	}

	for _, line := range lines[separatorIndices[1]+1:] {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		if !tokenMatches(fields[0], path) || !tokenMatches(fields[1], row) {
			continue
		}

		dayOfYear, timeOfDay, err := splitJulianField(fields[2])
		if err != nil {
			return nil, err
		}
		return &Record{Path: path, Row: row, DayOfYear: dayOfYear, TimeOfDay: timeOfDay}, nil
	}

	return nil, ErrNoAcquisition
}

// tokenMatches compares a feed token to a numeric value. The feed is
// inconsistent about zero padding, so leading zeros are stripped before
// comparing.
func tokenMatches(token string, value int) bool {
	trimmed := strings.TrimLeft(token, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	return trimmed == strconv.Itoa(value)
}

// splitJulianField splits the composite DDD-HH:MM:SS field into its julian
// day-of-year and optional time-of-day parts
func splitJulianField(field string) (int, string, error) {
	dayPart, timePart, _ := strings.Cut(field, "-")
	dayOfYear, err := strconv.Atoi(dayPart)
	if err != nil {
		return 0, "", fmt.Errorf("%w: bad julian day field %q", ErrMalformedSchedule, field)
	}
	return dayOfYear, timePart, nil
}
