package acquisition

import (
	"fmt"
	"time"
)

// JulianToDate converts a 1-based day-of-year offset within the given year
// to a calendar date. The year must come from the requested schedule day,
// not the wall clock, or predictions straddling New Year land in the wrong
// year.
func JulianToDate(year, dayOfYear int) (time.Time, error) {
	if dayOfYear < 1 {
		return time.Time{}, fmt.Errorf("invalid julian day of year: %d", dayOfYear)
	}
	date := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, dayOfYear-1)
	if date.Year() != year {
		return time.Time{}, fmt.Errorf("julian day %d is beyond the end of year %d", dayOfYear, year)
	}
	return date, nil
}
