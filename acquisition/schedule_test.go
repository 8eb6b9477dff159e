package acquisition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ishaanJ91/landsat/util"
	"github.com/stretchr/testify/assert"
)

func TestScheduleURL(t *testing.T) {
	c := &Context{Host: "https://landsat.usgs.dummy", SatelliteID: "L9"}

	day := time.Date(2024, time.September, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t,
		"https://landsat.usgs.dummy/landsat/all_in_one_pending_acquisition/L9/Pend_Acq/y2024/Sep/Sep-10-2024.txt",
		scheduleURL(c, day))

	// single-digit days are not zero-padded
	day = time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t,
		"https://landsat.usgs.dummy/landsat/all_in_one_pending_acquisition/L9/Pend_Acq/y2025/Jan/Jan-2-2025.txt",
		scheduleURL(c, day))
}

func TestFetchDayRecord_Success(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path
		w.Write([]byte(sampleSchedule))
	}))
	defer server.Close()

	c := &Context{Host: server.URL, SatelliteID: "L9"}
	day := time.Date(2024, time.September, 10, 0, 0, 0, 0, time.UTC)

	record, err := FetchDayRecord(context.Background(), c, day, 44, 34)
	assert.Nil(t, err, "%v", err)
	assert.Equal(t, 254, record.DayOfYear)
	assert.Equal(t, "03:15:22", record.TimeOfDay)
	assert.Equal(t, "/landsat/all_in_one_pending_acquisition/L9/Pend_Acq/y2024/Sep/Sep-10-2024.txt", requestedPath)
}

func TestFetchDayRecord_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := &Context{Host: server.URL, SatelliteID: "L9"}
	day := time.Date(2024, time.September, 10, 0, 0, 0, 0, time.UTC)

	_, err := FetchDayRecord(context.Background(), c, day, 44, 34)
	assert.NotNil(t, err, "Upstream 500 did not cause an error")

	httpErr, ok := err.(util.HTTPErr)
	assert.True(t, ok, "Expected util.HTTPErr, got %T", err)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestFetchDayRecord_Unreachable(t *testing.T) {
	c := &Context{Host: "http://127.0.0.1:1", SatelliteID: "L9"}
	day := time.Date(2024, time.September, 10, 0, 0, 0, 0, time.UTC)

	_, err := FetchDayRecord(context.Background(), c, day, 44, 34)
	assert.NotNil(t, err, "Unreachable host did not cause an error")

	_, ok := err.(util.HTTPErr)
	assert.True(t, ok, "Expected util.HTTPErr, got %T", err)
}
