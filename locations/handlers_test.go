package locations

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/ishaanJ91/landsat/model"
	"github.com/ishaanJ91/landsat/overpass"
	"github.com/ishaanJ91/landsat/util"
	"github.com/stretchr/testify/assert"
)

func saveHandlerResponse(t *testing.T, body string) *httptest.ResponseRecorder {
	handler := SaveHandler{Context: Context{Overpass: &overpass.Context{CycleDays: 16}}}
	request, err := http.NewRequest("POST", "http://localhost/locations", bytes.NewBufferString(body))
	assert.Nil(t, err, "%v", err)
	writer := httptest.NewRecorder()
	handler.ServeHTTP(writer, request)
	return writer
}

func TestSaveHandler_BadBody(t *testing.T) {
	writer := saveHandlerResponse(t, `{not json`)
	assert.Equal(t, http.StatusBadRequest, writer.Code)
}

func TestSaveHandler_MissingCoordinates(t *testing.T) {
	writer := saveHandlerResponse(t, `{"name": "somewhere"}`)
	assert.Equal(t, http.StatusBadRequest, writer.Code)

	writer = saveHandlerResponse(t, `{"name": "somewhere", "latitude": 37.77}`)
	assert.Equal(t, http.StatusBadRequest, writer.Code)
}

func TestSaveHandler_InvalidPoint(t *testing.T) {
	writer := saveHandlerResponse(t, `{"name": "somewhere", "latitude": 91, "longitude": 0}`)
	assert.Equal(t, http.StatusBadRequest, writer.Code)

	writer = saveHandlerResponse(t, `{"name": "somewhere", "latitude": 0, "longitude": 181}`)
	assert.Equal(t, http.StatusBadRequest, writer.Code)
}

func TestSaveHandler_PredictionFailure(t *testing.T) {
	predictFunc = func(ctx context.Context, c *overpass.Context, point model.GeoPoint, start time.Time) (model.OverpassPrediction, error) {
		err := util.HTTPErr{Status: 500, Message: "lookup service unavailable"}
		return model.OverpassPrediction{Status: model.StatusError, Message: err.Message}, err
	}
	defer func() { predictFunc = overpass.Predict }()

	writer := saveHandlerResponse(t, `{"name": "somewhere", "latitude": 37.77, "longitude": -122.42}`)
	assert.Equal(t, http.StatusBadGateway, writer.Code)
}

func TestDeleteHandler_InvalidID(t *testing.T) {
	router := mux.NewRouter()
	router.Handle("/locations/{id}", DeleteHandler{Context: Context{}}).Methods("DELETE")

	request, err := http.NewRequest("DELETE", "http://localhost/locations/notanumber", nil)
	assert.Nil(t, err, "%v", err)
	writer := httptest.NewRecorder()
	router.ServeHTTP(writer, request)
	assert.Equal(t, http.StatusBadRequest, writer.Code)
}
