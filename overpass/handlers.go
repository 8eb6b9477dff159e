package overpass

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ishaanJ91/landsat/model"
	"github.com/ishaanJ91/landsat/util"
	"github.com/ishaanJ91/landsat/wrs"
)

var predictFunc = Predict

// PredictHandler is a handler for /predict
// @Title predictHandler
// @Description predicts the next satellite overpass for a point
// @Accept  json
// @Param   latitude   body   number  true   "Latitude of the point"
// @Param   longitude  body   number  true   "Longitude of the point"
// @Param   date       body   string  false  "Search start date (YYYY-MM-DD, default today)"
// @Success 200 {object}  predictionResponse
// @Failure 400 {object}  string
// @Router /predict [post]
type PredictHandler struct {
	Context *Context
}

// NewPredictHandler creates a new handler using configuration
// from environment variables
func NewPredictHandler() *PredictHandler {
	return &PredictHandler{Context: NewContext()}
}

type predictRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Date      string   `json:"date"`
}

type predictionResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	Path             int    `json:"path,omitempty"`
	Row              int    `json:"row,omitempty"`
	NextOverpassDate string `json:"nextOverpassDate,omitempty"`
	NextOverpassTime string `json:"nextOverpassTime,omitempty"`
}

func responseFromPrediction(prediction model.OverpassPrediction) predictionResponse {
	return predictionResponse{
		Status:           string(prediction.Status),
		Message:          prediction.Message,
		Path:             prediction.Path,
		Row:              prediction.Row,
		NextOverpassDate: prediction.PredictedDateString(),
		NextOverpassTime: prediction.PredictedTime,
	}
}

// ServeHTTP implements the http.Handler interface for the PredictHandler type
func (h PredictHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var input predictRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		message := fmt.Sprintf("Invalid request body: %v", err)
		util.HTTPError(r, w, h.Context, message, http.StatusBadRequest)
		return
	}
	if input.Latitude == nil || input.Longitude == nil {
		util.HTTPError(r, w, h.Context, "Missing latitude or longitude", http.StatusBadRequest)
		return
	}

	start := time.Now().UTC()
	if input.Date != "" {
		var err error
		if start, err = time.Parse(model.DateLayout, input.Date); err != nil {
			message := fmt.Sprintf("The date value of %v is invalid", input.Date)
			util.LogSimpleErr(h.Context, message, err)
			util.HTTPError(r, w, h.Context, message, http.StatusBadRequest)
			return
		}
	}

	point := model.GeoPoint{Latitude: *input.Latitude, Longitude: *input.Longitude}
	prediction, err := predictFunc(r.Context(), h.Context, point, start)
	if err != nil {
		if errors.Is(err, model.ErrInvalidPoint) {
			util.HTTPError(r, w, h.Context, err.Error(), http.StatusBadRequest)
			return
		}
		util.LogSimpleErr(h.Context, "Error predicting overpass: ", err)
		util.HTTPError(r, w, h.Context, prediction.Message, http.StatusBadGateway)
		return
	}

	writeJSON(w, http.StatusOK, responseFromPrediction(prediction))
}

// PathRowHandler is a handler for /pathrow
// @Title pathRowHandler
// @Description resolves a point to its WRS-2 path/row cells
// @Accept  plain
// @Param   lat  query   number  true   "Latitude of the point"
// @Param   lng  query   number  true   "Longitude of the point"
// @Success 200 {array}  model.PathRow
// @Failure 400 {object}  string
// @Router /pathrow [get]
type PathRowHandler struct {
	Context *Context
}

// NewPathRowHandler creates a new handler using configuration
// from environment variables
func NewPathRowHandler() *PathRowHandler {
	return &PathRowHandler{Context: NewContext()}
}

// ServeHTTP implements the http.Handler interface for the PathRowHandler type
func (h PathRowHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.FormValue("lat"), 64)
	lng, lngErr := strconv.ParseFloat(r.FormValue("lng"), 64)
	if latErr != nil || lngErr != nil {
		util.HTTPError(r, w, h.Context, "Missing or non-numeric lat/lng", http.StatusBadRequest)
		return
	}

	pathRows, err := resolvePathRowsFunc(r.Context(), h.Context.WRS, model.GeoPoint{Latitude: lat, Longitude: lng})
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidPoint):
			util.HTTPError(r, w, h.Context, err.Error(), http.StatusBadRequest)
		case errors.Is(err, wrs.ErrNoCoverage):
			util.HTTPError(r, w, h.Context, err.Error(), http.StatusNotFound)
		default:
			util.LogSimpleErr(h.Context, "Error resolving path/row: ", err)
			util.HTTPError(r, w, h.Context, err.Error(), http.StatusBadGateway)
		}
		return
	}

	writeJSON(w, http.StatusOK, pathRows)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
