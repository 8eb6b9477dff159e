package locations

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/ishaanJ91/landsat/locations/db"
	"github.com/ishaanJ91/landsat/model"
	"github.com/ishaanJ91/landsat/overpass"
	"github.com/ishaanJ91/landsat/util"
)

var predictFunc = overpass.Predict

// SaveHandler is a handler for POST /locations
// @Title saveLocationHandler
// @Description saves a point along with its freshly computed overpass prediction
// @Accept  json
// @Param   name       body   string  false  "Display name for the location"
// @Param   latitude   body   number  true   "Latitude of the point"
// @Param   longitude  body   number  true   "Longitude of the point"
// @Success 201 {object}  locationResponse
// @Failure 400 {object}  string
// @Router /locations [post]
type SaveHandler struct {
	Context Context
}

// NewSaveHandler creates a new handler using the environment and given DB
func NewSaveHandler(connectionProvider db.ConnectionProvider, overpassContext *overpass.Context) (*SaveHandler, error) {
	database, err := connectionProvider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}

	return &SaveHandler{
		Context: Context{
			DB:       database,
			Overpass: overpassContext,
		},
	}, nil
}

type saveRequest struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type locationResponse struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	Path             int     `json:"path,omitempty"`
	Row              int     `json:"row,omitempty"`
	PredictionStatus string  `json:"predictionStatus"`
	NextOverpassDate string  `json:"nextOverpassDate,omitempty"`
	NextOverpassTime string  `json:"nextOverpassTime,omitempty"`
	DateSaved        string  `json:"dateSaved"`
}

func responseFromLocation(location db.SavedLocation) locationResponse {
	return locationResponse{
		ID:               location.ID,
		Name:             location.Name,
		Latitude:         location.Latitude,
		Longitude:        location.Longitude,
		Path:             location.WRSPath,
		Row:              location.WRSRow,
		PredictionStatus: location.PredictionStatus,
		NextOverpassDate: location.NextOverpassDate,
		NextOverpassTime: location.NextOverpassTime,
		DateSaved:        location.DateSaved.Format(model.DateLayout),
	}
}

// ServeHTTP implements the http.Handler interface for the SaveHandler type
func (h SaveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var input saveRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		message := fmt.Sprintf("Invalid request body: %v", err)
		util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
		return
	}
	if input.Latitude == nil || input.Longitude == nil {
		util.HTTPError(r, w, &h.Context, "Missing latitude or longitude", http.StatusBadRequest)
		return
	}

	point := model.GeoPoint{Latitude: *input.Latitude, Longitude: *input.Longitude}
	if err := point.Validate(); err != nil {
		util.HTTPError(r, w, &h.Context, err.Error(), http.StatusBadRequest)
		return
	}

	prediction, err := predictFunc(r.Context(), h.Context.Overpass, point, time.Now().UTC())
	if err != nil {
		message := fmt.Sprintf("Error predicting overpass for location: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusBadGateway)
		return
	}

	location := db.SavedLocation{
		Name:             input.Name,
		Latitude:         point.Latitude,
		Longitude:        point.Longitude,
		WRSPath:          prediction.Path,
		WRSRow:           prediction.Row,
		PredictionStatus: string(prediction.Status),
		NextOverpassDate: prediction.PredictedDateString(),
		NextOverpassTime: prediction.PredictedTime,
	}

	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	if err = db.InsertLocation(tx, &location); err != nil {
		message := fmt.Sprintf("Error saving location: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	writeJSON(w, http.StatusCreated, responseFromLocation(location))
}

// ListHandler is a handler for GET /locations
// @Title listLocationsHandler
// @Description lists saved locations, most recently saved first
// @Accept  plain
// @Success 200 {array}  locationResponse
// @Router /locations [get]
type ListHandler struct {
	Context Context
}

// NewListHandler creates a new handler using the environment and given DB
func NewListHandler(connectionProvider db.ConnectionProvider) (*ListHandler, error) {
	database, err := connectionProvider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}

	return &ListHandler{Context: Context{DB: database}}, nil
}

// ServeHTTP implements the http.Handler interface for the ListHandler type
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	locations, err := db.ListLocations(tx)
	if err != nil {
		message := fmt.Sprintf("Error listing locations: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	responses := make([]locationResponse, len(locations))
	for i, location := range locations {
		responses[i] = responseFromLocation(location)
	}
	writeJSON(w, http.StatusOK, responses)
}

// ExportHandler is a handler for GET /locations/export
// @Title exportLocationsHandler
// @Description exports saved locations as a GeoJSON feature collection
// @Accept  plain
// @Success 200 {object}  geojson.FeatureCollection
// @Router /locations/export [get]
type ExportHandler struct {
	Context Context
}

// NewExportHandler creates a new handler using the environment and given DB
func NewExportHandler(connectionProvider db.ConnectionProvider) (*ExportHandler, error) {
	database, err := connectionProvider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}

	return &ExportHandler{Context: Context{DB: database}}, nil
}

// ServeHTTP implements the http.Handler interface for the ExportHandler type
func (h ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	locations, err := db.ListLocations(tx)
	if err != nil {
		message := fmt.Sprintf("Error listing locations: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	featureCollection, err := exportResult(locations).GeoJSONFeatureCollection()
	if err != nil {
		message := fmt.Sprintf("Error converting to feature collection: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(featureCollection.String()))
}

// DeleteHandler is a handler for DELETE /locations/{id}
// @Title deleteLocationHandler
// @Description removes a saved location
// @Accept  plain
// @Param   id  path   integer  true  "The ID of the saved location"
// @Success 204
// @Failure 404 {object}  string
// @Router /locations/{id} [delete]
type DeleteHandler struct {
	Context Context
}

// NewDeleteHandler creates a new handler using the environment and given DB
func NewDeleteHandler(connectionProvider db.ConnectionProvider) (*DeleteHandler, error) {
	database, err := connectionProvider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}

	return &DeleteHandler{Context: Context{DB: database}}, nil
}

// ServeHTTP implements the http.Handler interface for the DeleteHandler type
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr, ok := mux.Vars(r)["id"]
	if !ok {
		util.HTTPError(r, w, &h.Context, "No location ID found in URL", http.StatusNotFound)
		return
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		message := fmt.Sprintf("The location ID of %v is invalid", idStr)
		util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
		return
	}

	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	deleted, err := db.DeleteLocation(tx, id)
	if err != nil {
		message := fmt.Sprintf("Error deleting location: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}
	if !deleted {
		message := fmt.Sprintf("Location not found: %d", id)
		util.LogInfo(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
