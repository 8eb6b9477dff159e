package db

import (
	"database/sql"
)

// InsertLocation stores a new saved location, filling in its generated ID
// and save timestamp
func InsertLocation(tx *sql.Tx, location *SavedLocation) error {
	return tx.QueryRow(`
		INSERT INTO public.saved_locations
			(name, latitude, longitude, wrs_path, wrs_row, prediction_status, next_overpass_date, next_overpass_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, date_saved`,
		location.Name, location.Latitude, location.Longitude,
		location.WRSPath, location.WRSRow, location.PredictionStatus,
		location.NextOverpassDate, location.NextOverpassTime,
	).Scan(&location.ID, &location.DateSaved)
}

// ListLocations returns every saved location, most recently saved first
func ListLocations(tx *sql.Tx) ([]SavedLocation, error) {
	rows, err := tx.Query(`
		SELECT id, name, latitude, longitude, wrs_path, wrs_row, prediction_status, next_overpass_date, next_overpass_time, date_saved
		FROM public.saved_locations
		ORDER BY date_saved DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := []SavedLocation{}
	for rows.Next() {
		location := SavedLocation{}
		err = rows.Scan(&location.ID, &location.Name, &location.Latitude, &location.Longitude,
			&location.WRSPath, &location.WRSRow, &location.PredictionStatus,
			&location.NextOverpassDate, &location.NextOverpassTime, &location.DateSaved)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}
	return locations, rows.Err()
}

// GetLocationByID returns a single saved location, or sql.ErrNoRows
func GetLocationByID(tx *sql.Tx, id int64) (*SavedLocation, error) {
	location := SavedLocation{}
	err := tx.QueryRow(`
		SELECT id, name, latitude, longitude, wrs_path, wrs_row, prediction_status, next_overpass_date, next_overpass_time, date_saved
		FROM public.saved_locations
		WHERE id=$1
		LIMIT 1`, id,
	).Scan(&location.ID, &location.Name, &location.Latitude, &location.Longitude,
		&location.WRSPath, &location.WRSRow, &location.PredictionStatus,
		&location.NextOverpassDate, &location.NextOverpassTime, &location.DateSaved)
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// DeleteLocation removes a saved location, reporting whether a row existed
func DeleteLocation(tx *sql.Tx, id int64) (bool, error) {
	result, err := tx.Exec(`DELETE FROM public.saved_locations WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	return affected > 0, err
}
