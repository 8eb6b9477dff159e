package migration

import (
	"database/sql"

	"github.com/pressly/goose"
)

func init() {
	goose.AddMigration(Up00001, Down00001)
}

//Up00001 adds the saved locations table
func Up00001(tx *sql.Tx) error {
	// This code is executed when the migration is applied.
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS public.saved_locations (
			id bigserial PRIMARY KEY,
			name text NOT NULL DEFAULT '',
			latitude double precision NOT NULL,
			longitude double precision NOT NULL,
			wrs_path integer NOT NULL DEFAULT 0,
			wrs_row integer NOT NULL DEFAULT 0,
			prediction_status text NOT NULL DEFAULT '',
			next_overpass_date text NOT NULL DEFAULT '',
			next_overpass_time text NOT NULL DEFAULT '',
			date_saved timestamptz NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS idx_saved_locations_date_saved
		ON public.saved_locations (date_saved DESC);
		`)
	return err
}

//Down00001 undoes the db changes.
func Down00001(tx *sql.Tx) error {
	// This code is executed when the migration is rolled back.
	_, err := tx.Exec(`DROP TABLE IF EXISTS public.saved_locations;`)
	return err
}
