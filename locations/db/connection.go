package db

import (
	"database/sql"

	"github.com/ishaanJ91/landsat/util"
)

//ConnectionProvider is a function that can provide a database connection.
type ConnectionProvider func(util.LogContext) (*sql.DB, error)
