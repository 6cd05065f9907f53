package db

import (
	"fmt"
	"time"

	"infinite-experiment/routeplanner/internal/config"
	"infinite-experiment/routeplanner/internal/constants"
	"infinite-experiment/routeplanner/internal/logging"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const connectAttempts = 10

// OpenAirportDB connects to the navdata database holding Airports and
// Runways. Postgres connections are retried while the server starts up.
// createSchema creates the tables when missing.
func OpenAirportDB(driver, dsn string, createSchema bool) (*sqlx.DB, error) {
	if driver == config.DriverSQLite {
		driver = config.DriverSQLite3
	}
	if driver != config.DriverSQLite3 && driver != config.DriverPostgres {
		return nil, fmt.Errorf("unsupported airport database driver %q", driver)
	}

	var (
		db  *sqlx.DB
		err error
	)
	for i := 0; i < connectAttempts; i++ {
		db, err = sqlx.Connect(driver, dsn)
		if err == nil {
			break
		}
		if driver != config.DriverPostgres {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to airport database: %w", err)
	}

	if driver == config.DriverSQLite3 {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enable WAL: %w", err)
		}
	}

	if createSchema {
		for _, stmt := range constants.AirportSchema {
			if _, err := db.Exec(stmt); err != nil {
				_ = db.Close()
				return nil, fmt.Errorf("create airport schema: %w", err)
			}
		}
	}

	logging.Info("Connected to airport database via sqlx", "driver", driver)
	return db, nil
}
