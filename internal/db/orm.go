package db

import (
	"fmt"

	"infinite-experiment/routeplanner/internal/config"
	"infinite-experiment/routeplanner/internal/logging"
	gormModels "infinite-experiment/routeplanner/internal/models/gorm"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenAircraftDB opens the aircraft and history database with GORM. When
// autoMigrate is set the aircraft and history tables are created if missing.
func OpenAircraftDB(driver, dsn string, autoMigrate bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverSQLite, config.DriverSQLite3:
		dialector = sqlite.Open(dsn)
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported aircraft database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to aircraft database: %w", err)
	}

	if driver != config.DriverPostgres {
		// SQLite allows a single writer; queue writes on one connection.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if autoMigrate {
		if err := db.AutoMigrate(&gormModels.Aircraft{}, &gormModels.History{}); err != nil {
			return nil, fmt.Errorf("failed to migrate aircraft database: %w", err)
		}
	}

	logging.Info("Connected to aircraft database via GORM", "driver", driver)
	return db, nil
}
