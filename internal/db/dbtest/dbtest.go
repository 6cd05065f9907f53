// Package dbtest opens throwaway SQLite databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"infinite-experiment/routeplanner/internal/config"
	"infinite-experiment/routeplanner/internal/db"
	"infinite-experiment/routeplanner/internal/models/entities"
	gormModels "infinite-experiment/routeplanner/internal/models/gorm"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// AircraftDB returns a migrated aircraft/history database in t.TempDir().
func AircraftDB(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := db.OpenAircraftDB(config.DriverSQLite, filepath.Join(t.TempDir(), "data.db"), true)
	if err != nil {
		t.Fatalf("Failed to open test aircraft database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

// AirportDB returns an airport database with the navdata schema and the
// given rows inserted.
func AirportDB(t testing.TB, airports []entities.Airport, runways []entities.Runway) *sqlx.DB {
	t.Helper()

	xdb, err := db.OpenAirportDB(config.DriverSQLite3, filepath.Join(t.TempDir(), "airports.db3"), true)
	if err != nil {
		t.Fatalf("Failed to open test airport database: %v", err)
	}
	t.Cleanup(func() { _ = xdb.Close() })

	for _, a := range airports {
		_, err := xdb.NamedExec(`INSERT INTO "Airports"
			("ID", "Name", "ICAO", "PrimaryID", "Latitude", "Longtitude", "Elevation",
			 "TransitionAltitude", "TransitionLevel", "SpeedLimit", "SpeedLimitAltitude")
			VALUES (:ID, :Name, :ICAO, :PrimaryID, :Latitude, :Longtitude, :Elevation,
			 :TransitionAltitude, :TransitionLevel, :SpeedLimit, :SpeedLimitAltitude)`, a)
		if err != nil {
			t.Fatalf("Failed to insert airport %s: %v", a.ICAO, err)
		}
	}
	for _, r := range runways {
		_, err := xdb.NamedExec(`INSERT INTO "Runways"
			("ID", "AirportID", "Ident", "TrueHeading", "Length", "Width", "Surface",
			 "Latitude", "Longtitude", "Elevation")
			VALUES (:ID, :AirportID, :Ident, :TrueHeading, :Length, :Width, :Surface,
			 :Latitude, :Longtitude, :Elevation)`, r)
		if err != nil {
			t.Fatalf("Failed to insert runway %s: %v", r.Ident, err)
		}
	}
	return xdb
}

// Netherlands returns EHAM and EHRD, both with a 10000 ft longest runway,
// 24 NM apart.
func Netherlands() ([]entities.Airport, []entities.Runway) {
	airports := []entities.Airport{
		{ID: 1, Name: "Amsterdam Schiphol", ICAO: "EHAM", Latitude: 52.3086, Longitude: 4.7639, Elevation: -11},
		{ID: 2, Name: "Rotterdam The Hague", ICAO: "EHRD", Latitude: 51.9561, Longitude: 4.4397, Elevation: -15},
	}
	runways := []entities.Runway{
		{ID: 1, AirportID: 1, Ident: "18R", TrueHeading: 183, Length: 10000, Width: 148, Surface: "ASP", Latitude: 52.36, Longitude: 4.71},
		{ID: 2, AirportID: 1, Ident: "09", TrueHeading: 87, Length: 6000, Width: 148, Surface: "ASP", Latitude: 52.31, Longitude: 4.74},
		{ID: 3, AirportID: 2, Ident: "06", TrueHeading: 57, Length: 10000, Width: 148, Surface: "ASP", Latitude: 51.95, Longitude: 4.43},
	}
	return airports, runways
}

// Europe extends Netherlands with larger and smaller fields further out:
// EGLL (12802 ft, 200 NM from EHAM), EDDF (13123 ft), LFPG (13829 ft), EHTX
// (a 3000 ft strip) and LEPA (no runways).
func Europe() ([]entities.Airport, []entities.Runway) {
	airports, runways := Netherlands()
	airports = append(airports,
		entities.Airport{ID: 3, Name: "London Heathrow", ICAO: "EGLL", Latitude: 51.4706, Longitude: -0.4619, Elevation: 83},
		entities.Airport{ID: 4, Name: "Frankfurt am Main", ICAO: "EDDF", Latitude: 50.0333, Longitude: 8.5706, Elevation: 364},
		entities.Airport{ID: 5, Name: "Paris Charles de Gaulle", ICAO: "LFPG", Latitude: 49.0097, Longitude: 2.5479, Elevation: 392},
		entities.Airport{ID: 6, Name: "Texel", ICAO: "EHTX", Latitude: 53.1153, Longitude: 4.8336, Elevation: 2},
		entities.Airport{ID: 7, Name: "Palma de Mallorca", ICAO: "LEPA", Latitude: 39.5517, Longitude: 2.7388, Elevation: 27},
	)
	runways = append(runways,
		entities.Runway{ID: 4, AirportID: 3, Ident: "09L", TrueHeading: 90, Length: 12802, Width: 164, Surface: "ASP", Latitude: 51.48, Longitude: -0.48},
		entities.Runway{ID: 5, AirportID: 4, Ident: "07C", TrueHeading: 70, Length: 13123, Width: 197, Surface: "CON", Latitude: 50.03, Longitude: 8.53},
		entities.Runway{ID: 6, AirportID: 5, Ident: "09L", TrueHeading: 86, Length: 13829, Width: 197, Surface: "ASP", Latitude: 49.02, Longitude: 2.51},
		entities.Runway{ID: 7, AirportID: 6, Ident: "04", TrueHeading: 43, Length: 3000, Width: 66, Surface: "GRS", Latitude: 53.11, Longitude: 4.83},
	)
	return airports, runways
}

func int32Ptr(v int32) *int32 { return &v }

// Fleet returns a Boeing 737-800 (id 1) and an Airbus A320 (id 2), both not
// flown.
func Fleet() []*gormModels.Aircraft {
	return []*gormModels.Aircraft{
		{ID: 1, Manufacturer: "Boeing", Variant: "737-800", IcaoCode: "B738", AircraftRange: 3000, Category: "A", CruiseSpeed: 450, TakeoffDistance: int32Ptr(2000)},
		{ID: 2, Manufacturer: "Airbus", Variant: "A320", IcaoCode: "A320", AircraftRange: 3300, Category: "A", CruiseSpeed: 447, TakeoffDistance: int32Ptr(2100)},
	}
}

// SeedFleet inserts aircraft into a database from AircraftDB.
func SeedFleet(t testing.TB, gdb *gorm.DB, aircraft []*gormModels.Aircraft) {
	t.Helper()
	for _, a := range aircraft {
		if err := gdb.Create(a).Error; err != nil {
			t.Fatalf("Failed to insert aircraft %d: %v", a.ID, err)
		}
	}
}
