package constants

// Airport database queries. Identifiers are quoted because the navdata
// schema uses mixed-case names, which both SQLite and Postgres accept when
// quoted. Placeholders are rebound per driver.
const (
	SelectAllAirports = `
	SELECT "ID", COALESCE("Name", '') AS "Name", "ICAO", "PrimaryID",
	       "Latitude", "Longtitude", COALESCE("Elevation", 0) AS "Elevation",
	       "TransitionAltitude", "TransitionLevel", "SpeedLimit", "SpeedLimitAltitude"
	FROM "Airports"
	`

	SelectAirportByICAO = SelectAllAirports + `WHERE UPPER("ICAO") = UPPER(?)`

	SelectAllRunways = `
	SELECT "ID", "AirportID", COALESCE("Ident", '') AS "Ident",
	       COALESCE("TrueHeading", 0) AS "TrueHeading", COALESCE("Length", 0) AS "Length",
	       COALESCE("Width", 0) AS "Width", COALESCE("Surface", '') AS "Surface",
	       COALESCE("Latitude", 0) AS "Latitude", COALESCE("Longtitude", 0) AS "Longtitude",
	       COALESCE("Elevation", 0) AS "Elevation"
	FROM "Runways"
	`

	CountAirports = `SELECT COUNT(*) FROM "Airports"`
)

// AirportSchema creates the navdata tables when they are missing. Used by
// tests and fresh installs; production databases ship with the schema.
var AirportSchema = []string{
	`CREATE TABLE IF NOT EXISTS "Airports" (
		"ID" INTEGER PRIMARY KEY,
		"Name" TEXT,
		"ICAO" TEXT NOT NULL UNIQUE,
		"PrimaryID" INTEGER,
		"Latitude" REAL NOT NULL,
		"Longtitude" REAL NOT NULL,
		"Elevation" INTEGER,
		"TransitionAltitude" INTEGER,
		"TransitionLevel" INTEGER,
		"SpeedLimit" INTEGER,
		"SpeedLimitAltitude" INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS "Runways" (
		"ID" INTEGER PRIMARY KEY,
		"AirportID" INTEGER NOT NULL REFERENCES "Airports"("ID"),
		"Ident" TEXT,
		"TrueHeading" REAL,
		"Length" INTEGER,
		"Width" INTEGER,
		"Surface" TEXT,
		"Latitude" REAL,
		"Longtitude" REAL,
		"Elevation" INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS "idx_runways_airport" ON "Runways"("AirportID")`,
}
