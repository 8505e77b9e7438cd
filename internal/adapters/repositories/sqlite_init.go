package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"tour-planner-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createLocationsQuery := `
	CREATE TABLE IF NOT EXISTS locations (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL UNIQUE,
		lat REAL NOT NULL,
		lon REAL NOT NULL
	);
	`

	createLocationCacheQuery := `
	CREATE TABLE IF NOT EXISTS location_cache (
        source TEXT NOT NULL,
        position INTEGER NOT NULL,
        id TEXT NOT NULL,
        lat REAL NOT NULL,
        lon REAL NOT NULL,
        PRIMARY KEY (source, position)
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_location_cache_source
    ON location_cache(source);
	`

	statements := []string{
		createLocationsQuery,
		createLocationCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type LocationSeed struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Populate the locations table from a JSON file. Array order in the file
// becomes the persisted positional order.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed locations: read %q: %w", jsonPath, err)
	}

	var data []LocationSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed locations: parse json: %w", err)
	}

	rows := make([]LocationSeed, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return fmt.Errorf("seed locations: item at index %d: id cannot be empty", i+1)
		}

		c := domain.Coordinates{Lat: item.Lat, Lon: item.Lon}
		if err := c.Validate(); err != nil {
			return fmt.Errorf("seed locations: item %q: %w", id, err)
		}
		rows = append(rows, LocationSeed{ID: id, Lat: item.Lat, Lon: item.Lon})
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed locations: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO locations (
		position,
		id,
		lat,
		lon
	)
	VALUES (?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed locations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, l := range rows {
		if _, err := stmt.Exec(i, l.ID, l.Lat, l.Lon); err != nil {
			return fmt.Errorf("seed locations: insert id=%q: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed locations: commit tx: %w", err)
	}

	return nil
}
