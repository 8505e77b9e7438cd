package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tour-planner-service/internal/domain"
)

// SQLite-backed implementation of the LocationRepository port.
type SqliteLocationRepository struct{ DB *sql.DB }

func NewSqliteLocationRepository(db *sql.DB) *SqliteLocationRepository {
	return &SqliteLocationRepository{DB: db}
}

// Return all stored locations in their persisted positional order.
func (s *SqliteLocationRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite location repository: DB is nil")
	}

	query := `
	SELECT
		id,
		lat,
		lon
	FROM locations
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list locations: query locations table: %w", err)
	}
	defer rows.Close()

	locations := make([]domain.Location, 0, 64)
	for rows.Next() {
		var id string
		var lat, lon float64
		if err := rows.Scan(&id, &lat, &lon); err != nil {
			return nil, fmt.Errorf("list locations: scan row: %w", err)
		}
		locations = append(locations, domain.Location{
			ID:          id,
			Coordinates: domain.Coordinates{Lat: lat, Lon: lon},
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list locations: row iteration: %w", err)
	}

	return locations, nil
}

// Replace the stored location set with the given ordered list.
func (s *SqliteLocationRepository) SaveLocations(ctx context.Context, locs []domain.Location) error {
	if s.DB == nil {
		return errors.New("sqlite location repository: DB is nil")
	}
	if len(locs) == 0 {
		return fmt.Errorf("save locations: %w", domain.ErrEmptyInput)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save locations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM locations;`); err != nil {
		return fmt.Errorf("save locations: clear table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO locations (position, id, lat, lon)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("save locations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, l := range locs {
		if strings.TrimSpace(l.ID) == "" {
			return fmt.Errorf("save locations: empty id at position %d", i)
		}
		if err := l.Validate(); err != nil {
			return fmt.Errorf("save locations: %q: %w", l.ID, err)
		}

		if _, err := stmt.ExecContext(ctx, i, l.ID, l.Lat, l.Lon); err != nil {
			return fmt.Errorf("save locations: insert id=%q: %w", l.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save locations: commit tx: %w", err)
	}

	return nil
}
