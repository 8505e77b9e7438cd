package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/platform/obs"
)

// SQLLocationCache is a Postgres-backed variant of the location cache
// for deployments that already run a shared database.
type SQLLocationCache struct {
	DB *sql.DB
}

func NewSQLLocationCache(db *sql.DB) *SQLLocationCache {
	return &SQLLocationCache{DB: db}
}

// Fetch the cached location list for a source, in stored order.
func (s *SQLLocationCache) Get(ctx context.Context, source string) (_ []domain.Location, err error) {
	defer obs.Time(ctx, "location.cache.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("location cache: db is nil")
	}

	source = strings.TrimSpace(source)
	if source == "" {
		return nil, errors.New("get location cache: source must not be empty")
	}

	q := `
	SELECT id, lat, lon
    FROM location_cache
    WHERE source = $1
    ORDER BY position;
	`

	rows, err := s.DB.QueryContext(ctx, q, source)
	if err != nil {
		return nil, fmt.Errorf("get location cache: query location_cache table: %w", err)
	}
	defer rows.Close()

	var out []domain.Location
	for rows.Next() {
		var id string
		var lat, lon float64
		if err := rows.Scan(&id, &lat, &lon); err != nil {
			return nil, fmt.Errorf("get location cache: scan rows: %w", err)
		}
		out = append(out, domain.Location{ID: id, Coordinates: domain.Coordinates{Lat: lat, Lon: lon}})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get location cache: row iteration: %w", err)
	}

	return out, nil
}

// Store the ordered location list for a source, replacing any prior rows.
func (s *SQLLocationCache) Put(ctx context.Context, source string, locs []domain.Location) error {
	if s.DB == nil {
		return errors.New("location cache: db is nil")
	}

	source = strings.TrimSpace(source)
	if source == "" {
		return errors.New("insert location cache: source must not be empty")
	}

	if len(locs) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert location cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM location_cache WHERE source = $1;`, source); err != nil {
		return fmt.Errorf("insert location cache: clear old rows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO location_cache (source, position, id, lat, lon)
    VALUES ($1, $2, $3, $4, $5);
	`)
	if err != nil {
		return fmt.Errorf("insert location cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for i, l := range locs {
		if strings.TrimSpace(l.ID) == "" {
			return fmt.Errorf("insert location cache: empty id at position %d", i)
		}

		if _, err := stmt.ExecContext(ctx, source, i, l.ID, l.Lat, l.Lon); err != nil {
			return fmt.Errorf("insert location cache id=%q: %w", l.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert location cache commit: %w", err)
	}

	return nil
}
