package cache

import (
	"context"
	"errors"
	"fmt"
	"log"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/ports"
)

// LocationCache stores scraped location sets keyed by their source
// (typically the page URL). A nil slice from Get means a miss.
// Stored order must be preserved exactly: positions are solver indices.
type LocationCache interface {
	Get(ctx context.Context, source string) ([]domain.Location, error)
	Put(ctx context.Context, source string, locs []domain.Location) error
}

// CachedLocationSource decorates a LocationSource with a persistent
// cache so repeated runs avoid re-scraping the same pages.
type CachedLocationSource struct {
	Source ports.LocationSource
	Cache  LocationCache
	Key    string
}

func NewCachedLocationSource(src ports.LocationSource, c LocationCache, key string) (*CachedLocationSource, error) {
	if src == nil {
		return nil, errors.New("cached location source: source is nil")
	}
	if key == "" {
		return nil, errors.New("cached location source: key must be non-empty")
	}
	return &CachedLocationSource{Source: src, Cache: c, Key: key}, nil
}

func (c *CachedLocationSource) FetchLocations(ctx context.Context) (*domain.LocationSet, error) {
	if c.Cache != nil {
		locs, err := c.Cache.Get(ctx, c.Key)
		if err != nil {
			return nil, fmt.Errorf("cached fetch locations: cache get: %w", err)
		}
		if locs != nil {
			set, err := domain.NewLocationSetFrom(locs)
			if err != nil {
				return nil, fmt.Errorf("cached fetch locations: rebuild cached set: %w", err)
			}
			return set, nil
		}
	}

	set, err := c.Source.FetchLocations(ctx)
	if err != nil {
		return nil, err
	}

	if c.Cache != nil {
		if err := c.Cache.Put(ctx, c.Key, set.Locations()); err != nil {
			// A cold cache next run is acceptable; a failed fetch is not.
			log.Printf("location cache write failed: %v", err)
		}
	}

	return set, nil
}
