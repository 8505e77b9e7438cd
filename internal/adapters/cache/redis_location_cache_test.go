package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"

	"tour-planner-service/internal/domain"
)

func newMiniredisCache(t *testing.T) *RedisLocationCache {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisLocationCacheFromClient(rdb, time.Hour)
}

func TestRedisLocationCacheRoundTrip(t *testing.T) {
	c := newMiniredisCache(t)
	ctx := context.Background()

	locs := []domain.Location{
		{ID: "Opelika", Coordinates: domain.Coordinates{Lat: 32.627837, Lon: -85.445105}},
		{ID: "Greenville", Coordinates: domain.Coordinates{Lat: 31.855989, Lon: -86.635765}},
	}

	if err := c.Put(ctx, "http://example.com/seats", locs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := c.Get(ctx, "http://example.com/seats")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Order must survive the round trip: positions are solver indices.
	if got[0].ID != "Opelika" || got[1].ID != "Greenville" {
		t.Errorf("order = [%s %s], want [Opelika Greenville]", got[0].ID, got[1].ID)
	}
	if got[0].Lat != 32.627837 {
		t.Errorf("lat = %v, want 32.627837", got[0].Lat)
	}
}

func TestRedisLocationCacheMiss(t *testing.T) {
	c := newMiniredisCache(t)

	got, err := c.Get(context.Background(), "http://example.com/unknown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("miss returned %v, want nil", got)
	}
}

func TestRedisLocationCacheEmptySource(t *testing.T) {
	c := newMiniredisCache(t)

	if _, err := c.Get(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty source")
	}
	if err := c.Put(context.Background(), "", []domain.Location{{ID: "A"}}); err == nil {
		t.Fatal("expected error for empty source")
	}
}
