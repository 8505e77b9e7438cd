package geo

import (
	"errors"
	"math"
	"testing"

	"tour-planner-service/internal/domain"
)

func TestDistanceSelfIsZero(t *testing.T) {
	// The cosine for an identical pair can round to either side of 1;
	// above, the clamp saves Acos from NaN, but below, Acos yields a
	// centimeter-scale phantom distance. Identical pairs must be exactly
	// zero regardless.
	points := []domain.Coordinates{
		{Lat: 0, Lon: 0},
		{Lat: 32.627837, Lon: -85.445105},
		{Lat: -90, Lon: 0},
		{Lat: 51.5, Lon: 179.9},
	}

	for _, p := range points {
		d, err := Distance(p, p, EarthRadiusKm)
		if err != nil {
			t.Fatalf("unexpected error for %+v: %v", p, err)
		}
		if math.IsNaN(d) {
			t.Fatalf("self distance for %+v is NaN", p)
		}
		if d != 0 {
			t.Errorf("self distance for %+v = %v, want exactly 0", p, d)
		}
	}
}

func TestDistanceNearbyPointsStayFinite(t *testing.T) {
	// Points meters apart exercise the cosine right at the edge of 1
	// without taking the identical-pair shortcut.
	a := domain.Coordinates{Lat: 32.627837, Lon: -85.445105}
	b := domain.Coordinates{Lat: 32.628837, Lon: -85.445105}

	d, err := Distance(a, b, EarthRadiusKm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.IsNaN(d) {
		t.Fatal("distance between nearby points is NaN")
	}
	// 0.001 degrees of latitude is roughly 111 meters.
	if d <= 0 || d > 0.5 {
		t.Errorf("distance = %v km, want roughly 0.11", d)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	a := domain.Coordinates{Lat: 32.627837, Lon: -85.445105}
	b := domain.Coordinates{Lat: 31.855989, Lon: -86.635765}

	ab, err := Distance(a, b, EarthRadiusKm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ba, err := Distance(b, a, EarthRadiusKm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ab != ba {
		t.Errorf("distance not symmetric: %v != %v", ab, ba)
	}
}

func TestDistanceAntipodal(t *testing.T) {
	a := domain.Coordinates{Lat: 0, Lon: 0}
	b := domain.Coordinates{Lat: 0, Lon: 180}

	d, err := Distance(a, b, EarthRadiusKm)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := math.Pi * EarthRadiusKm
	if math.Abs(d-want) > 1e-6 {
		t.Errorf("antipodal distance = %v, want %v", d, want)
	}
}

func TestDistanceKnownPair(t *testing.T) {
	// Two Alabama county seats roughly 85 miles apart.
	a := domain.Coordinates{Lat: 32.627837, Lon: -85.445105}
	b := domain.Coordinates{Lat: 31.855989, Lon: -86.635765}

	miles, err := MilesBetween(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if miles < 80 || miles > 90 {
		t.Errorf("distance = %v miles, want roughly 84.7", miles)
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	// Three points along the equator: b is between a and c.
	a := domain.Coordinates{Lat: 0, Lon: 0}
	b := domain.Coordinates{Lat: 0, Lon: 10}
	c := domain.Coordinates{Lat: 0, Lon: 25}

	ab, _ := Distance(a, b, EarthRadiusKm)
	bc, _ := Distance(b, c, EarthRadiusKm)
	ac, _ := Distance(a, c, EarthRadiusKm)

	if ac > ab+bc+1e-9 {
		t.Errorf("triangle inequality violated: %v > %v + %v", ac, ab, bc)
	}
}

func TestDistanceInvalidCoordinates(t *testing.T) {
	ok := domain.Coordinates{Lat: 0, Lon: 0}

	cases := []domain.Coordinates{
		{Lat: 90.1, Lon: 0},
		{Lat: -91, Lon: 0},
		{Lat: 0, Lon: 180.5},
		{Lat: 0, Lon: -181},
	}

	for _, bad := range cases {
		if _, err := Distance(ok, bad, EarthRadiusKm); !errors.Is(err, domain.ErrInvalidCoordinate) {
			t.Errorf("Distance(ok, %+v) error = %v, want ErrInvalidCoordinate", bad, err)
		}
		if _, err := Distance(bad, ok, EarthRadiusKm); !errors.Is(err, domain.ErrInvalidCoordinate) {
			t.Errorf("Distance(%+v, ok) error = %v, want ErrInvalidCoordinate", bad, err)
		}
	}
}

func TestKilometersToMiles(t *testing.T) {
	if got := KilometersToMiles(1.60934); math.Abs(got-1) > 1e-9 {
		t.Errorf("KilometersToMiles(1.60934) = %v, want 1", got)
	}
}
