// Package geo implements great-circle distance on a spherical earth.
//
// The geometric core is unit-agnostic: distances come back in whatever
// unit the radius is expressed in. Unit policy (miles vs kilometers)
// stays with the caller.
package geo

import (
	"fmt"
	"math"

	"tour-planner-service/internal/domain"
)

const (
	// EarthRadiusKm is the default earth radius used for tour planning.
	EarthRadiusKm = 6378.388

	// KilometersPerMile converts great-circle kilometers to statute miles.
	KilometersPerMile = 1.60934
)

// Distance returns the great-circle distance between two points, in the
// unit of the radius passed in, using the spherical law of cosines.
func Distance(a, b domain.Coordinates, radius float64) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, fmt.Errorf("distance: first point: %w", err)
	}
	if err := b.Validate(); err != nil {
		return 0, fmt.Errorf("distance: second point: %w", err)
	}

	// The trig below can round the cosine slightly below 1 for identical
	// points, turning a zero distance into a few centimeters.
	if a == b {
		return 0, nil
	}

	// Polar angle from the north pole and azimuthal angle, in radians.
	phi1 := (90 - a.Lat) * math.Pi / 180
	phi2 := (90 - b.Lat) * math.Pi / 180
	theta1 := a.Lon * math.Pi / 180
	theta2 := b.Lon * math.Pi / 180

	cos := math.Sin(phi1)*math.Sin(phi2)*math.Cos(theta1-theta2) +
		math.Cos(phi1)*math.Cos(phi2)

	// Rounding can push the cosine a hair outside [-1, 1] for identical or
	// antipodal points, where Acos would return NaN. Clamp before Acos.
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}

	return math.Acos(cos) * radius, nil
}

// MilesBetween returns the great-circle distance between two points in
// statute miles, using the default earth radius.
func MilesBetween(a, b domain.Coordinates) (float64, error) {
	km, err := Distance(a, b, EarthRadiusKm)
	if err != nil {
		return 0, err
	}
	return KilometersToMiles(km), nil
}

// KilometersToMiles converts kilometers to statute miles.
func KilometersToMiles(km float64) float64 { return km / KilometersPerMile }
