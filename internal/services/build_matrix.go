package services

import (
	"fmt"

	"tour-planner-service/internal/domain"
	"tour-planner-service/internal/geo"
)

// DistanceFunc measures the distance between two valid coordinate pairs.
// The matrix inherits whatever unit the function returns.
type DistanceFunc func(a, b domain.Coordinates) (float64, error)

// BuildDistanceMatrix assembles the complete pairwise distance table for
// an ordered location set.
//
// Each unordered pair (i, j) with i < j is measured exactly once and
// mirrored into both cells; the diagonal is set to zero directly. That
// halves the trigonometric work and makes the symmetry invariant hold by
// construction instead of depending on the distance formula producing
// bit-identical results in both argument orders.
func BuildDistanceMatrix(set *domain.LocationSet, dist DistanceFunc) (*domain.DistanceMatrix, error) {
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("build distance matrix: %w", domain.ErrEmptyInput)
	}
	if dist == nil {
		dist = geo.MilesBetween
	}

	n := set.Len()
	table := make([][]float64, n)
	for i := range table {
		table[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := dist(set.At(i).Coordinates, set.At(j).Coordinates)
			if err != nil {
				return nil, fmt.Errorf(
					"build distance matrix: %q -> %q: %w",
					set.At(i).ID, set.At(j).ID, err,
				)
			}
			table[i][j] = d
			table[j][i] = d
		}
	}

	m, err := domain.NewDistanceMatrix(table)
	if err != nil {
		return nil, fmt.Errorf("build distance matrix: %w", err)
	}
	return m, nil
}
