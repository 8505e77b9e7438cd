package domain

import "fmt"

// DistanceMatrix is a complete pairwise distance table over a LocationSet.
//
// Invariants, guaranteed by construction in services.BuildDistanceMatrix:
// the diagonal is zero, the table is symmetric, and entries are
// non-negative. Built once, never mutated afterward.
type DistanceMatrix struct {
	dist [][]float64
}

// NewDistanceMatrix wraps a prebuilt square table.
// The caller is responsible for the symmetry and zero-diagonal invariants.
func NewDistanceMatrix(dist [][]float64) (*DistanceMatrix, error) {
	n := len(dist)
	if n == 0 {
		return nil, fmt.Errorf("new distance matrix: %w", ErrEmptyInput)
	}
	for i, row := range dist {
		if len(row) != n {
			return nil, fmt.Errorf("new distance matrix: row %d has %d entries, want %d", i, len(row), n)
		}
	}
	return &DistanceMatrix{dist: dist}, nil
}

// Dim returns the matrix order n.
func (m *DistanceMatrix) Dim() int { return len(m.dist) }

// At returns the distance between positional indices i and j.
func (m *DistanceMatrix) At(i, j int) float64 { return m.dist[i][j] }

// Row returns a copy of row i.
func (m *DistanceMatrix) Row(i int) []float64 {
	out := make([]float64, len(m.dist[i]))
	copy(out, m.dist[i])
	return out
}
