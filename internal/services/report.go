package services

import (
	"fmt"
	"math"

	"tour-planner-service/internal/domain"
)

// MatrixStats summarizes the off-diagonal entries of a distance matrix
// for the reporting surface.
type MatrixStats struct {
	Pairs int
	Min   float64
	Max   float64
	Mean  float64
}

// SummarizeMatrix computes stats over the upper triangle (each unordered
// pair counted once; the mirrored half would only duplicate them).
func SummarizeMatrix(m *domain.DistanceMatrix) (MatrixStats, error) {
	if m == nil || m.Dim() == 0 {
		return MatrixStats{}, fmt.Errorf("summarize matrix: %w", domain.ErrEmptyInput)
	}

	n := m.Dim()
	if n == 1 {
		// Degenerate single-location matrix has no pairs.
		return MatrixStats{}, nil
	}

	stats := MatrixStats{Min: math.Inf(1), Max: math.Inf(-1)}
	sum := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := m.At(i, j)
			stats.Pairs++
			sum += d
			if d < stats.Min {
				stats.Min = d
			}
			if d > stats.Max {
				stats.Max = d
			}
		}
	}
	stats.Mean = sum / float64(stats.Pairs)
	return stats, nil
}

// HistogramBucket is one fixed-width distance bin.
type HistogramBucket struct {
	Low   float64
	High  float64
	Count int
}

// Histogram bins the given distances into `buckets` equal-width bins
// spanning [0, max]. Used to report the spread of pairwise or leg
// distances without any plotting dependency.
func Histogram(values []float64, buckets int) []HistogramBucket {
	if buckets <= 0 || len(values) == 0 {
		return nil
	}

	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		max = 1
	}

	width := max / float64(buckets)
	out := make([]HistogramBucket, buckets)
	for i := range out {
		out[i].Low = float64(i) * width
		out[i].High = float64(i+1) * width
	}

	for _, v := range values {
		idx := int(v / width)
		if idx >= buckets {
			idx = buckets - 1
		}
		out[idx].Count++
	}
	return out
}

// UpperTriangle returns each unordered pair distance once.
func UpperTriangle(m *domain.DistanceMatrix) []float64 {
	n := m.Dim()
	out := make([]float64, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}
