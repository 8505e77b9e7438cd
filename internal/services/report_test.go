package services

import (
	"math"
	"testing"

	"tour-planner-service/internal/domain"
)

func TestSummarizeMatrix(t *testing.T) {
	m, err := domain.NewDistanceMatrix([][]float64{
		{0, 10, 30},
		{10, 0, 20},
		{30, 20, 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats, err := SummarizeMatrix(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.Pairs != 3 {
		t.Errorf("pairs = %d, want 3", stats.Pairs)
	}
	if stats.Min != 10 || stats.Max != 30 {
		t.Errorf("min/max = %v/%v, want 10/30", stats.Min, stats.Max)
	}
	if math.Abs(stats.Mean-20) > 1e-9 {
		t.Errorf("mean = %v, want 20", stats.Mean)
	}
}

func TestSummarizeMatrixSingle(t *testing.T) {
	m, err := domain.NewDistanceMatrix([][]float64{{0}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats, err := SummarizeMatrix(m)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Pairs != 0 {
		t.Errorf("pairs = %d, want 0", stats.Pairs)
	}
}

func TestHistogram(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	buckets := Histogram(values, 5)

	if len(buckets) != 5 {
		t.Fatalf("buckets = %d, want 5", len(buckets))
	}

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	if total != len(values) {
		t.Errorf("bucket counts sum to %d, want %d", total, len(values))
	}

	// Max value lands in the last bucket, not out of range.
	if buckets[4].Count == 0 {
		t.Errorf("last bucket empty, expected max value inside")
	}
}

func TestHistogramEmpty(t *testing.T) {
	if got := Histogram(nil, 5); got != nil {
		t.Errorf("Histogram(nil) = %v, want nil", got)
	}
	if got := Histogram([]float64{1}, 0); got != nil {
		t.Errorf("Histogram(_, 0) = %v, want nil", got)
	}
}
