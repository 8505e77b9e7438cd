package domain

import (
	"errors"
	"testing"
)

func tourTestSet(t *testing.T, n int) *LocationSet {
	t.Helper()
	set := NewLocationSet()
	for i := 0; i < n; i++ {
		err := set.Add(Location{
			ID:          string(rune('A' + i)),
			Coordinates: Coordinates{Lat: float64(i), Lon: float64(i)},
		})
		if err != nil {
			t.Fatalf("build set: %v", err)
		}
	}
	return set
}

func TestNewTourValidPermutation(t *testing.T) {
	set := tourTestSet(t, 4)

	tour, err := NewTour(set, []int{2, 0, 3, 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ids := tour.LocationIDs()
	want := []string{"C", "A", "D", "B"}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestNewTourRejectsBadPermutations(t *testing.T) {
	set := tourTestSet(t, 3)

	cases := []struct {
		name  string
		order []int
	}{
		{"short", []int{0, 1}},
		{"long", []int{0, 1, 2, 2}},
		{"duplicate", []int{0, 1, 1}},
		{"out of range", []int{0, 1, 3}},
		{"negative", []int{0, -1, 2}},
	}

	for _, tc := range cases {
		if _, err := NewTour(set, tc.order); !errors.Is(err, ErrSolverOutputMismatch) {
			t.Errorf("%s: error = %v, want ErrSolverOutputMismatch", tc.name, err)
		}
	}
}

func TestNewTourEmptySet(t *testing.T) {
	if _, err := NewTour(NewLocationSet(), nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
}

func TestTourClosedOrder(t *testing.T) {
	set := tourTestSet(t, 3)
	tour, err := NewTour(set, []int{1, 2, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	closed := tour.ClosedOrder()
	if len(closed) != 4 {
		t.Fatalf("closed order len = %d, want 4", len(closed))
	}
	if closed[3] != closed[0] {
		t.Errorf("closed order does not return to start: %v", closed)
	}
	if len(tour.Order) != 3 {
		t.Errorf("ClosedOrder mutated the tour: %v", tour.Order)
	}
}

func TestTourDistances(t *testing.T) {
	set := tourTestSet(t, 3)
	m, err := NewDistanceMatrix([][]float64{
		{0, 5, 9},
		{5, 0, 3},
		{9, 3, 0},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tour, err := NewTour(set, []int{0, 1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := tour.TotalDistance(m, false); got != 8 {
		t.Errorf("open total = %v, want 8", got)
	}
	if got := tour.TotalDistance(m, true); got != 17 {
		t.Errorf("closed total = %v, want 17", got)
	}

	legs := tour.Legs(m, true)
	if len(legs) != 3 || legs[0] != 5 || legs[1] != 3 || legs[2] != 9 {
		t.Errorf("closed legs = %v, want [5 3 9]", legs)
	}
}
