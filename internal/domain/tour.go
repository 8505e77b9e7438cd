package domain

import "fmt"

// Tour is a visiting order over a LocationSet, produced by the external
// solver and read-only thereafter. Order is a permutation of 0..n-1 in
// the set's positional index space.
type Tour struct {
	Order []int
	Set   *LocationSet
}

// NewTour validates a solver permutation against the set it was built for.
//
// The permutation must reference every index 0..n-1 exactly once; anything
// else means the response cannot be trusted to describe this instance.
func NewTour(set *LocationSet, order []int) (*Tour, error) {
	if set == nil || set.Len() == 0 {
		return nil, fmt.Errorf("new tour: %w", ErrEmptyInput)
	}

	n := set.Len()
	if len(order) != n {
		return nil, fmt.Errorf(
			"new tour: %w: got %d indices, want %d",
			ErrSolverOutputMismatch, len(order), n,
		)
	}

	seen := make([]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf(
				"new tour: %w: index %d outside [0, %d)",
				ErrSolverOutputMismatch, idx, n,
			)
		}
		if seen[idx] {
			return nil, fmt.Errorf(
				"new tour: %w: index %d appears more than once",
				ErrSolverOutputMismatch, idx,
			)
		}
		seen[idx] = true
	}

	cp := make([]int, n)
	copy(cp, order)
	return &Tour{Order: cp, Set: set}, nil
}

// ClosedOrder returns the visiting order with the first index repeated at
// the end, denoting the return leg of a closed tour.
func (t *Tour) ClosedOrder() []int {
	out := make([]int, 0, len(t.Order)+1)
	out = append(out, t.Order...)
	out = append(out, t.Order[0])
	return out
}

// LocationIDs returns the visiting order as location identifiers.
func (t *Tour) LocationIDs() []string {
	out := make([]string, len(t.Order))
	for i, idx := range t.Order {
		out[i] = t.Set.At(idx).ID
	}
	return out
}

// Legs returns the distance of each consecutive hop under the given
// matrix, including the return leg when closed is set.
func (t *Tour) Legs(m *DistanceMatrix, closed bool) []float64 {
	order := t.Order
	if closed {
		order = t.ClosedOrder()
	}

	legs := make([]float64, 0, len(order)-1)
	for i := 0; i+1 < len(order); i++ {
		legs = append(legs, m.At(order[i], order[i+1]))
	}
	return legs
}

// TotalDistance sums the tour's leg distances under the given matrix.
func (t *Tour) TotalDistance(m *DistanceMatrix, closed bool) float64 {
	total := 0.0
	for _, leg := range t.Legs(m, closed) {
		total += leg
	}
	return total
}
