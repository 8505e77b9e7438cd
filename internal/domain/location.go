package domain

import (
	"fmt"
	"strings"
)

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Validate checks that both components are inside their legal ranges.
func (c Coordinates) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrInvalidCoordinate, c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v outside [-180, 180]", ErrInvalidCoordinate, c.Lon)
	}
	return nil
}

// A named point to visit. Immutable once loaded.
type Location struct {
	ID string
	Coordinates
}

// LocationSet is an ordered sequence of unique locations.
//
// Insertion order is load-bearing: the external solver communicates
// results as zero-based integer indices into this order, so the set must
// never be reordered between writing a request and reading a response.
type LocationSet struct {
	locs  []Location
	index map[string]int
}

func NewLocationSet() *LocationSet {
	return &LocationSet{index: make(map[string]int)}
}

// NewLocationSetFrom builds a set from a slice, preserving slice order.
func NewLocationSetFrom(locs []Location) (*LocationSet, error) {
	s := NewLocationSet()
	for _, l := range locs {
		if err := s.Add(l); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add appends a location, validating coordinates and ID uniqueness.
func (s *LocationSet) Add(l Location) error {
	id := strings.TrimSpace(l.ID)
	if id == "" {
		return fmt.Errorf("add location: ID must be non-empty")
	}
	if _, ok := s.index[id]; ok {
		return fmt.Errorf("add location: %w: %q", ErrDuplicateLocation, id)
	}
	if err := l.Validate(); err != nil {
		return fmt.Errorf("add location %q: %w", id, err)
	}

	l.ID = id
	s.index[id] = len(s.locs)
	s.locs = append(s.locs, l)
	return nil
}

// Len returns the number of locations in the set.
func (s *LocationSet) Len() int { return len(s.locs) }

// At returns the location at positional index i (solver index order).
func (s *LocationSet) At(i int) Location { return s.locs[i] }

// IndexOf returns the positional index of an ID.
func (s *LocationSet) IndexOf(id string) (int, bool) {
	i, ok := s.index[id]
	return i, ok
}

// Locations returns a copy of the ordered sequence.
func (s *LocationSet) Locations() []Location {
	out := make([]Location, len(s.locs))
	copy(out, s.locs)
	return out
}
