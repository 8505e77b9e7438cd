package domain

import "errors"

// Failure taxonomy for the planning pipeline. All of these abort the
// computation: a malformed matrix or an invalid visiting order would
// silently corrupt downstream reporting, so there is no partial-success
// path.
var (
	// ErrInvalidCoordinate marks a latitude outside [-90, 90] or a
	// longitude outside [-180, 180].
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrDuplicateLocation marks a location ID that already exists in a set.
	ErrDuplicateLocation = errors.New("duplicate location")

	// ErrEmptyInput marks an operation that requires at least one location.
	ErrEmptyInput = errors.New("empty location set")

	// ErrSolverOutputMismatch marks a solver response that does not match
	// the submitted instance (wrong count, or not a permutation).
	ErrSolverOutputMismatch = errors.New("solver output mismatch")
)
