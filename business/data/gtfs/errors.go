package gtfs

import "errors"

// Error kinds surfaced by the generator. Callers match them with errors.Is;
// wrapped messages carry the offending identifier or counts.
var (
	// ErrInvalidInput reports malformed or undersized input to a transformation
	ErrInvalidInput = errors.New("invalid input")

	// ErrCoordinateCountMismatch reports a route link whose waypoint count does
	// not match the stop sequence it is being reconciled against
	ErrCoordinateCountMismatch = errors.New("coordinate count mismatch")

	// ErrNotFound reports a reference to an identifier absent from a registry
	ErrNotFound = errors.New("not found")

	// ErrDanglingReference reports feed data referencing an unknown entity
	ErrDanglingReference = errors.New("dangling reference")
)
