package beam

import "errors"

// Domain errors for segment construction and queries.
var (
	// ErrInvalidGeometry indicates a segment with zero or negative length.
	ErrInvalidGeometry = errors.New("beam: invalid geometry (x2 must be greater than x1)")

	// ErrInvalidStiffness indicates a slope or deflection query on a
	// segment whose flexural stiffness is not positive.
	ErrInvalidStiffness = errors.New("beam: invalid flexural stiffness (EI must be positive)")
)
