package internal

import "github.com/pkg/errors"

// Failure values returned to callers. Operations wrap these with context, so
// test for them with errors.Is (or compare errors.Cause).
var (
	ErrInsufficientPoints  = errors.New("at least 3 points are required")
	ErrDegenerateTriangle  = errors.New("degenerate triangle has no circumcircle")
	ErrEmptyTriangulation  = errors.New("triangulation is empty")
	ErrDuplicatePoint      = errors.New("duplicate point")
	ErrCoordinateRange     = errors.New("coordinate out of range")
	ErrInvalidMarginFactor = errors.New("invalid margin factor")
)
