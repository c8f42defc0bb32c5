package gmath

import "errors"

var (
	// ErrInvalidArgument is returned for out-of-range bounds or malformed
	// coordinate sequences (odd length, fewer than 3 points).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDegeneratePolygon is returned when triangulation cannot proceed,
	// typically because the input self-intersects or is fully collinear.
	ErrDegeneratePolygon = errors.New("degenerate polygon")

	// ErrSingularTransform is returned when inverting a transform whose
	// matrix has no inverse (zero scale on an axis).
	ErrSingularTransform = errors.New("singular transform")
)
