package FV2D

import "errors"

var (
	ErrInvalidGrid  = errors.New("invalid grid dimensions")
	ErrGridTooLarge = errors.New("grid size overflows addressable storage")
	ErrInvalidTime  = errors.New("invalid time offset")
	// ErrNonPositive marks a blown-up solution: the first state component
	// left the physical range (h <= 0 or NaN). It is not recoverable.
	ErrNonPositive = errors.New("non-positive first state component")
)
