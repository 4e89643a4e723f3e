package blit

import "errors"

// Sentinel errors for surface construction. Geometry is never an error
// at blit time; out-of-range rectangles crop instead of failing.
var (
	// ErrSizeMismatch is returned when a slice-backed surface is created
	// with a data length that does not equal width*height.
	ErrSizeMismatch = errors.New("blit: data length does not match surface size")

	// ErrBadWidth is returned when a surface width is zero or negative
	// where a positive width is required.
	ErrBadWidth = errors.New("blit: surface width must be positive")
)
