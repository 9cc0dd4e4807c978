// Package model: sentinel error set. Constructors and steering-matrix
// providers return these sentinels; tests match them via errors.Is.

package model

import "errors"

var (
	// ErrNoSources indicates that a placement was constructed with zero angles.
	ErrNoSources = errors.New("model: placement needs at least one source")

	// ErrAngleCountMismatch indicates azimuth/elevation slices of unequal length.
	ErrAngleCountMismatch = errors.New("model: azimuth and elevation counts differ")

	// ErrBadAngle signals a NaN or ±Inf bearing at construction time.
	ErrBadAngle = errors.New("model: bearing angle is not finite")

	// ErrBadElementCount is returned when an array is requested with fewer
	// than one element.
	ErrBadElementCount = errors.New("model: element count must be positive")

	// ErrBadSpacing is returned for a non-positive inter-element spacing.
	ErrBadSpacing = errors.New("model: element spacing must be positive")

	// ErrBadWavelength is returned for a non-positive carrier wavelength.
	ErrBadWavelength = errors.New("model: wavelength must be positive")

	// ErrUnsupportedPlacement signals that an array cannot produce a steering
	// matrix for the given placement kind.
	ErrUnsupportedPlacement = errors.New("model: placement kind not supported by this array")
)
