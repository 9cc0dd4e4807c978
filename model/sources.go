package model

import "math"

// SourcePlacement is the minimal contract shared by every placement kind.
// Concrete kinds (FarField1D, FarField2D) carry the actual angle data;
// consumers that need a specific kind type-assert and reject the rest.
type SourcePlacement interface {
	// Size returns the number of sources K.
	Size() int
}

// FarField1D is an ordered set of K source bearings (radians, broadside
// reference) under the far-field plane-wave assumption. It is the only
// placement kind the CRB evaluators operate on.
type FarField1D struct {
	angles []float64
}

// NewFarField1D builds a far-field 1D placement from bearing angles.
// The input slice is copied; the placement is immutable afterwards.
//
// Errors:
//   - ErrNoSources if angles is empty.
//   - ErrBadAngle if any bearing is NaN or ±Inf.
func NewFarField1D(angles []float64) (*FarField1D, error) {
	if len(angles) == 0 {
		return nil, ErrNoSources
	}
	for _, a := range angles {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return nil, ErrBadAngle
		}
	}
	cp := make([]float64, len(angles))
	copy(cp, angles)

	return &FarField1D{angles: cp}, nil
}

// Size returns the number of sources K.
func (s *FarField1D) Size() int { return len(s.angles) }

// Angles returns a copy of the bearing angles in placement order.
func (s *FarField1D) Angles() []float64 {
	cp := make([]float64, len(s.angles))
	copy(cp, s.angles)

	return cp
}

// FarField2D is an ordered set of (azimuth, elevation) source directions
// under the far-field assumption. The CRB evaluators in this library do
// not accept it; it exists so callers holding 2D placements fail with a
// validation error rather than a numeric one.
type FarField2D struct {
	azimuth   []float64
	elevation []float64
}

// NewFarField2D builds a far-field 2D placement from parallel azimuth and
// elevation slices. Both are copied.
//
// Errors:
//   - ErrNoSources if the slices are empty.
//   - ErrAngleCountMismatch if their lengths differ.
//   - ErrBadAngle if any angle is NaN or ±Inf.
func NewFarField2D(azimuth, elevation []float64) (*FarField2D, error) {
	if len(azimuth) == 0 {
		return nil, ErrNoSources
	}
	if len(azimuth) != len(elevation) {
		return nil, ErrAngleCountMismatch
	}
	for i := range azimuth {
		if math.IsNaN(azimuth[i]) || math.IsInf(azimuth[i], 0) ||
			math.IsNaN(elevation[i]) || math.IsInf(elevation[i], 0) {
			return nil, ErrBadAngle
		}
	}
	az := make([]float64, len(azimuth))
	copy(az, azimuth)
	el := make([]float64, len(elevation))
	copy(el, elevation)

	return &FarField2D{azimuth: az, elevation: el}, nil
}

// Size returns the number of sources K.
func (s *FarField2D) Size() int { return len(s.azimuth) }

// Azimuth returns a copy of the azimuth angles in placement order.
func (s *FarField2D) Azimuth() []float64 {
	cp := make([]float64, len(s.azimuth))
	copy(cp, s.azimuth)

	return cp
}

// Elevation returns a copy of the elevation angles in placement order.
func (s *FarField2D) Elevation() []float64 {
	cp := make([]float64, len(s.elevation))
	copy(cp, s.elevation)

	return cp
}
