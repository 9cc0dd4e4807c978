package model

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// ArrayDesign is the geometry contract the CRB evaluators consume: an
// element count plus a steering-matrix provider. Implementations own their
// geometry; consumers treat it as read-only.
type ArrayDesign interface {
	// Size returns the number of array elements M.
	Size() int

	// SteeringMatrix returns the M×K steering matrix A for the given
	// placement and carrier wavelength. When withDerivative is true it
	// also returns D, the elementwise derivative of A with respect to
	// each source's bearing; otherwise D is nil.
	SteeringMatrix(sources SourcePlacement, wavelength float64, withDerivative bool) (a, d *mat.CDense, err error)
}

// UniformLinearArray is an M-element array with equidistant elements on a
// line, element m at position m·spacing (same length unit as the
// wavelength). Perturbation-free calibration is assumed.
type UniformLinearArray struct {
	m       int
	spacing float64
}

// NewUniformLinearArray builds a ULA with m elements spaced `spacing` apart.
//
// Errors:
//   - ErrBadElementCount if m < 1.
//   - ErrBadSpacing if spacing is not positive.
func NewUniformLinearArray(m int, spacing float64) (*UniformLinearArray, error) {
	if m < 1 {
		return nil, ErrBadElementCount
	}
	if spacing <= 0 || math.IsNaN(spacing) || math.IsInf(spacing, 0) {
		return nil, ErrBadSpacing
	}

	return &UniformLinearArray{m: m, spacing: spacing}, nil
}

// Size returns the number of array elements M.
func (u *UniformLinearArray) Size() int { return u.m }

// Spacing returns the inter-element spacing.
func (u *UniformLinearArray) Spacing() float64 { return u.spacing }

// SteeringMatrix returns the far-field 1D steering matrix
//
//	A[m,k] = exp(j·2π/λ·x_m·sin θ_k),  x_m = m·spacing
//
// and, when requested, its bearing derivative
//
//	D[m,k] = j·2π/λ·x_m·cos θ_k · A[m,k].
//
// Errors:
//   - ErrBadWavelength if wavelength is not positive.
//   - ErrUnsupportedPlacement if sources is not a *FarField1D.
func (u *UniformLinearArray) SteeringMatrix(sources SourcePlacement, wavelength float64, withDerivative bool) (*mat.CDense, *mat.CDense, error) {
	if wavelength <= 0 || math.IsNaN(wavelength) || math.IsInf(wavelength, 0) {
		return nil, nil, ErrBadWavelength
	}
	ff, ok := sources.(*FarField1D)
	if !ok {
		return nil, nil, ErrUnsupportedPlacement
	}

	angles := ff.Angles()
	k := len(angles)
	wavenum := 2 * math.Pi / wavelength

	a := mat.NewCDense(u.m, k, nil)
	var d *mat.CDense
	if withDerivative {
		d = mat.NewCDense(u.m, k, nil)
	}

	var (
		x, sin, cos float64
		resp        complex128
	)
	for j := 0; j < k; j++ {
		sin, cos = math.Sincos(angles[j])
		for i := 0; i < u.m; i++ {
			x = float64(i) * u.spacing
			resp = cmplx.Exp(complex(0, wavenum*x*sin))
			a.Set(i, j, resp)
			if withDerivative {
				d.Set(i, j, complex(0, wavenum*x*cos)*resp)
			}
		}
	}

	return a, d, nil
}
