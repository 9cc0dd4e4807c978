package model_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arraykit/doabound/model"
)

const tol = 1e-12

// TestUniformLinearArray_Construct covers the geometry constructor sentinels.
func TestUniformLinearArray_Construct(t *testing.T) {
	ula, err := model.NewUniformLinearArray(8, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 8, ula.Size())
	assert.Equal(t, 0.5, ula.Spacing())

	_, err = model.NewUniformLinearArray(0, 0.5)
	assert.ErrorIs(t, err, model.ErrBadElementCount)
	_, err = model.NewUniformLinearArray(4, 0)
	assert.ErrorIs(t, err, model.ErrBadSpacing)
	_, err = model.NewUniformLinearArray(4, -1)
	assert.ErrorIs(t, err, model.ErrBadSpacing)
	_, err = model.NewUniformLinearArray(4, math.NaN())
	assert.ErrorIs(t, err, model.ErrBadSpacing)
}

// TestSteeringMatrix_Broadside: at θ=0 every element sees the same phase,
// so the steering column is all ones and the derivative is j·2π/λ·x_m.
func TestSteeringMatrix_Broadside(t *testing.T) {
	ula, err := model.NewUniformLinearArray(4, 0.5)
	require.NoError(t, err)
	src, err := model.NewFarField1D([]float64{0})
	require.NoError(t, err)

	a, d, err := ula.SteeringMatrix(src, 1.0, true)
	require.NoError(t, err)
	r, c := a.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 1, c)

	for m := 0; m < 4; m++ {
		assert.InDelta(t, 1, real(a.At(m, 0)), tol)
		assert.InDelta(t, 0, imag(a.At(m, 0)), tol)

		wantDeriv := 2 * math.Pi * 0.5 * float64(m) // 2π/λ·x_m·cos(0)
		assert.InDelta(t, 0, real(d.At(m, 0)), tol)
		assert.InDelta(t, wantDeriv, imag(d.At(m, 0)), tol)
	}
}

// TestSteeringMatrix_KnownBearing checks one off-broadside column against
// the closed form exp(j·2π/λ·x_m·sinθ) and the unit-modulus invariant.
func TestSteeringMatrix_KnownBearing(t *testing.T) {
	const (
		wavelength = 0.75
		spacing    = 0.3
		theta      = 0.35
	)
	ula, err := model.NewUniformLinearArray(5, spacing)
	require.NoError(t, err)
	src, err := model.NewFarField1D([]float64{theta})
	require.NoError(t, err)

	a, d, err := ula.SteeringMatrix(src, wavelength, true)
	require.NoError(t, err)

	wavenum := 2 * math.Pi / wavelength
	for m := 0; m < 5; m++ {
		x := spacing * float64(m)
		want := cmplx.Exp(complex(0, wavenum*x*math.Sin(theta)))
		assert.InDelta(t, real(want), real(a.At(m, 0)), tol)
		assert.InDelta(t, imag(want), imag(a.At(m, 0)), tol)
		assert.InDelta(t, 1, cmplx.Abs(a.At(m, 0)), tol, "steering entries have unit modulus")

		wantD := complex(0, wavenum*x*math.Cos(theta)) * want
		assert.InDelta(t, real(wantD), real(d.At(m, 0)), tol)
		assert.InDelta(t, imag(wantD), imag(d.At(m, 0)), tol)
	}
}

// TestSteeringMatrix_NoDerivative verifies that D is omitted on request.
func TestSteeringMatrix_NoDerivative(t *testing.T) {
	ula, err := model.NewUniformLinearArray(3, 0.5)
	require.NoError(t, err)
	src, err := model.NewFarField1D([]float64{0.2, -0.1})
	require.NoError(t, err)

	a, d, err := ula.SteeringMatrix(src, 1.0, false)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Nil(t, d)
	r, c := a.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
}

// TestSteeringMatrix_Validation covers wavelength and placement rejection.
func TestSteeringMatrix_Validation(t *testing.T) {
	ula, err := model.NewUniformLinearArray(4, 0.5)
	require.NoError(t, err)
	src1d, err := model.NewFarField1D([]float64{0.1})
	require.NoError(t, err)
	src2d, err := model.NewFarField2D([]float64{0.1}, []float64{0.2})
	require.NoError(t, err)

	_, _, err = ula.SteeringMatrix(src1d, 0, true)
	assert.ErrorIs(t, err, model.ErrBadWavelength)
	_, _, err = ula.SteeringMatrix(src1d, -1, true)
	assert.ErrorIs(t, err, model.ErrBadWavelength)
	_, _, err = ula.SteeringMatrix(src2d, 1.0, true)
	assert.ErrorIs(t, err, model.ErrUnsupportedPlacement)
}
