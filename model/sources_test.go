package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arraykit/doabound/model"
)

// TestFarField1D_Construct verifies size, angle order, and input copying.
func TestFarField1D_Construct(t *testing.T) {
	in := []float64{-0.4, 0.1, 0.9}
	src, err := model.NewFarField1D(in)
	require.NoError(t, err)
	assert.Equal(t, 3, src.Size())
	assert.Equal(t, in, src.Angles())

	// Mutating the caller's slice must not reach the placement.
	in[0] = 99
	assert.Equal(t, -0.4, src.Angles()[0], "placement must copy its input")

	// Mutating the accessor's result must not reach the placement either.
	src.Angles()[1] = 99
	assert.Equal(t, 0.1, src.Angles()[1], "accessor must return a copy")
}

// TestFarField1D_Validation covers the construction sentinels.
func TestFarField1D_Validation(t *testing.T) {
	_, err := model.NewFarField1D(nil)
	assert.ErrorIs(t, err, model.ErrNoSources)
	_, err = model.NewFarField1D([]float64{})
	assert.ErrorIs(t, err, model.ErrNoSources)
	_, err = model.NewFarField1D([]float64{0.1, math.NaN()})
	assert.ErrorIs(t, err, model.ErrBadAngle)
	_, err = model.NewFarField1D([]float64{math.Inf(1)})
	assert.ErrorIs(t, err, model.ErrBadAngle)
}

// TestFarField2D_Construct verifies pairing, size, and the mismatch sentinel.
func TestFarField2D_Construct(t *testing.T) {
	src, err := model.NewFarField2D([]float64{0.1, 0.2}, []float64{-0.3, 0.4})
	require.NoError(t, err)
	assert.Equal(t, 2, src.Size())
	assert.Equal(t, []float64{0.1, 0.2}, src.Azimuth())
	assert.Equal(t, []float64{-0.3, 0.4}, src.Elevation())

	_, err = model.NewFarField2D([]float64{0.1}, []float64{0.1, 0.2})
	assert.ErrorIs(t, err, model.ErrAngleCountMismatch)
	_, err = model.NewFarField2D(nil, nil)
	assert.ErrorIs(t, err, model.ErrNoSources)
	_, err = model.NewFarField2D([]float64{0.1}, []float64{math.NaN()})
	assert.ErrorIs(t, err, model.ErrBadAngle)
}
