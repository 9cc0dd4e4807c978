package crb

import (
	"gonum.org/v1/gonum/mat"

	"github.com/arraykit/doabound/model"
)

// Deterministic computes the deterministic (conditional) CRB for far-field
// 1D sources.
//
// Under this model the source waveforms themselves are unknown
// deterministic sequences and the noise is complex white Gaussian.
// sampleCov is the empirical second moment of the source signals,
// (1/N)·Σ x(t)·xᴴ(t) over the N snapshots — not a model parameter, which
// is where this evaluator's semantics differ from Stochastic. There is no
// noise-covariance coupling between the angle and signal unknowns, so the
// angle block of the Fisher information is directly the projected
// derivative energy weighted by the sample covariance:
//
//	H   = Dᴴ·(I − P_A)·D
//	CRB = σ/(2N) · [ Re( H ⊙ sampleCovᵗ ) ]⁻¹
//
// The result is forced symmetric before return.
//
// Errors:
//   - ErrNilArray, ErrNotFarField1D, ErrBadNoise, ErrBadSnapshots —
//     validation failures, raised before any numeric work.
//   - ErrSampleCovShape if sampleCov is nil or not K×K.
//   - steering-matrix errors from the array (model sentinels).
//   - singular-matrix errors from the linear-algebra layer, propagated.
func Deterministic(array model.ArrayDesign, wavelength float64, sources model.SourcePlacement, sampleCov *mat.CDense, sigma float64, opts *Options) (*mat.Dense, error) {
	eff, err := resolveOptions(opts)
	if err != nil {
		return nil, crbErrorf(opDeterministic, err)
	}
	ff, err := validateInputs(array, sources, sigma)
	if err != nil {
		return nil, crbErrorf(opDeterministic, err)
	}

	k := ff.Size()
	if sampleCov == nil {
		return nil, crbErrorf(opDeterministic, ErrSampleCovShape)
	}
	if r, c := sampleCov.Dims(); r != k || c != k {
		return nil, crbErrorf(opDeterministic, ErrSampleCovShape)
	}

	a, d, err := array.SteeringMatrix(ff, wavelength, true)
	if err != nil {
		return nil, crbErrorf(opDeterministic, err)
	}

	h, err := projectedDerivativeEnergy(a, d)
	if err != nil {
		return nil, crbErrorf(opDeterministic, err)
	}

	fim, err := realHadamardTrans(h, sampleCov)
	if err != nil {
		return nil, crbErrorf(opDeterministic, err)
	}
	var inv mat.Dense
	if err = inv.Inverse(fim); err != nil {
		return nil, crbErrorf(opDeterministic, err)
	}
	inv.Scale(sigma/(2*eff.Snapshots), &inv)

	return symmetrized(&inv), nil
}
