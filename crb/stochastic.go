package crb

import (
	"gonum.org/v1/gonum/mat"

	"github.com/arraykit/doabound/cmat"
	"github.com/arraykit/doabound/model"
)

// Stochastic computes the stochastic (unconditional) CRB for far-field 1D
// sources.
//
// Under this model the source signals are zero-mean complex Gaussian with
// unknown covariance, and the noise is complex white Gaussian. The unknown
// parameters are the K bearings, the real and imaginary parts of the
// source covariance, and the noise variance; the covariance and noise
// nuisance parameters are eliminated analytically through the
// block-matrix Schur-complement identity, so only the K×K angle block is
// ever formed:
//
//	H   = Dᴴ·(I − P_A)·D
//	CRB = σ/(2N) · [ Re( H ⊙ (P·Aᴴ·R⁻¹·A·P)ᵗ ) ]⁻¹,  R = A·P·Aᴴ + σI
//
// Array calibration is assumed perturbation-free. The result is forced
// symmetric before return.
//
// Errors:
//   - ErrNilArray, ErrNotFarField1D, ErrBadNoise, ErrBadSnapshots —
//     validation failures, raised before any numeric work.
//   - ErrPowerVectorLength / ErrPowerMatrixShape / ErrNilPowerMatrix —
//     power spec does not match the source count.
//   - steering-matrix errors from the array (model sentinels).
//   - singular-matrix errors from the linear-algebra layer, propagated.
func Stochastic(array model.ArrayDesign, wavelength float64, sources model.SourcePlacement, p PowerSpec, sigma float64, opts *Options) (*mat.Dense, error) {
	eff, err := resolveOptions(opts)
	if err != nil {
		return nil, crbErrorf(opStochastic, err)
	}
	ff, err := validateInputs(array, sources, sigma)
	if err != nil {
		return nil, crbErrorf(opStochastic, err)
	}

	k := ff.Size()
	cov, err := p.Covariance(k)
	if err != nil {
		return nil, crbErrorf(opStochastic, err)
	}

	a, d, err := array.SteeringMatrix(ff, wavelength, true)
	if err != nil {
		return nil, crbErrorf(opStochastic, err)
	}

	h, err := projectedDerivativeEnergy(a, d)
	if err != nil {
		return nil, crbErrorf(opStochastic, err)
	}

	// R = A·P·Aᴴ + σ·I.
	aH, err := cmat.ConjT(a)
	if err != nil {
		return nil, crbErrorf(opStochastic, err)
	}
	ap, err := cmat.Mul(a, cov)
	if err != nil {
		return nil, crbErrorf(opStochastic, err)
	}
	apa, err := cmat.Mul(ap, aH)
	if err != nil {
		return nil, crbErrorf(opStochastic, err)
	}
	m, _ := a.Dims()
	r := mat.NewCDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i == j {
				r.Set(i, j, apa.At(i, j)+complex(sigma, 0))
			} else {
				r.Set(i, j, apa.At(i, j))
			}
		}
	}

	// W = P·(Aᴴ·R⁻¹·A)·P via one solve against A.
	rinvA, err := cmat.Solve(r, a)
	if err != nil {
		return nil, crbErrorf(opStochastic, err)
	}
	inner, err := cmat.Mul(aH, rinvA)
	if err != nil {
		return nil, crbErrorf(opStochastic, err)
	}
	pw, err := cmat.Mul(cov, inner)
	if err != nil {
		return nil, crbErrorf(opStochastic, err)
	}
	w, err := cmat.Mul(pw, cov)
	if err != nil {
		return nil, crbErrorf(opStochastic, err)
	}

	fim, err := realHadamardTrans(h, w)
	if err != nil {
		return nil, crbErrorf(opStochastic, err)
	}
	var inv mat.Dense
	if err = inv.Inverse(fim); err != nil {
		return nil, crbErrorf(opStochastic, err)
	}
	inv.Scale(sigma/(2*eff.Snapshots), &inv)

	return symmetrized(&inv), nil
}
