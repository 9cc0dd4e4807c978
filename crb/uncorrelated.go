package crb

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/arraykit/doabound/cmat"
	"github.com/arraykit/doabound/model"
)

// StochasticUncorrelated computes the stochastic CRB for far-field 1D
// sources under the additional assumption that the sources are mutually
// uncorrelated.
//
// The unknown parameters are the K bearings, the K diagonal source powers
// and the noise variance. The uncorrelated assumption decouples enough
// structure that the complete (2K+1)×(2K+1) Fisher information over
// [bearings; powers; noise variance] has a simpler closed form than a
// projector-based elimination, so it is assembled explicitly, inverted as
// a whole, and the top-left K×K angle block extracted and divided by the
// snapshot count.
//
// A matrix power spec contributes only its diagonal here: off-diagonal
// correlation is discarded by construction, and a strongly correlated
// covariance therefore yields a bound that does not reflect the
// correlation. Callers who need the correlated bound should use
// Stochastic instead.
//
// When opts.ReturnFIM is true the assembled Fisher information matrix is
// returned alongside the CRB; otherwise the second result is nil.
//
// Errors:
//   - ErrNilArray, ErrNotFarField1D, ErrBadNoise, ErrBadSnapshots —
//     validation failures, raised before any numeric work.
//   - ErrPowerVectorLength / ErrPowerMatrixShape / ErrNilPowerMatrix —
//     power spec does not match the source count.
//   - steering-matrix errors from the array (model sentinels).
//   - singular-matrix errors from the linear-algebra layer (singular R or
//     singular full FIM), propagated.
func StochasticUncorrelated(array model.ArrayDesign, wavelength float64, sources model.SourcePlacement, p PowerSpec, sigma float64, opts *Options) (*mat.Dense, *mat.Dense, error) {
	eff, err := resolveOptions(opts)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}
	ff, err := validateInputs(array, sources, sigma)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}

	k := ff.Size()
	pow, err := p.Diagonal(k)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}

	a, d, err := array.SteeringMatrix(ff, wavelength, true)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}
	aH, err := cmat.ConjT(a)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}
	dH, err := cmat.ConjT(d)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}

	// R = A·diag(p)·Aᴴ + σ·I.
	m, _ := a.Dims()
	scaled := mat.NewCDense(m, k, nil)
	for j := 0; j < k; j++ {
		for i := 0; i < m; i++ {
			scaled.Set(i, j, a.At(i, j)*complex(pow[j], 0))
		}
	}
	spa, err := cmat.Mul(scaled, aH)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}
	r := mat.NewCDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i == j {
				r.Set(i, j, spa.At(i, j)+complex(sigma, 0))
			} else {
				r.Set(i, j, spa.At(i, j))
			}
		}
	}

	rinvRaw, err := cmat.Inverse(r)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}
	// R is Hermitian, so R⁻¹ must be too; symmetrize away the round-off.
	rinv, err := cmat.Hermitize(rinvRaw)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}

	// Sandwich matrices between D and A through R⁻¹.
	rd, err := cmat.Mul(rinv, d)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}
	ra, err := cmat.Mul(rinv, a)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}
	drd, err := cmat.Mul(dH, rd)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}
	dra, err := cmat.Mul(dH, ra)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}
	ard, err := cmat.Mul(aH, rd)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}
	ara, err := cmat.Mul(aH, ra)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}

	rinv2, err := cmat.Mul(rinv, rinv)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}
	r2a, err := cmat.Mul(rinv2, a)
	if err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}

	dim := 2*k + 1
	fim := mat.NewDense(dim, dim, nil)

	// Angle-angle block: 2·Re[(DRDᵗ ⊙ ARA + conj(DRA) ⊙ ARD) ⊙ p·pᵗ].
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v := drd.At(j, i)*ara.At(i, j) + cmplx.Conj(dra.At(i, j))*ard.At(i, j)
			fim.Set(i, j, 2*real(v)*pow[i]*pow[j])
		}
	}

	// Power-power block: Re[ARAᴴ ⊙ ARA].
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			fim.Set(k+i, k+j, real(cmplx.Conj(ara.At(j, i))*ara.At(i, j)))
		}
	}

	// Angle-power cross block: 2·Re[conj(DRA) ⊙ (p over rows ⊙ ARA)].
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			v := 2 * real(cmplx.Conj(dra.At(i, j))*ara.At(i, j)) * pow[i]
			fim.Set(i, k+j, v)
			fim.Set(k+j, i, v)
		}
	}

	// Angle-noise column: 2·Re[p ⊙ diag(Dᴴ·R⁻²·A)], diagonal extracted via
	// elementwise product and column sum rather than a full matrix product.
	for i := 0; i < k; i++ {
		var acc complex128
		for row := 0; row < m; row++ {
			acc += cmplx.Conj(d.At(row, i)) * r2a.At(row, i)
		}
		v := 2 * pow[i] * real(acc)
		fim.Set(i, 2*k, v)
		fim.Set(2*k, i, v)
	}

	// Power-noise column: Re[diag(Aᴴ·R⁻²·A)].
	for i := 0; i < k; i++ {
		var acc complex128
		for row := 0; row < m; row++ {
			acc += cmplx.Conj(a.At(row, i)) * r2a.At(row, i)
		}
		v := real(acc)
		fim.Set(k+i, 2*k, v)
		fim.Set(2*k, k+i, v)
	}

	// Noise-noise scalar: Re[tr(R⁻²)].
	var tr complex128
	for i := 0; i < m; i++ {
		tr += rinv2.At(i, i)
	}
	fim.Set(2*k, 2*k, real(tr))

	var inv mat.Dense
	if err = inv.Inverse(fim); err != nil {
		return nil, nil, crbErrorf(opStochasticUC, err)
	}

	bound := mat.NewDense(k, k, nil)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			bound.Set(i, j, inv.At(i, j)/eff.Snapshots)
		}
	}

	var fimOut *mat.Dense
	if eff.ReturnFIM {
		fimOut = fim
	}

	return symmetrized(bound), fimOut, nil
}
