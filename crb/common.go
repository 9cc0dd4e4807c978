package crb

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arraykit/doabound/cmat"
	"github.com/arraykit/doabound/model"
)

// Operation name constants for unified error wrapping.
const (
	opStochastic    = "Stochastic"
	opDeterministic = "Deterministic"
	opStochasticUC  = "StochasticUncorrelated"
)

// crbErrorf wraps err with an operation tag, preserving the cause via %w.
// Call only with err != nil.
func crbErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// resolveOptions applies defaults for a nil opts and validates the snapshot
// count. Returns the effective options by value.
func resolveOptions(opts *Options) (Options, error) {
	eff := DefaultOptions()
	if opts != nil {
		eff = *opts
	}
	if eff.Snapshots <= 0 || math.IsNaN(eff.Snapshots) || math.IsInf(eff.Snapshots, 0) {
		return eff, ErrBadSnapshots
	}

	return eff, nil
}

// validateInputs runs the shared fail-fast checks: non-nil array, far-field
// 1D placement, finite nonnegative noise variance. It returns the concrete
// placement so evaluators can read the bearings.
func validateInputs(array model.ArrayDesign, sources model.SourcePlacement, sigma float64) (*model.FarField1D, error) {
	if array == nil {
		return nil, ErrNilArray
	}
	ff, ok := sources.(*model.FarField1D)
	if !ok || ff == nil {
		return nil, ErrNotFarField1D
	}
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return nil, ErrBadNoise
	}

	return ff, nil
}

// projectedDerivativeEnergy computes H = Dᴴ·(I − P_A)·D, the derivative
// energy left in the noise subspace, where P_A = A·(AᴴA)⁻¹·Aᴴ is the
// orthogonal projector onto the steering column space. The projector is
// formed through a linear solve rather than an explicit inverse; a
// rank-deficient AᴴA (geometry cannot resolve K sources) surfaces as the
// solver's singularity error.
func projectedDerivativeEnergy(a, d *mat.CDense) (*mat.CDense, error) {
	aH, err := cmat.ConjT(a)
	if err != nil {
		return nil, err
	}
	dH, err := cmat.ConjT(d)
	if err != nil {
		return nil, err
	}

	gram, err := cmat.Mul(aH, a)
	if err != nil {
		return nil, err
	}
	sol, err := cmat.Solve(gram, aH)
	if err != nil {
		return nil, err
	}
	proj, err := cmat.Mul(a, sol)
	if err != nil {
		return nil, err
	}

	// Complement Q = I − P_A.
	m, _ := a.Dims()
	q := mat.NewCDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			if i == j {
				q.Set(i, j, 1-proj.At(i, j))
			} else {
				q.Set(i, j, -proj.At(i, j))
			}
		}
	}

	qd, err := cmat.Mul(q, d)
	if err != nil {
		return nil, err
	}

	return cmat.Mul(dH, qd)
}

// realHadamardTrans returns Re(h ⊙ wᵗ): the elementwise product of h with
// the plain (non-conjugated) transpose of w, real part only. Both the
// stochastic and deterministic Fisher blocks have this form.
func realHadamardTrans(h, w *mat.CDense) (*mat.Dense, error) {
	k, _ := h.Dims()
	prod := mat.NewCDense(k, k, nil)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			prod.Set(i, j, h.At(i, j)*w.At(j, i))
		}
	}

	return cmat.Real(prod)
}

// symmetrized returns 0.5·(C + Cᵀ), suppressing the asymmetry that
// floating-point rounding leaves in a matrix inverse.
func symmetrized(c *mat.Dense) *mat.Dense {
	n, _ := c.Dims()
	out := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(i, j, 0.5*(c.At(i, j)+c.At(j, i)))
		}
	}

	return out
}
