package crb

import (
	"gonum.org/v1/gonum/mat"
)

// powerKind discriminates the three shapes a power specification may take.
type powerKind int

const (
	powerScalar powerKind = iota
	powerVector
	powerMatrix
)

// PowerSpec is a tagged union describing source signal power: a scalar
// (all sources share one power, uncorrelated), a length-K vector
// (per-source powers, uncorrelated), or a full K×K Hermitian covariance
// matrix (possibly correlated sources). Construct one with ScalarPower,
// VectorPower or MatrixPower; the zero value behaves as ScalarPower(0).
//
// Each evaluator normalizes the spec into the representation its signal
// model needs — Covariance for the correlated stochastic model, Diagonal
// for the uncorrelated one. Normalization is a pure transformation and
// fails fast on any shape mismatch against the source count.
type PowerSpec struct {
	kind   powerKind
	scalar float64
	vec    []float64
	mtx    *mat.CDense
}

// ScalarPower describes K uncorrelated sources sharing the same power p.
func ScalarPower(p float64) PowerSpec {
	return PowerSpec{kind: powerScalar, scalar: p}
}

// VectorPower describes uncorrelated sources with per-source powers p.
// The slice is copied.
func VectorPower(p []float64) PowerSpec {
	cp := make([]float64, len(p))
	copy(cp, p)

	return PowerSpec{kind: powerVector, vec: cp}
}

// MatrixPower describes sources with the full covariance matrix p, which
// may carry correlation on its off-diagonals. The matrix is copied. A nil
// matrix is rejected at normalization time with ErrNilPowerMatrix.
func MatrixPower(p *mat.CDense) PowerSpec {
	if p == nil {
		return PowerSpec{kind: powerMatrix}
	}
	r, c := p.Dims()
	cp := mat.NewCDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			cp.Set(i, j, p.At(i, j))
		}
	}

	return PowerSpec{kind: powerMatrix, mtx: cp}
}

// Covariance expands the spec into the full K×K source covariance matrix:
// scalar and vector specs fill the diagonal and leave the off-diagonals
// zero; a matrix spec is returned as supplied (copied).
//
// Errors:
//   - ErrPowerVectorLength if a vector spec is not length K.
//   - ErrPowerMatrixShape if a matrix spec is not K×K.
//   - ErrNilPowerMatrix if a matrix spec was built from nil.
func (p PowerSpec) Covariance(k int) (*mat.CDense, error) {
	out := mat.NewCDense(k, k, nil)
	switch p.kind {
	case powerScalar:
		for i := 0; i < k; i++ {
			out.Set(i, i, complex(p.scalar, 0))
		}
	case powerVector:
		if len(p.vec) != k {
			return nil, ErrPowerVectorLength
		}
		for i := 0; i < k; i++ {
			out.Set(i, i, complex(p.vec[i], 0))
		}
	case powerMatrix:
		if p.mtx == nil {
			return nil, ErrNilPowerMatrix
		}
		if r, c := p.mtx.Dims(); r != k || c != k {
			return nil, ErrPowerMatrixShape
		}
		for i := 0; i < k; i++ {
			for j := 0; j < k; j++ {
				out.Set(i, j, p.mtx.At(i, j))
			}
		}
	}

	return out, nil
}

// Diagonal reduces the spec to a length-K power vector: a scalar is
// broadcast, a vector is copied, and a matrix contributes only the real
// part of its diagonal — off-diagonal correlation is discarded, which is
// exactly the uncorrelated-source assumption of the model that consumes
// this form.
//
// Errors: as for Covariance.
func (p PowerSpec) Diagonal(k int) ([]float64, error) {
	out := make([]float64, k)
	switch p.kind {
	case powerScalar:
		for i := range out {
			out[i] = p.scalar
		}
	case powerVector:
		if len(p.vec) != k {
			return nil, ErrPowerVectorLength
		}
		copy(out, p.vec)
	case powerMatrix:
		if p.mtx == nil {
			return nil, ErrNilPowerMatrix
		}
		if r, c := p.mtx.Dims(); r != k || c != k {
			return nil, ErrPowerMatrixShape
		}
		for i := 0; i < k; i++ {
			out[i] = real(p.mtx.At(i, i))
		}
	}

	return out, nil
}
