package cmat

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opConjT     = "ConjT"
	opEye       = "Eye"
	opHermitize = "Hermitize"
	opMul       = "Mul"
	opReal      = "Real"
	opSolve     = "Solve"
	opInverse   = "Inverse"
)

// cmatErrorf wraps err with an operation tag, preserving the cause via %w.
// Call only with err != nil.
func cmatErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ConjT materializes the conjugate transpose Aᴴ into a fresh matrix.
// gonum's CDense.H() is a lazy view; several call sites need a concrete
// *mat.CDense operand (e.g. the right-hand side of Solve).
//
// Errors:
//   - ErrNilMatrix if a is nil.
func ConjT(a *mat.CDense) (*mat.CDense, error) {
	if a == nil {
		return nil, cmatErrorf(opConjT, ErrNilMatrix)
	}
	r, c := a.Dims()
	out := mat.NewCDense(c, r, nil)
	var v complex128
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = a.At(i, j)
			out.Set(j, i, complex(real(v), -imag(v)))
		}
	}

	return out, nil
}

// Eye returns the n×n complex identity matrix.
//
// Errors:
//   - ErrBadShape if n <= 0.
func Eye(n int) (*mat.CDense, error) {
	if n <= 0 {
		return nil, cmatErrorf(opEye, ErrBadShape)
	}
	id := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}

	return id, nil
}

// Hermitize returns 0.5·(A + Aᴴ), the Hermitian part of a square matrix.
// Matrix inverses of Hermitian inputs pick up tiny asymmetric round-off;
// Hermitize restores the exact A = Aᴴ invariant the evaluators rely on.
//
// Errors:
//   - ErrNilMatrix if a is nil.
//   - ErrNonSquare if a is not square.
func Hermitize(a *mat.CDense) (*mat.CDense, error) {
	if a == nil {
		return nil, cmatErrorf(opHermitize, ErrNilMatrix)
	}
	n, c := a.Dims()
	if n != c {
		return nil, cmatErrorf(opHermitize, ErrNonSquare)
	}

	out := mat.NewCDense(n, n, nil)
	var ij, ji complex128
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			ij = a.At(i, j)
			ji = a.At(j, i)
			// 0.5*(A[i,j] + conj(A[j,i])) and its conjugate mirror.
			v := 0.5 * (ij + complex(real(ji), -imag(ji)))
			out.Set(i, j, v)
			out.Set(j, i, complex(real(v), -imag(v)))
		}
	}

	return out, nil
}

// Mul computes the matrix product A·B into a fresh matrix. mat.CDense
// carries storage and views but no product kernel, so the multiply is
// dispatched straight to cblas128.Gemm over the raw backing slices.
//
// Errors:
//   - ErrNilMatrix if a or b is nil.
//   - ErrDimensionMismatch if a.Cols != b.Rows.
func Mul(a, b *mat.CDense) (*mat.CDense, error) {
	if a == nil || b == nil {
		return nil, cmatErrorf(opMul, ErrNilMatrix)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != br {
		return nil, cmatErrorf(opMul, ErrDimensionMismatch)
	}

	out := mat.NewCDense(ar, bc, nil)
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, a.RawCMatrix(), b.RawCMatrix(), 0, out.RawCMatrix())

	return out, nil
}

// Real extracts the real part of a complex matrix into a fresh mat.Dense.
//
// Errors:
//   - ErrNilMatrix if a is nil.
func Real(a *mat.CDense) (*mat.Dense, error) {
	if a == nil {
		return nil, cmatErrorf(opReal, ErrNilMatrix)
	}
	r, c := a.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, real(a.At(i, j)))
		}
	}

	return out, nil
}

// Solve computes X such that A·X = B, where A is n×n and B is n×k.
//
// gonum ships no complex factorization, so the system is lifted into its
// real 2n×2n embedding
//
//	[ Re(A)  −Im(A) ] [ Re(X) ]   [ Re(B) ]
//	[ Im(A)   Re(A) ] [ Im(X) ] = [ Im(B) ]
//
// and handed to gonum's real dense solver. A singular or near-singular A
// surfaces as gonum's condition error, wrapped with the operation tag and
// otherwise untouched.
//
// Errors:
//   - ErrNilMatrix if a or b is nil.
//   - ErrNonSquare if a is not square.
//   - ErrDimensionMismatch if a.Rows != b.Rows.
//   - gonum's error for singular/ill-conditioned systems.
func Solve(a, b *mat.CDense) (*mat.CDense, error) {
	if a == nil || b == nil {
		return nil, cmatErrorf(opSolve, ErrNilMatrix)
	}
	n, c := a.Dims()
	if n != c {
		return nil, cmatErrorf(opSolve, ErrNonSquare)
	}
	br, k := b.Dims()
	if br != n {
		return nil, cmatErrorf(opSolve, ErrDimensionMismatch)
	}

	// Assemble the real embedding of A and the stacked right-hand side.
	embed := mat.NewDense(2*n, 2*n, nil)
	rhs := mat.NewDense(2*n, k, nil)
	var v complex128
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v = a.At(i, j)
			embed.Set(i, j, real(v))
			embed.Set(i, n+j, -imag(v))
			embed.Set(n+i, j, imag(v))
			embed.Set(n+i, n+j, real(v))
		}
		for j := 0; j < k; j++ {
			v = b.At(i, j)
			rhs.Set(i, j, real(v))
			rhs.Set(n+i, j, imag(v))
		}
	}

	var z mat.Dense
	if err := z.Solve(embed, rhs); err != nil {
		return nil, cmatErrorf(opSolve, err)
	}

	// Reassemble Re(X) (top block) and Im(X) (bottom block).
	out := mat.NewCDense(n, k, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			out.Set(i, j, complex(z.At(i, j), z.At(n+i, j)))
		}
	}

	return out, nil
}

// Inverse computes A⁻¹ by solving A·X = I via Solve. Prefer Solve when only
// A⁻¹·B is needed; forming the explicit inverse is the costlier path.
//
// Errors: as for Solve.
func Inverse(a *mat.CDense) (*mat.CDense, error) {
	if a == nil {
		return nil, cmatErrorf(opInverse, ErrNilMatrix)
	}
	n, c := a.Dims()
	if n != c {
		return nil, cmatErrorf(opInverse, ErrNonSquare)
	}
	id, err := Eye(n)
	if err != nil {
		return nil, cmatErrorf(opInverse, err)
	}
	inv, err := Solve(a, id)
	if err != nil {
		return nil, cmatErrorf(opInverse, err)
	}

	return inv, nil
}
