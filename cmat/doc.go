// Package cmat provides the complex dense linear-algebra helpers that the
// CRB evaluators need on top of gonum's mat package.
//
// 🚀 What is cmat?
//
//	gonum's mat.CDense covers complex storage, conjugate-transpose views
//	and element access, but carries no complex products and no complex
//	factorization. cmat fills exactly that gap:
//	  • Eye        — complex identity
//	  • ConjT      — materialized conjugate transpose
//	  • Mul        — A·B through cblas128.Gemm on the raw storage
//	  • Hermitize  — 0.5·(A + Aᴴ), suppressing round-off asymmetry
//	  • Real       — real-part extraction into a mat.Dense
//	  • Solve      — A·X = B via the real 2n×2n embedding [[X,−Y],[Y,X]]
//	    factored with gonum's real solver
//	  • Inverse    — Solve against the identity
//
// Failure semantics follow the rest of the library: shape violations come
// back as package sentinels, and singular or ill-conditioned systems
// surface as gonum's own error, wrapped with the operation tag only so
// errors.Is / errors.As keep working on the underlying cause.
//
// All functions are pure: inputs are never mutated and results are freshly
// allocated, so concurrent callers need no synchronization.
package cmat
