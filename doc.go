// Package doabound computes Cramér-Rao lower bounds (CRB) for
// direction-of-arrival estimation from sensor-array data — the theoretical
// floor on the variance of any unbiased bearing estimator.
//
// 🚀 What is doabound?
//
//	A small, focused numeric library that brings together:
//		• Three statistical signal models: stochastic (correlated sources),
//		  deterministic (conditional), and stochastic-uncorrelated
//		• Exact Fisher-information derivations for each model, down to the
//		  angle-only sub-block of the inverted FIM
//		• A flexible power specification (scalar / per-source vector /
//		  full covariance matrix) with explicit normalization
//		• A reference uniform linear array with closed-form steering
//		  matrix and bearing derivative
//
// ✨ Why choose doabound?
//
//   - Faithful numerics – Hermitian symmetrization, real-part extraction
//     and snapshot scaling match the published closed-form results
//   - Pure functions – no shared state, safe for concurrent callers
//   - Explicit errors – validation sentinels up front, singular-matrix
//     failures propagated untouched from the linear-algebra layer
//
// Everything is organized under three subpackages:
//
//	cmat/  — complex dense linear-algebra helpers layered over gonum
//	model/ — array geometries and source placements (steering matrices)
//	crb/   — the three CRB evaluators and the power-spec normalizer
//
// Quick sketch:
//
//	    sources θ₁..θ_K ──► steering A, derivative D ──► FIM ──► CRB[K,K]
//
// Dive into crb's example tests for end-to-end scenarios.
//
//	go get github.com/arraykit/doabound/crb
package doabound
