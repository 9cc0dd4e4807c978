// Package model defines the array-geometry and source-placement values the
// CRB evaluators consume.
//
// 🚀 What lives here?
//
//   - SourcePlacement — the minimal contract every placement satisfies
//   - FarField1D      — K sources, each a single bearing angle under the
//     plane-wave assumption; the only placement the CRB evaluators accept
//   - FarField2D      — azimuth/elevation pairs; exists so callers holding
//     a richer placement get a clean validation error instead of a numeric one
//   - ArrayDesign     — the geometry contract: element count plus steering
//     matrix (and optionally its bearing derivative)
//   - UniformLinearArray — reference geometry with closed-form steering
//     matrix and derivative
//
// For a uniform linear array with element positions x_m = m·spacing the
// far-field 1D steering response and its bearing derivative are
//
//	A[m,k]  = exp(j·2π/λ·x_m·sin θ_k)
//	D[m,k]  = j·2π/λ·x_m·cos θ_k · A[m,k]
//
// Angles are in radians, measured from broadside. All values here are
// immutable after construction; accessors return copies.
package model
