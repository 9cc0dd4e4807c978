// Package crb computes Cramér-Rao bounds on the bearing estimates of
// far-field 1D sources, for three statistical signal models.
//
// 🚀 The three evaluators
//
//   - Stochastic — sources are zero-mean complex Gaussian with an unknown
//     (possibly correlated) covariance matrix; the angle block of the
//     Fisher information is obtained after eliminating the covariance and
//     noise nuisance parameters through the projector onto the steering
//     column space (Stoica & Nehorai's unconditional bound).
//   - Deterministic — source waveforms are unknown deterministic
//     sequences; the bound is the projected-derivative energy weighted by
//     the empirical sample covariance of the signals (conditional bound).
//   - StochasticUncorrelated — sources are uncorrelated complex Gaussian;
//     the full (2K+1)×(2K+1) Fisher information over [bearings; powers;
//     noise variance] is assembled explicitly, inverted, and the angle
//     sub-block extracted. Optionally returns the raw FIM.
//
// ⚙️ Usage:
//
//	ula, _ := model.NewUniformLinearArray(8, 0.5)
//	src, _ := model.NewFarField1D([]float64{-0.2, 0.35})
//	opts := crb.DefaultOptions()
//	opts.Snapshots = 200
//
//	bound, err := crb.Stochastic(ula, 1.0, src, crb.ScalarPower(1), 0.1, &opts)
//
// Every evaluator is a pure function: (geometry, wavelength, placement,
// power spec, noise variance, snapshots) → K×K real CRB matrix, forced
// symmetric via 0.5·(C + Cᵀ) before return. Input-validation sentinels are
// raised before any numeric work; singular-matrix failures from the
// linear-algebra layer are propagated unmodified.
//
// The power of the sources is described by a PowerSpec — a scalar (equal,
// uncorrelated powers), a length-K vector (per-source powers), or a full
// K×K Hermitian covariance. Each evaluator normalizes the spec to the
// representation its model needs; in particular StochasticUncorrelated
// keeps only the diagonal of a matrix spec, so a strongly correlated
// covariance yields a bound that ignores the correlation.
package crb
