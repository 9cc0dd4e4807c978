package crb

// Options configures a CRB evaluation.
//
// Fields:
//   - Snapshots — number of observation snapshots N. The bound scales as
//     1/N. Any positive real value is accepted so callers can fold in
//     fractional scaling factors; the default is 1.
//   - ReturnFIM — if true, StochasticUncorrelated also returns the raw
//     (2K+1)×(2K+1) Fisher information matrix it assembled. Ignored by the
//     other evaluators, which eliminate their nuisance parameters
//     analytically and never form the full FIM.
//
// Example:
//
//	opts := crb.DefaultOptions()
//	opts.Snapshots = 500
//	bound, err := crb.Deterministic(arr, wavelength, src, sampleCov, sigma, &opts)
type Options struct {
	Snapshots float64
	ReturnFIM bool
}

// DefaultOptions returns the canonical defaults: a single snapshot, no FIM
// output. Passing a nil *Options to an evaluator is equivalent.
func DefaultOptions() Options {
	return Options{Snapshots: 1}
}
