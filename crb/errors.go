// Package crb: sentinel error set. Evaluators return these sentinels for
// input-validation failures (before any numeric work) and otherwise
// propagate the linear-algebra layer's own errors, wrapped with the
// operation tag only. Tests match both with errors.Is.

package crb

import "errors"

var (
	// ErrNilArray indicates that a nil ArrayDesign was supplied.
	ErrNilArray = errors.New("crb: array design is nil")

	// ErrNotFarField1D is returned when the supplied source placement is not
	// far-field 1D. The evaluators are derived for single-bearing sources
	// under the plane-wave assumption and reject everything else up front.
	ErrNotFarField1D = errors.New("crb: sources must be far-field and 1D")

	// ErrPowerVectorLength indicates a per-source power vector whose length
	// differs from the source count K.
	ErrPowerVectorLength = errors.New("crb: power vector length must equal the source count")

	// ErrPowerMatrixShape indicates a source covariance matrix that is not K×K.
	ErrPowerMatrixShape = errors.New("crb: source covariance must be a K x K matrix")

	// ErrSampleCovShape indicates a sample covariance passed to the
	// deterministic evaluator that is not K×K.
	ErrSampleCovShape = errors.New("crb: sample covariance must be a K x K matrix")

	// ErrBadNoise is returned for a negative or non-finite noise variance.
	ErrBadNoise = errors.New("crb: noise variance must be finite and nonnegative")

	// ErrBadSnapshots is returned for a non-positive or non-finite snapshot count.
	ErrBadSnapshots = errors.New("crb: snapshot count must be finite and positive")

	// ErrNilPowerMatrix indicates a matrix power spec constructed from nil.
	ErrNilPowerMatrix = errors.New("crb: power covariance matrix is nil")
)
