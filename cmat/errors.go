// Package cmat: sentinel error set.
// All helpers return these sentinels (optionally wrapped with an operation
// tag via %w) and tests match them with errors.Is. No helper panics on
// user-triggered conditions.

package cmat

import "errors"

var (
	// ErrNilMatrix indicates that a nil *mat.CDense was passed as an operand.
	ErrNilMatrix = errors.New("cmat: nil matrix")

	// ErrBadShape is returned when a requested dimension is not positive.
	ErrBadShape = errors.New("cmat: invalid shape")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("cmat: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Solve where a.Rows != b.Rows.
	ErrDimensionMismatch = errors.New("cmat: dimension mismatch")
)
