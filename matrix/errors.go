// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: " so it can be grepped across logs.
// Callers match with errors.Is; methods wrap with coordinates via denseErrorf.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested or supplied shape is invalid:
	// non-positive dimensions, no rows, or rows of unequal length.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaN signals a NaN value where a comparable number is required.
	// +Inf is allowed and conventionally means "no direct edge".
	ErrNaN = errors.New("matrix: NaN encountered")

	// ErrNilMatrix indicates that a nil Matrix was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
