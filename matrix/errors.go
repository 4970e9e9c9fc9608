// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap the sentinel with their operation
// tag ("ColumnMinMax: matrix: nil receiver"); callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape (empty / ragged) -> NaN/Inf -> dimension mismatch -> index.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrNonRectangular indicates that row slices handed to NewFromRows differ in length.
	ErrNonRectangular = errors.New("matrix: rows must have equal length")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Col/Row) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a per-column vector whose length differs from Cols().
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewFromRows     = "NewFromRows"
	opColumnMinMax    = "ColumnMinMax"
	opColumnMeans     = "ColumnMeans"
	opColumnPopStdDev = "ColumnPopStdDev"
	opColumnL2Norms   = "ColumnL2Norms"
	opPearsonColumns  = "PearsonColumns"
	opShiftDivCols    = "ShiftDivCols"
	opScaleCols       = "ScaleCols"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
