// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults shared by Dense constructors and kernels.
package matrix

// Numeric policy.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	// Decision matrices are real-valued by contract; NaN/Inf never reach the kernels.
	DefaultValidateNaNInf = true

	// NormZero is the additive identity for norm and accumulation operations.
	NormZero = 0.0

	// DegenerateDivisor replaces a zero divisor in column normalizations whose
	// policy is "leave the column as-is" (see ColumnL2Norms callers).
	DegenerateDivisor = 1.0
)
