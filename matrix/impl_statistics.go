// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the per-column reductions (min/max, mean, population std, L2 norm)
//     and the column-wise Pearson correlation used by the decision engines.
//   - Keep tight loops centralized here so every caller shares one traversal order.
//
// Exposed API:
//   - ColumnMinMax(X)    -> (mins, maxs)
//   - ColumnMeans(X)     -> means                // Σ_i X[i,j] / r
//   - ColumnPopStdDev(X) -> stds                 // sqrt(Σ_i (X[i,j]-mean_j)² / r)
//   - ColumnL2Norms(X)   -> norms                // sqrt(Σ_i X[i,j]²)
//   - PearsonColumns(X)  -> Corr (c×c)           // diag fixed 1; zero denominator → 0
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops; operate on the row-major flat buffer directly.
//   - All outputs are freshly allocated; X is never mutated.

package matrix

import "math"

// ColumnMinMax returns the per-column minimum and maximum.
//
// Errors:
//   - ErrNilMatrix from validation.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnMinMax(X *Dense) (mins, maxs []float64, err error) {
	if err = ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opColumnMinMax, err)
	}
	r, c := X.Shape()
	mins = make([]float64, c)
	maxs = make([]float64, c)
	// Seed with the first row so negative-only columns behave.
	copy(mins, X.data[:c])
	copy(maxs, X.data[:c])

	var i, j int
	var v float64
	for i = 1; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			v = X.data[base+j]
			if v < mins[j] {
				mins[j] = v
			}
			if v > maxs[j] {
				maxs[j] = v
			}
		}
	}

	return mins, maxs, nil
}

// ColumnMeans returns Σ_i X[i,j] / r for every column j.
// Complexity: Time O(r*c), Space O(c).
func ColumnMeans(X *Dense) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	return columnMeans(X), nil
}

// columnMeans assumes a validated, non-empty X.
func columnMeans(X *Dense) []float64 {
	r, c := X.Shape()
	means := make([]float64, c) // accumulate sums in place, then divide
	var i, j int
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			means[j] += X.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	return means
}

// ColumnPopStdDev returns the population standard deviation of each column.
//
// Implementation:
//   - Stage 1: Validate X; compute column means.
//   - Stage 2: Accumulate squared deviations per column (two-pass, no cancellation).
//   - Stage 3: std[j] = sqrt(sumsq[j] / r).
//
// Notes:
//   - The divisor is r (population), not r-1; a single-row matrix yields zeros.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnPopStdDev(X *Dense) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnPopStdDev, err)
	}
	r, c := X.Shape()
	means := columnMeans(X)
	sumsq := columnSumSqDev(X, means)

	stds := make([]float64, c)
	invR := 1.0 / float64(r)
	for j := 0; j < c; j++ {
		stds[j] = math.Sqrt(sumsq[j] * invR)
	}

	return stds, nil
}

// columnSumSqDev returns Σ_i (X[i,j] - means[j])² per column.
func columnSumSqDev(X *Dense, means []float64) []float64 {
	r, c := X.Shape()
	sumsq := make([]float64, c)
	var i, j int
	var d float64
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			d = X.data[base+j] - means[j]
			sumsq[j] += d * d
		}
	}

	return sumsq
}

// ColumnL2Norms returns sqrt(Σ_i X[i,j]²) for every column.
// Zero columns report 0; the caller decides the degenerate policy.
// Complexity: Time O(r*c), Space O(c).
func ColumnL2Norms(X *Dense) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnL2Norms, err)
	}
	r, c := X.Shape()
	norms := make([]float64, c)
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			v = X.data[base+j]
			norms[j] += v * v
		}
	}
	for j = 0; j < c; j++ {
		norms[j] = math.Sqrt(norms[j])
	}

	return norms, nil
}

// PearsonColumns computes the c×c Pearson correlation matrix between the
// columns of X.
//
// Implementation:
//   - Stage 1: Validate X; compute column means and Σ(x-mean)² per column.
//   - Stage 2: For every pair (a<b): num = Σ_i (x_ia-mean_a)(x_ib-mean_b),
//     den = sqrt(Sxx_a * Sxx_b); Corr = num/den, or 0 when den == 0.
//   - Stage 3: Mirror into the lower triangle; fix the diagonal at 1.
//
// Behavior highlights:
//   - Symmetric by construction (each pair is computed once).
//   - Diagonal is 1 even for zero-variance columns.
//   - A zero-variance column correlates 0 with every other column.
//   - Defined for r == 1 (every off-diagonal cell is 0).
//   - Rounding overshoot is clamped to [-1, 1] so 1 − r is never negative.
//
// Complexity:
//   - Time O(r*c²), Space O(r*c + c²).
func PearsonColumns(X *Dense) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opPearsonColumns, err)
	}
	r, c := X.Shape()
	means := columnMeans(X)
	sumsq := columnSumSqDev(X, means)

	// Centered copy so the pair loop reads deviations directly.
	centered := make([]float64, r*c)
	var i, j int
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			centered[base+j] = X.data[base+j] - means[j]
		}
	}

	corr, err := NewDense(c, c)
	if err != nil {
		return nil, matrixErrorf(opPearsonColumns, err)
	}

	var a, b int
	var num, den, v float64
	for a = 0; a < c; a++ {
		corr.data[a*c+a] = 1.0
		for b = a + 1; b < c; b++ {
			num = 0.0
			for i = 0; i < r; i++ {
				num += centered[i*c+a] * centered[i*c+b]
			}
			den = math.Sqrt(sumsq[a] * sumsq[b])
			v = 0.0
			if den != 0 {
				v = clampUnit(num / den)
			}
			corr.data[a*c+b] = v
			corr.data[b*c+a] = v
		}
	}

	return corr, nil
}

// clampUnit limits v to [-1, 1].
func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}

	return v
}
