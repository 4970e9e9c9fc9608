// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column-broadcast element-wise kernels (affine transform, scaling) and
//     row-wise Euclidean distance to a reference vector.
//   - Every kernel allocates its output; inputs are never mutated.
//
// Determinism:
//   - Fixed i→j loops over the flat row-major buffer.

package matrix

import (
	"fmt"
	"math"
)

const opRowDistances = "RowDistances"

// ShiftDivCols computes out[i,j] = (X[i,j] - shift[j]) / div[j].
// Time: O(r*c). Space: O(r*c).
//
// Min-max rescaling is ShiftDivCols(X, min, max-min); the reversed (cost)
// rescaling is ShiftDivCols(X, max, -(max-min)). div[j] == 0 zero-fills column j.
func ShiftDivCols(X *Dense, shift, div []float64) (*Dense, error) {
	if err := ValidateColVec(X, shift); err != nil {
		return nil, matrixErrorf(opShiftDivCols, err)
	}
	if err := ValidateVecLen(div, X.c); err != nil {
		return nil, matrixErrorf(opShiftDivCols, err)
	}
	r, c := X.Shape()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opShiftDivCols, err)
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		base := i * c // row base offset
		for j = 0; j < c; j++ {
			if div[j] == 0 {
				continue // degenerate column stays zero
			}
			v = (X.data[base+j] - shift[j]) / div[j]
			if v == 0 {
				v = 0 // fold -0 (x == shift with negative div) into +0
			}
			out.data[base+j] = v
		}
	}

	return out, nil
}

// ScaleCols computes out[i,j] = X[i,j] * scale[j].
// Time: O(r*c). Space: O(r*c).
func ScaleCols(X *Dense, scale []float64) (*Dense, error) {
	if err := ValidateColVec(X, scale); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	r, c := X.Shape()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			out.data[base+j] = X.data[base+j] * scale[j]
		}
	}

	return out, nil
}

// RowDistances returns, for every row i, the Euclidean distance
// sqrt(Σ_j (X[i,j] - ref[j])²).
// Time: O(r*c). Space: O(r).
func RowDistances(X *Dense, ref []float64) ([]float64, error) {
	if err := ValidateColVec(X, ref); err != nil {
		return nil, matrixErrorf(opRowDistances, err)
	}
	for j, v := range ref {
		if isNonFinite(v) {
			return nil, matrixErrorf(opRowDistances, fmt.Errorf("ref[%d]: %w", j, ErrNaNInf))
		}
	}
	r, c := X.Shape()
	out := make([]float64, r)

	var i, j int
	var d, s float64
	for i = 0; i < r; i++ {
		base := i * c
		s = NormZero
		for j = 0; j < c; j++ {
			d = X.data[base+j] - ref[j]
			s += d * d
		}
		out[i] = math.Sqrt(s)
	}

	return out, nil
}
