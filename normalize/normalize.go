// SPDX-License-Identifier: MIT

package normalize

import (
	"fmt"

	"github.com/katalvlaran/mcdm/decision"
	"github.com/katalvlaran/mcdm/matrix"
)

const (
	opMinMax = "normalize.MinMax"
	opVector = "normalize.Vector"
)

// MinMax rescales every column of X into [0,1] according to its direction.
//
// Implementation:
//   - Stage 1: validate len(dirs) == X.Cols() (ErrInputShape).
//   - Stage 2: per-column min/max via matrix.ColumnMinMax.
//   - Stage 3: Benefit → shift=min, div=range; Cost → shift=max, div=-range;
//     zero range → div=0 (ShiftDivCols zero-fills the column).
//
// Complexity: O(m·n) time and space.
func MinMax(X *matrix.Dense, dirs []decision.Direction) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(X); err != nil {
		return nil, fmt.Errorf("%s: %w", opMinMax, err)
	}
	n := X.Cols()
	if len(dirs) != n {
		return nil, fmt.Errorf("%s: %w: %d directions for %d criteria", opMinMax, decision.ErrInputShape, len(dirs), n)
	}

	mins, maxs, err := matrix.ColumnMinMax(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMinMax, err)
	}

	shift := make([]float64, n)
	div := make([]float64, n)
	var span float64
	for j := 0; j < n; j++ {
		span = maxs[j] - mins[j]
		if span == 0 {
			continue // no discriminating power: column normalizes to zeros
		}
		if dirs[j] == decision.Cost {
			// (x - max) / -(max - min) == (max - x) / (max - min)
			shift[j], div[j] = maxs[j], -span
			continue
		}
		shift[j], div[j] = mins[j], span
	}

	out, err := matrix.ShiftDivCols(X, shift, div)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMinMax, err)
	}

	return out, nil
}

// Vector divides every column of X by its Euclidean norm.
// A zero-norm column is divided by matrix.DegenerateDivisor (1) and stays zero.
//
// Complexity: O(m·n) time and space.
func Vector(X *matrix.Dense) (*matrix.Dense, error) {
	norms, err := matrix.ColumnL2Norms(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opVector, err)
	}
	for j := range norms {
		if norms[j] == 0 {
			norms[j] = matrix.DegenerateDivisor
		}
	}

	out, err := matrix.ShiftDivCols(X, make([]float64, len(norms)), norms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opVector, err)
	}

	return out, nil
}
