package decision

import (
	"fmt"
	"math"
)

// ValidateShape checks that rows is a non-empty rectangular m×n matrix and
// that dirs holds exactly n valid directions. It returns (m, n).
//
// Every failure wraps ErrInputShape (or ErrUnknownDirection for an
// out-of-range Direction value).
//
// Complexity: O(m + n).
func ValidateShape(rows [][]float64, dirs []Direction) (m, n int, err error) {
	if len(rows) == 0 {
		return 0, 0, fmt.Errorf("%w: matrix has no alternatives", ErrInputShape)
	}
	n = len(rows[0])
	if n == 0 {
		return 0, 0, fmt.Errorf("%w: matrix has no criteria", ErrInputShape)
	}
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != n {
			return 0, 0, fmt.Errorf("%w: row %d has %d values, want %d", ErrInputShape, i, len(rows[i]), n)
		}
	}
	if len(dirs) != n {
		return 0, 0, fmt.Errorf("%w: %d directions for %d criteria", ErrInputShape, len(dirs), n)
	}
	for j, d := range dirs {
		if !d.Valid() {
			return 0, 0, fmt.Errorf("direction %d: %w: %d", j, ErrUnknownDirection, int(d))
		}
	}

	return len(rows), n, nil
}

// ValidateWeights checks that weights has exactly n finite, non-negative entries.
//
// Length mismatches wrap ErrInputShape; bad values wrap ErrInvalidWeight.
// Complexity: O(n).
func ValidateWeights(weights []float64, n int) error {
	if len(weights) != n {
		return fmt.Errorf("%w: %d weights for %d criteria", ErrInputShape, len(weights), n)
	}
	for j, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%w: weight %d = %v", ErrInvalidWeight, j, w)
		}
	}

	return nil
}

// NormalizeWeights returns a copy of w scaled to sum to 1. A zero total falls
// back to uniform weights 1/n. w must already satisfy ValidateWeights.
//
// Complexity: O(n).
func NormalizeWeights(w []float64) []float64 {
	out := make([]float64, len(w))
	if len(w) == 0 {
		return out
	}
	total := 0.0
	for _, v := range w {
		total += v
	}
	for j, v := range w {
		if total == 0 {
			out[j] = 1.0 / float64(len(w))
			continue
		}
		out[j] = v / total
	}

	return out
}
