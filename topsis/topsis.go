package topsis

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mcdm/decision"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/normalize"
)

// Run executes the TOPSIS pipeline on an m×n decision matrix.
//
// Shape problems (empty or ragged rows, len(dirs) != n, len(weights) != n)
// are reported before any computation as errors matching
// decision.ErrInputShape. Negative or non-finite weights match
// decision.ErrInvalidWeight; non-finite cells match matrix.ErrNaNInf.
func Run(rows [][]float64, weights []float64, dirs []decision.Direction) (Result, error) {
	// Stage 0: validate everything up front.
	_, n, err := decision.ValidateShape(rows, dirs)
	if err != nil {
		return Result{}, fmt.Errorf("topsis: %w", err)
	}
	if err = decision.ValidateWeights(weights, n); err != nil {
		return Result{}, fmt.Errorf("topsis: %w", err)
	}
	X, err := matrix.NewFromRows(rows)
	if err != nil {
		return Result{}, fmt.Errorf("topsis: %w", err)
	}

	// Stage 1: vector normalization.
	N, err := normalize.Vector(X)
	if err != nil {
		return Result{}, fmt.Errorf("topsis: %w", err)
	}

	// Stage 2: weighting.
	V, err := Weighted(N, weights)
	if err != nil {
		return Result{}, fmt.Errorf("topsis: %w", err)
	}

	// Stage 3: reference points.
	pos, neg, err := IdealSolutions(V, dirs)
	if err != nil {
		return Result{}, fmt.Errorf("topsis: %w", err)
	}

	// Stage 4: separation measures.
	dPos, dNeg, err := Distances(V, pos, neg)
	if err != nil {
		return Result{}, fmt.Errorf("topsis: %w", err)
	}

	// Stages 5-6: closeness and ranking.
	closeness := Closeness(dPos, dNeg)
	used := make([]float64, n)
	copy(used, weights)

	return Result{
		NormalizedMatrix: N.ToRows(),
		WeightedMatrix:   V.ToRows(),
		IdealPositive:    pos,
		IdealNegative:    neg,
		DistancePositive: dPos,
		DistanceNegative: dNeg,
		Closeness:        closeness,
		Ranking:          Rank(closeness),
		WeightsUsed:      used,
	}, nil
}

// Weighted returns N with column j multiplied by weights[j].
func Weighted(normalized *matrix.Dense, weights []float64) (*matrix.Dense, error) {
	return matrix.ScaleCols(normalized, weights)
}

// IdealSolutions derives A+ and A− from the weighted matrix.
// Benefit columns take max as ideal and min as negative-ideal; Cost inverts.
func IdealSolutions(weighted *matrix.Dense, dirs []decision.Direction) (pos, neg []float64, err error) {
	if err = matrix.ValidateNotNil(weighted); err != nil {
		return nil, nil, err
	}
	n := weighted.Cols()
	if len(dirs) != n {
		return nil, nil, fmt.Errorf("%w: %d directions for %d criteria", decision.ErrInputShape, len(dirs), n)
	}
	mins, maxs, err := matrix.ColumnMinMax(weighted)
	if err != nil {
		return nil, nil, err
	}

	pos = make([]float64, n)
	neg = make([]float64, n)
	for j := 0; j < n; j++ {
		if dirs[j] == decision.Cost {
			pos[j], neg[j] = mins[j], maxs[j]
			continue
		}
		pos[j], neg[j] = maxs[j], mins[j]
	}

	return pos, neg, nil
}

// Distances returns the Euclidean distance of every row to pos (D+) and neg (D−).
func Distances(weighted *matrix.Dense, pos, neg []float64) (dPos, dNeg []float64, err error) {
	if dPos, err = matrix.RowDistances(weighted, pos); err != nil {
		return nil, nil, err
	}
	if dNeg, err = matrix.RowDistances(weighted, neg); err != nil {
		return nil, nil, err
	}

	return dPos, dNeg, nil
}

// Closeness computes D−_i / (D+_i + D−_i). A zero denominator is replaced
// by 1, so an alternative sitting on both reference points scores 0.
// dPos and dNeg must have equal length.
func Closeness(dPos, dNeg []float64) []float64 {
	out := make([]float64, len(dPos))
	var den float64
	for i := range dPos {
		den = dPos[i] + dNeg[i]
		if den == 0 {
			den = 1
		}
		out[i] = dNeg[i] / den
	}

	return out
}

// Rank assigns 1-based ranks by descending score.
// Equal scores keep their input order (stable sort).
//
// Complexity: O(m log m).
func Rank(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	ranks := make([]int, len(scores))
	for pos, i := range order {
		ranks[i] = pos + 1
	}

	return ranks
}
