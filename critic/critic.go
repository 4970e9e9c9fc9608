package critic

import (
	"fmt"

	"github.com/katalvlaran/mcdm/decision"
	"github.com/katalvlaran/mcdm/matrix"
	"github.com/katalvlaran/mcdm/normalize"
)

// Run executes the CRITIC pipeline on an m×n decision matrix.
//
// Shape problems (empty or ragged rows, len(dirs) != n) are reported before
// any computation as errors matching decision.ErrInputShape. Non-finite cells
// are rejected with matrix.ErrNaNInf. Degenerate data never fails: constant
// columns normalize to zeros and an all-zero information content falls back
// to uniform weights.
func Run(rows [][]float64, dirs []decision.Direction) (Result, error) {
	// Stage 0: validate shape before touching the data.
	if _, _, err := decision.ValidateShape(rows, dirs); err != nil {
		return Result{}, fmt.Errorf("critic: %w", err)
	}
	X, err := matrix.NewFromRows(rows)
	if err != nil {
		return Result{}, fmt.Errorf("critic: %w", err)
	}

	// Stage 1: min-max normalization.
	N, err := normalize.MinMax(X, dirs)
	if err != nil {
		return Result{}, fmt.Errorf("critic: %w", err)
	}

	// Stage 2: dispersion.
	stds, err := StdDevs(N)
	if err != nil {
		return Result{}, fmt.Errorf("critic: %w", err)
	}

	// Stage 3: inter-criterion correlation.
	corr, err := Correlation(N)
	if err != nil {
		return Result{}, fmt.Errorf("critic: %w", err)
	}

	// Stage 4: information content.
	info, err := InformationContent(stds, corr)
	if err != nil {
		return Result{}, fmt.Errorf("critic: %w", err)
	}

	// Stage 5: weights.
	return Result{
		Weights:            Weights(info),
		NormalizedMatrix:   N.ToRows(),
		StdDevs:            stds,
		CorrelationMatrix:  corr.ToRows(),
		InformationContent: info,
	}, nil
}

// StdDevs returns the population standard deviation of each column of the
// normalized matrix.
func StdDevs(normalized *matrix.Dense) ([]float64, error) {
	return matrix.ColumnPopStdDev(normalized)
}

// Correlation returns the n×n Pearson correlation matrix between the columns
// of the normalized matrix (diag 1, zero-variance pairs 0).
func Correlation(normalized *matrix.Dense) (*matrix.Dense, error) {
	return matrix.PearsonColumns(normalized)
}

// InformationContent computes C_j = σ_j · Σ_k (1 − r_jk) over all k,
// including k == j (which contributes 0).
//
// corr must be len(stds)×len(stds); otherwise the error matches
// decision.ErrInputShape.
func InformationContent(stds []float64, corr *matrix.Dense) ([]float64, error) {
	if err := matrix.ValidateNotNil(corr); err != nil {
		return nil, err
	}
	n := len(stds)
	if r, c := corr.Shape(); r != n || c != n {
		return nil, fmt.Errorf("%w: correlation is %dx%d for %d criteria", decision.ErrInputShape, r, c, n)
	}

	info := make([]float64, n)
	var conflict, r float64
	for j := 0; j < n; j++ {
		conflict = 0.0
		for k := 0; k < n; k++ {
			r, _ = corr.At(j, k) // in range by the shape check above
			conflict += 1 - r
		}
		info[j] = stds[j] * conflict
	}

	return info, nil
}

// Weights turns information content into weights summing to 1.
// A zero total (every criterion degenerate or perfectly correlated) yields
// uniform weights 1/n.
func Weights(info []float64) []float64 {
	return decision.NormalizeWeights(info)
}
