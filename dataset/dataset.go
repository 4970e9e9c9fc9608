package dataset

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/mcdm/decision"
)

// Shape returns (alternatives, criteria) as seen by the decision matrix.
func (ds Dataset) Shape() (m, n int) {
	if len(ds.Matrix) == 0 {
		return 0, 0
	}

	return len(ds.Matrix), len(ds.Matrix[0])
}

// FillDefaults supplies whatever a document left out: criterion names
// C1..Cn, alternative names A1..Am, and benefit directions.
// Present fields are never overwritten.
func (ds *Dataset) FillDefaults() {
	m, n := ds.Shape()
	if len(ds.CriteriaNames) == 0 && n > 0 {
		ds.CriteriaNames = labels("C", n)
	}
	if len(ds.AlternativeNames) == 0 && m > 0 {
		ds.AlternativeNames = labels("A", m)
	}
	if len(ds.Directions) == 0 && n > 0 {
		ds.Directions = make([]decision.Direction, n)
	}
}

// Validate checks that every vector agrees with the m×n matrix.
//
// Matrix and direction problems match both ErrInvalidDataset and
// decision.ErrInputShape; bad weights match decision.ErrInvalidWeight.
func (ds Dataset) Validate() error {
	m, n, err := decision.ValidateShape(ds.Matrix, ds.Directions)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataset, err)
	}
	if len(ds.CriteriaNames) != n {
		return fmt.Errorf("%w: %w: %d criterion names for %d criteria", ErrInvalidDataset, decision.ErrInputShape, len(ds.CriteriaNames), n)
	}
	if len(ds.AlternativeNames) != m {
		return fmt.Errorf("%w: %w: %d alternative names for %d alternatives", ErrInvalidDataset, decision.ErrInputShape, len(ds.AlternativeNames), m)
	}
	if len(ds.Weights) > 0 {
		if err = decision.ValidateWeights(ds.Weights, n); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataset, err)
		}
	}

	return nil
}

// HasWeights reports whether the dataset carries its own weight vector.
func (ds Dataset) HasWeights() bool { return len(ds.Weights) > 0 }

func labels(prefix string, k int) []string {
	out := make([]string, k)
	for i := range out {
		out[i] = prefix + strconv.Itoa(i+1)
	}

	return out
}
