package analysis

import (
	"fmt"
	"time"

	"github.com/katalvlaran/mcdm/critic"
	"github.com/katalvlaran/mcdm/decision"
	"github.com/katalvlaran/mcdm/topsis"
)

// Kind names an analysis run.
type Kind string

const (
	KindCritic       Kind = "critic"
	KindTopsis       Kind = "topsis"
	KindCriticTopsis Kind = "critic_topsis"
)

// Kinds lists every Kind in a fixed order.
var Kinds = []Kind{KindCritic, KindTopsis, KindCriticTopsis}

// ParseKind accepts a Kind name or the CLI's "rank" alias for critic_topsis.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindCritic, KindTopsis, KindCriticTopsis:
		return Kind(s), nil
	case "rank", "critic-topsis":
		return KindCriticTopsis, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Report is the persisted outcome of one run.
// Critic is set for critic and critic_topsis runs, Topsis for topsis and
// critic_topsis runs.
type Report struct {
	ID        string    `json:"id" yaml:"id"`
	Kind      Kind      `json:"kind" yaml:"kind"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	CriteriaNames    []string             `json:"criteria_names" yaml:"criteria_names"`
	AlternativeNames []string             `json:"alternative_names" yaml:"alternative_names"`
	Directions       []decision.Direction `json:"criteria_types" yaml:"criteria_types"`
	DecisionMatrix   [][]float64          `json:"decision_matrix" yaml:"decision_matrix"`

	// Weights is the vector the run produced (critic) or applied (topsis).
	Weights []float64 `json:"weights" yaml:"weights"`

	Critic *critic.Result `json:"critic,omitempty" yaml:"critic,omitempty"`
	Topsis *topsis.Result `json:"topsis,omitempty" yaml:"topsis,omitempty"`
}

// Best returns the name of the rank-1 alternative, or "" for a report
// without a ranking.
func (r Report) Best() string {
	if r.Topsis == nil {
		return ""
	}
	for i, rank := range r.Topsis.Ranking {
		if rank == 1 && i < len(r.AlternativeNames) {
			return r.AlternativeNames[i]
		}
	}

	return ""
}
