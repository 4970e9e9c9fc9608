package topsis

// Result bundles the closeness coefficients and ranking with every
// intermediate artifact. All slices are freshly allocated per Run.
type Result struct {
	// NormalizedMatrix is the m×n vector-normalized decision matrix.
	NormalizedMatrix [][]float64 `json:"normalized_matrix" yaml:"normalized_matrix"`

	// WeightedMatrix is NormalizedMatrix with column j scaled by WeightsUsed[j].
	WeightedMatrix [][]float64 `json:"weighted_matrix" yaml:"weighted_matrix"`

	// IdealPositive (A+) and IdealNegative (A−) hold one value per criterion.
	IdealPositive []float64 `json:"ideal_positive" yaml:"ideal_positive"`
	IdealNegative []float64 `json:"ideal_negative" yaml:"ideal_negative"`

	// DistancePositive and DistanceNegative are per-alternative Euclidean distances.
	DistancePositive []float64 `json:"distance_positive" yaml:"distance_positive"`
	DistanceNegative []float64 `json:"distance_negative" yaml:"distance_negative"`

	// Closeness lies in [0,1]; higher is better.
	Closeness []float64 `json:"closeness" yaml:"closeness"`

	// Ranking[i] is the 1-based rank of alternative i (a permutation of 1..m).
	Ranking []int `json:"ranking" yaml:"ranking"`

	// WeightsUsed is a copy of the weight vector applied in stage 2.
	WeightsUsed []float64 `json:"weights_used" yaml:"weights_used"`
}

// Order returns alternative indices from best to worst, derived from Ranking.
func (r Result) Order() []int {
	order := make([]int, len(r.Ranking))
	for i, rank := range r.Ranking {
		if rank >= 1 && rank <= len(order) {
			order[rank-1] = i
		}
	}

	return order
}
