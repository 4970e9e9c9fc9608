package critic

// Result bundles the CRITIC weights with every intermediate artifact.
// All slices are freshly allocated per Run and owned by the caller.
type Result struct {
	// Weights sum to 1 (within floating tolerance) and are non-negative.
	Weights []float64 `json:"weights" yaml:"weights"`

	// NormalizedMatrix is the m×n min-max normalized decision matrix.
	NormalizedMatrix [][]float64 `json:"normalized_matrix" yaml:"normalized_matrix"`

	// StdDevs holds the population standard deviation of each normalized column.
	StdDevs []float64 `json:"std_devs" yaml:"std_devs"`

	// CorrelationMatrix is the n×n Pearson matrix between normalized columns.
	CorrelationMatrix [][]float64 `json:"correlation_matrix" yaml:"correlation_matrix"`

	// InformationContent is C_j = σ_j · Σ_k (1 − r_jk).
	InformationContent []float64 `json:"information_content" yaml:"information_content"`
}
