// Package critic derives objective criterion weights with the CRITIC method
// (CRiteria Importance Through Intercriteria Correlation).
//
// 🚀 What is CRITIC?
//
//	A criterion earns weight when it both spreads the alternatives apart
//	(high standard deviation) and disagrees with the other criteria (low
//	correlation). The method needs no expert input, only the decision matrix.
//
// Algorithm (single deterministic pass):
//  1. Min-max normalize every column by direction (zero range → zeros).
//  2. σ_j = population standard deviation of normalized column j (divide by m).
//  3. r_jk = Pearson correlation of normalized columns (diag 1; zero variance → 0).
//  4. C_j = σ_j · Σ_k (1 − r_jk).
//  5. w_j = C_j / Σ C, or 1/n for every criterion when Σ C == 0.
//
// ⚙️ Usage:
//
//	res, err := critic.Run(rows, []decision.Direction{decision.Benefit, decision.Cost})
//	if errors.Is(err, decision.ErrInputShape) { ... }
//	fmt.Println(res.Weights)
//
// Complexity: O(m·n²) time, O(m·n + n²) memory.
package critic
