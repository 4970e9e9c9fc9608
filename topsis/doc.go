// Package topsis ranks alternatives with TOPSIS (Technique for Order of
// Preference by Similarity to Ideal Solution).
//
// 🚀 What is TOPSIS?
//
//	Every alternative is a point in criterion space. TOPSIS builds the best
//	(A+) and worst (A−) reachable points from the weighted matrix and prefers
//	alternatives that sit close to A+ and far from A−.
//
// Algorithm (fixed order):
//  1. Vector-normalize each column (zero norm → divisor 1).
//  2. Multiply column j by weight w_j.
//  3. A+_j = max (Benefit) or min (Cost) of column j; A−_j the opposite.
//  4. D+_i, D−_i = Euclidean distance of row i to A+ and A−.
//  5. C_i = D−_i / (D+_i + D−_i); a zero denominator is treated as 1.
//  6. Rank by descending C; ties keep input order; rank 1 = best.
//
// Weights are used exactly as supplied. Pass them through
// decision.NormalizeWeights first if they should sum to 1.
//
// ⚙️ Usage:
//
//	res, err := topsis.Run(rows, weights, dirs)
//	if err != nil { ... }
//	for i, r := range res.Ranking { fmt.Println(i, r, res.Closeness[i]) }
//
// Complexity: O(m·n + m log m) time, O(m·n) memory.
package topsis
