// SPDX-License-Identifier: MIT

// Package normalize implements the two column normalizations used by the
// decision engines. They are intentionally separate operations because their
// degenerate-column policies differ:
//
//   - MinMax (CRITIC): Benefit (x-min)/(max-min), Cost (max-x)/(max-min);
//     a zero-range column becomes all zeros. Output lies in [0,1].
//   - Vector (TOPSIS): x / sqrt(Σ x²) per column; a zero-norm column is divided
//     by 1 and therefore stays all zeros.
//
// Both are pure: they allocate a new matrix and never touch their input.
package normalize
