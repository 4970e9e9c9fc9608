// Package matrix provides the dense numeric kernels behind the decision engines.
//
// What & Why:
//
//	Dense is a row-major float64 matrix with bounds-checked accessors and a
//	finite-value ingestion policy. The package exposes the column-wise
//	reductions and broadcasts that CRITIC and TOPSIS are built from:
//
//	  • ColumnMinMax, ColumnMeans, ColumnPopStdDev, ColumnL2Norms
//	  • PearsonColumns (c×c correlation, diag = 1, zero-variance → 0)
//	  • ShiftDivCols, ScaleCols (column broadcasts)
//	  • RowDistances (Euclidean distance of each row to a reference vector)
//
//	Every kernel allocates its result; inputs are never mutated, so one Dense
//	may be shared read-only across goroutines.
//
// Complexity:
//
//	Reductions and broadcasts run in O(r·c); PearsonColumns runs in O(r·c²).
package matrix
