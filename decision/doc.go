// Package decision defines the input model shared by the CRITIC and TOPSIS
// engines: criterion directions, shape validation and weight helpers.
//
// A decision matrix is an m×n [][]float64 (alternatives × criteria). Every
// engine validates the matrix, its n directions and (for TOPSIS) its n weights
// up front and reports any inconsistency as an error matching ErrInputShape.
// No partial result is ever produced for a malformed input.
//
// Directions accept the spellings used by spreadsheet imports:
//
//	Benefit: "max", "maks", "fayda", "benefit"
//	Cost:    "min", "maliyet", "cost"
package decision
