// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and comparison utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcdm/matrix"
)

const epsTight = 1e-12

// MustFromRows builds a *Dense from rows or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireRowsClose compares a matrix against expected rows within tol.
func requireRowsClose(t testing.TB, want [][]float64, got *matrix.Dense, tol float64) {
	t.Helper()
	r, c := got.Shape()
	require.Equal(t, len(want), r, "row count")
	for i := range want {
		require.Len(t, want[i], c, "col count at row %d", i)
		for j := range want[i] {
			require.InDelta(t, want[i][j], MustAt(t, got, i, j), tol, "cell (%d,%d)", i, j)
		}
	}
}
