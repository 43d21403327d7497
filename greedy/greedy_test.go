// SPDX-License-Identifier: MIT
package greedy_test

import (
	"math"
	"testing"

	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix"
	"github.com/stretchr/testify/require"
)

// diagonalView builds a diagonal kernel: gains never depend on selection
// order, so it isolates a driver's traversal/sampling logic from the
// Schur-complement math already covered by the oracle and strategy packages.
func diagonalView(t *testing.T, diag []float64) matrix.View {
	t.Helper()
	n := len(diag)
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, diag[i]))
	}
	v, err := matrix.NewDenseView(m)
	require.NoError(t, err)
	return v
}

// spdView builds L = BᵀB + ridge·I from a dense factor, a well-conditioned
// PSD kernel usable by Double (which additionally needs L⁻¹ to exist).
func spdView(t *testing.T, b [][]float64, ridge float64) matrix.View {
	t.Helper()
	rows := len(b)
	cols := len(b[0])
	bm, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, bm.Set(i, j, b[i][j]))
		}
	}
	l, err := matrix.NewDense(cols, cols)
	require.NoError(t, err)
	for i := 0; i < cols; i++ {
		for j := 0; j < cols; j++ {
			sum := 0.0
			for r := 0; r < rows; r++ {
				sum += b[r][i] * b[r][j]
			}
			if i == j {
				sum += ridge
			}
			require.NoError(t, l.Set(i, j, sum))
		}
	}
	v, err := matrix.NewDenseView(l)
	require.NoError(t, err)
	return v
}

func requireFinite(t *testing.T, v float64) {
	t.Helper()
	require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
}
