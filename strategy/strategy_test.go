// SPDX-License-Identifier: MIT
package strategy_test

import (
	"testing"

	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix"
	"github.com/stretchr/testify/require"
)

// diagonalFixture builds a diagonal (hence off-diagonal-free) kernel so each
// element's marginal gain equals its diagonal entry regardless of the
// current solution — this isolates strategy behavior from oracle coupling.
func diagonalFixture(t *testing.T, diag []float64) matrix.View {
	t.Helper()
	n := len(diag)
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i, v := range diag {
		require.NoError(t, m.Set(i, i, v))
	}
	v, err := matrix.NewDenseView(m)
	require.NoError(t, err)
	return v
}

func groundSet(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
