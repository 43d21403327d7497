// SPDX-License-Identifier: MIT
package oracle_test

import (
	"math"
	"testing"

	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix"
	"github.com/Alnusjaponica/DPP-MAP-Inference/oracle"
	"github.com/stretchr/testify/require"
)

func fixtureL(t *testing.T) matrix.View {
	t.Helper()
	m, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	vals := [3][3]float64{
		{4, 2, 1},
		{2, 5, 2},
		{1, 2, 6},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.NoError(t, m.Set(i, j, vals[i][j]))
		}
	}
	v, err := matrix.NewDenseView(m)
	require.NoError(t, err)
	return v
}

func TestNewDirect_RejectsNilViewAndBadCardinality(t *testing.T) {
	_, err := oracle.NewDirect(nil, 1)
	require.ErrorIs(t, err, oracle.ErrNilView)

	v := fixtureL(t)
	_, err = oracle.NewDirect(v, 4)
	require.ErrorIs(t, err, oracle.ErrInvalidCardinality)
	_, err = oracle.NewDirect(v, -1)
	require.ErrorIs(t, err, oracle.ErrInvalidCardinality)
}

func TestDirect_GreedyRunMatchesKnownDeterminant(t *testing.T) {
	v := fixtureL(t)
	o, err := oracle.NewDirect(v, 3)
	require.NoError(t, err)

	g0 := o.ComputeMarginalGainExponential(0)
	require.InDelta(t, 4.0, g0, 1e-9)
	o.Add(0)

	g1 := o.ComputeMarginalGainExponential(1)
	require.InDelta(t, 4.0, g1, 1e-9)
	o.Add(1)

	g2 := o.ComputeMarginalGainExponential(2)
	require.InDelta(t, 5.1875, g2, 1e-9)
	o.Add(2)

	require.Equal(t, []int{0, 1, 2}, o.Solution())
	require.InDelta(t, math.Log(83), o.Value(), 1e-9)
	require.Equal(t, 3, o.OracleCalls())
	require.Equal(t, 0, o.ComputedOffdiagonalsV())
	require.Nil(t, o.ComputedOffdiagonalPairs())
}

func TestDirect_RecomputeIsMemoizedUntilSGrows(t *testing.T) {
	v := fixtureL(t)
	o, err := oracle.NewDirect(v, 3)
	require.NoError(t, err)

	_ = o.ComputeMarginalGainExponential(1)
	require.Equal(t, 1, o.OracleCalls())
	_ = o.ComputeMarginalGainExponential(1) // S unchanged: must not recompute
	require.Equal(t, 1, o.OracleCalls())

	_ = o.ComputeMarginalGainExponential(0) // Add requires a gain computed against the current S
	require.Equal(t, 2, o.OracleCalls())
	o.Add(0)
	_ = o.ComputeMarginalGainExponential(1) // S grew: must recompute
	require.Equal(t, 3, o.OracleCalls())
}

func TestDirect_LastMarginalGainCountsAsOracleCallOnlyOnFirstQuery(t *testing.T) {
	v := fixtureL(t)
	o, err := oracle.NewDirect(v, 3)
	require.NoError(t, err)
	g := o.LastMarginalGainExponential(2)
	require.InDelta(t, 6.0, g, 1e-9)
	require.Equal(t, 1, o.OracleCalls())

	g = o.LastMarginalGainExponential(2) // memoized: u[2] already 0 == len(S)
	require.InDelta(t, 6.0, g, 1e-9)
	require.Equal(t, 1, o.OracleCalls())
}

func TestDirect_AddBeforeComputePanics(t *testing.T) {
	v := fixtureL(t)
	o, err := oracle.NewDirect(v, 3)
	require.NoError(t, err)
	require.Panics(t, func() {
		o.Add(0) // never queried at all: u[0] starts at -1, never matches len(S)
	})

	_ = o.LastMarginalGainExponential(0) // brings u[0] to 0 == len(S)
	require.NotPanics(t, func() { o.Add(0) })

	require.Panics(t, func() {
		o.Add(1) // never computed against the new S={0}
	})
}

func TestDirect_IndexOutOfRangePanics(t *testing.T) {
	v := fixtureL(t)
	o, err := oracle.NewDirect(v, 3)
	require.NoError(t, err)
	require.Panics(t, func() { o.ComputeMarginalGainExponential(3) })
	require.Panics(t, func() { o.ComputeMarginalGainExponential(-1) })
}
