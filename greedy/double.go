// SPDX-License-Identifier: MIT

package greedy

import (
	"math"
	"math/rand"

	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix"
	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix/ops"
)

// Double runs the unconstrained double-greedy algorithm: it sweeps the
// ground set once, and for each element runs a biased coin flip between
// including it (oracleL, over L) and excluding it (oracleInv, over L⁻¹),
// weighted by each side's marginal log-gain. Grounded on original_source's
// double_greedy().
//
// Unlike Plain/Random/Stochastic, Double has no cardinality budget: every
// element is decided exactly once, so its result is a single Result rather
// than a per-step GreedyResult.
func Double(of OracleFactory, l, lInv matrix.View, p Param) (*Result, error) {
	if l == nil || lInv == nil {
		return nil, greedyErrorf("Double", ErrNilView)
	}
	n := l.N()
	if lInv.N() != n {
		return nil, greedyErrorf("Double", matrix.ErrDimensionMismatch)
	}

	timer := NewTimer()
	rng := rand.New(rand.NewSource(int64(p.Seed)))

	oracleL, err := of(l, n, p.LogEntries)
	if err != nil {
		return nil, greedyErrorf("Double", err)
	}
	oracleInv, err := of(lInv, n, p.LogEntries)
	if err != nil {
		return nil, greedyErrorf("Double", err)
	}

	for i := 0; i < n; i++ {
		v := oracleL.ComputeMarginalGainExponential(i)
		vInv := oracleInv.ComputeMarginalGainExponential(i)
		mg := 0.0
		if v > 1 {
			mg = math.Log(v)
		}
		mgInv := 0.0
		if vInv > 1 {
			mgInv = math.Log(vInv)
		}

		prob := 1.0
		if mg != 0 || mgInv != 0 {
			prob = mg / (mg + mgInv)
		}

		if rng.Float64() < prob {
			oracleL.Add(i)
		} else {
			oracleInv.Add(i)
		}
		p.Logger.LogStep(i, i, oracleL.Value(), l.ComputedEntries())

		if p.timeLimitExceeded(timer.Elapsed()) {
			return &Result{Finished: false, Solution: oracleL.Solution(), Value: oracleL.Value()}, nil
		}
	}

	return &Result{
		Finished: true,
		Solution: oracleL.Solution(),
		Value:    oracleL.Value(),
		Measurement: Measurement{
			Time:                  timer.Elapsed(),
			Value:                 oracleL.Value(),
			ComputedEntriesL:      l.ComputedEntries(),
			OracleCalls:           oracleL.OracleCalls() + oracleInv.OracleCalls(),
			ComputedOffdiagonalsV: oracleL.ComputedOffdiagonalsV() + oracleInv.ComputedOffdiagonalsV(),
			Offdiagonals:          append(oracleL.ComputedOffdiagonalPairs(), oracleInv.ComputedOffdiagonalPairs()...),
		},
	}, nil
}

// DoubleFromL computes L⁻¹ internally via ops.Inverse and runs Double,
// returning ErrSingularInverse (rather than panicking) if L is singular —
// this is caller-supplied data, not a violated internal invariant.
func DoubleFromL(of OracleFactory, l matrix.View, p Param) (*Result, error) {
	if l == nil {
		return nil, greedyErrorf("DoubleFromL", ErrNilView)
	}
	n := l.N()
	dense, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, greedyErrorf("DoubleFromL", err)
	}
	for i := 0; i < n; i++ {
		col, err := l.Col(i)
		if err != nil {
			return nil, greedyErrorf("DoubleFromL", err)
		}
		for j := 0; j < n; j++ {
			if err := dense.Set(j, i, col[j]); err != nil {
				return nil, greedyErrorf("DoubleFromL", err)
			}
		}
	}

	invMat, err := ops.Inverse(dense)
	if err != nil {
		return nil, greedyErrorf("DoubleFromL", ErrSingularInverse)
	}
	lInvView, err := matrix.NewDenseView(invMat)
	if err != nil {
		return nil, greedyErrorf("DoubleFromL", err)
	}
	return Double(of, l, lInvView, p)
}
