// SPDX-License-Identifier: MIT

package greedy

import (
	"math"
	"math/rand"

	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix"
)

// Random repeatedly pops the element at a rank drawn uniformly from
// 0..k-1 among the remaining elements (addDummy enabled, so a rank whose gain has decayed to the
// dummy threshold is skipped rather than forced). Grounded on
// original_source's random_greedy(): a per-run rand.New(rand.NewSource(seed))
// mirrors std::mt19937 engine(param.seed).
//
// Per the spec's preserved Open Question decision, the dummy threshold means
// the final solution may have fewer than k elements — this is not coerced.
func Random(of OracleFactory, sf StrategyFactory, l matrix.View, k int, p Param) (*GreedyResult, error) {
	if l == nil {
		return nil, greedyErrorf("Random", ErrNilView)
	}
	n := l.N()
	if k < 0 || k > n {
		return nil, greedyErrorf("Random", ErrInvalidCardinality)
	}

	result := newGreedyResult(k)
	timer := NewTimer()
	rng := rand.New(rand.NewSource(int64(p.Seed)))

	o, err := of(l, k, p.LogEntries)
	if err != nil {
		return nil, greedyErrorf("Random", err)
	}
	st, err := sf(o, groundSet(n), true)
	if err != nil {
		return nil, greedyErrorf("Random", err)
	}

	maxRank := k - 1
	if maxRank < 0 {
		maxRank = 0
	}

	for t := 0; t < k; t++ {
		rank := rng.Intn(maxRank + 1)
		if e, ok := st.PopKthLargest(rank); ok {
			o.Add(e)
			p.Logger.LogStep(t, e, o.Value(), l.ComputedEntries())
			m := Measurement{
				Time:                  timer.Elapsed(),
				Value:                 o.Value(),
				ComputedEntriesL:      l.ComputedEntries(),
				OracleCalls:           o.OracleCalls(),
				ComputedOffdiagonalsV: o.ComputedOffdiagonalsV(),
				Offdiagonals:          o.ComputedOffdiagonalPairs(),
			}
			result.add(e, true, m)
		}

		elapsed := timer.Elapsed()
		if p.timeLimitExceeded(elapsed) {
			return result, nil
		}
		if math.IsInf(o.Value(), -1) {
			result.Finished = true
			return result, nil
		}
	}
	result.Finished = true
	return result, nil
}
