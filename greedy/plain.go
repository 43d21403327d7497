// SPDX-License-Identifier: MIT

package greedy

import (
	"math"

	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix"
)

// Plain repeatedly pops the single best remaining element from the ground
// set until k elements are selected, a time limit is reached, or the
// running value degenerates to -Inf. Grounded on original_source's
// greedy() template function.
func Plain(of OracleFactory, sf StrategyFactory, l matrix.View, k int, p Param) (*GreedyResult, error) {
	if l == nil {
		return nil, greedyErrorf("Plain", ErrNilView)
	}
	n := l.N()
	if k < 0 || k > n {
		return nil, greedyErrorf("Plain", ErrInvalidCardinality)
	}

	result := newGreedyResult(k)
	timer := NewTimer()

	o, err := of(l, k, p.LogEntries)
	if err != nil {
		return nil, greedyErrorf("Plain", err)
	}
	st, err := sf(o, groundSet(n), false)
	if err != nil {
		return nil, greedyErrorf("Plain", err)
	}

	for t := 0; t < k; t++ {
		e, ok := st.PopLargest()
		if !ok {
			panic("greedy: Plain strategy exhausted before reaching k")
		}
		o.Add(e)

		elapsed := timer.Elapsed()
		m := Measurement{
			Time:                  elapsed,
			Value:                 o.Value(),
			ComputedEntriesL:      l.ComputedEntries(),
			OracleCalls:           o.OracleCalls(),
			ComputedOffdiagonalsV: o.ComputedOffdiagonalsV(),
			Offdiagonals:          o.ComputedOffdiagonalPairs(),
		}
		result.add(e, true, m)
		p.Logger.LogStep(t, e, o.Value(), l.ComputedEntries())

		if p.timeLimitExceeded(elapsed) {
			return result, nil
		}
		if math.IsInf(o.Value(), -1) {
			result.Finished = true
			return result, nil
		}
		if p.LogEntries {
			o.ClearComputedOffdiagonalPairs()
		}
	}
	result.Finished = true
	return result, nil
}
