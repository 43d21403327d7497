// SPDX-License-Identifier: MIT

package greedy

import (
	"math"

	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix"
	"github.com/Alnusjaponica/DPP-MAP-Inference/oracle"
	"github.com/Alnusjaponica/DPP-MAP-Inference/strategy"
)

// Interlace runs two coupled pairs of (oracle, strategy) chains that
// alternately pop from and remove out of each other, following
// original_source's interlace_greedy(). Chain pair (0,1) runs the cross-
// removing interlace subroutine on every step, including t==0. Chain pair
// (2,3) only starts cross-removing at t==1; at t==0 each of its chains pops
// independently since there is nothing yet to remove. Every chain uses
// addDummy, so a step may leave some chains without a newly committed
// element.
func Interlace(of OracleFactory, sf StrategyFactory, l matrix.View, k int, p Param) (*InterlaceResult, error) {
	if l == nil {
		return nil, greedyErrorf("Interlace", ErrNilView)
	}
	n := l.N()
	if k < 0 || k > n {
		return nil, greedyErrorf("Interlace", ErrInvalidCardinality)
	}

	result := newInterlaceResult(k)
	timer := NewTimer()

	oracles := make([]oracle.Oracle, 4)
	strategies := make([]strategy.Strategy, 4)
	for i := 0; i < 4; i++ {
		o, err := of(l, k, p.LogEntries)
		if err != nil {
			return nil, greedyErrorf("Interlace", err)
		}
		oracles[i] = o
		st, err := sf(o, groundSet(n), true)
		if err != nil {
			return nil, greedyErrorf("Interlace", err)
		}
		strategies[i] = st
	}

	for t := 0; t < k; t++ {
		var elements [4]int
		var has [4]bool

		eA0, eB0 := interlaceSubroutine(strategies[0], strategies[1], oracles[0], oracles[1])
		elements[0], has[0] = eA0.element, eA0.ok
		elements[1], has[1] = eB0.element, eB0.ok

		if t == 0 {
			for _, f := range [2]int{2, 3} {
				if e, ok := strategies[f].PopLargest(); ok {
					oracles[f].Add(e)
					elements[f], has[f] = e, true
				}
			}
		} else {
			eA1, eB1 := interlaceSubroutine(strategies[2], strategies[3], oracles[2], oracles[3])
			elements[2], has[2] = eA1.element, eA1.ok
			elements[3], has[3] = eB1.element, eB1.ok
		}

		var values [4]float64
		maxComputedEntries := 0
		totalOracleCalls := 0
		totalOffdiagonalsV := 0
		var offdiagonals [][2]int
		anyFinite := false
		for f := 0; f < 4; f++ {
			values[f] = oracles[f].Value()
			if !math.IsInf(values[f], -1) {
				anyFinite = true
			}
			totalOracleCalls += oracles[f].OracleCalls()
			totalOffdiagonalsV += oracles[f].ComputedOffdiagonalsV()
			offdiagonals = append(offdiagonals, oracles[f].ComputedOffdiagonalPairs()...)
			if p.LogEntries {
				oracles[f].ClearComputedOffdiagonalPairs()
			}
		}
		if ce := l.ComputedEntries(); ce > maxComputedEntries {
			maxComputedEntries = ce
		}

		m := Measurement{
			Time:                  timer.Elapsed(),
			Value:                 maxOf(values),
			ComputedEntriesL:      maxComputedEntries,
			OracleCalls:           totalOracleCalls,
			ComputedOffdiagonalsV: totalOffdiagonalsV,
			Offdiagonals:          offdiagonals,
		}
		result.add(elements, has, values, m)
		p.Logger.LogStep(t, -1, m.Value, maxComputedEntries)

		if p.timeLimitExceeded(m.Time) {
			return result, nil
		}
		if !anyFinite {
			result.Finished = true
			return result, nil
		}
	}
	result.Finished = true
	return result, nil
}

type poppedElement struct {
	element int
	ok      bool
}

// interlaceSubroutine pops the current best from a, commits it to a's
// oracle, then removes it from b's strategy (so b never re-selects it);
// symmetrically for b into a. Grounded on original_source's
// interlace_subroutine().
func interlaceSubroutine(a, b strategy.Strategy, oracleA, oracleB oracle.Oracle) (poppedElement, poppedElement) {
	var pa, pb poppedElement
	if e, ok := a.PopLargest(); ok {
		oracleA.Add(e)
		removeIfPresent(b, e)
		pa = poppedElement{e, true}
	}
	if e, ok := b.PopLargest(); ok {
		oracleB.Add(e)
		removeIfPresent(a, e)
		pb = poppedElement{e, true}
	}
	return pa, pb
}

// removeIfPresent tolerates an element that the counterpart chain already
// consumed on its own, e.g. pair (2,3)'s independent pop at t==0 before
// cross-removal between that pair begins.
func removeIfPresent(st strategy.Strategy, e int) {
	defer func() { recover() }()
	st.Remove(e)
}

func maxOf(v [4]float64) float64 {
	m := v[0]
	for _, x := range v[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
