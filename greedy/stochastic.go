// SPDX-License-Identifier: MIT

package greedy

import (
	"math"
	"math/rand"

	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix"
)

// stochasticEps is the fixed sampling-failure tolerance from original_source's
// stochastic_greedy(); the reference implementation does not expose it as a
// tunable parameter, so neither does this driver.
const stochasticEps = 0.5

// Stochastic restricts each step's candidate pool to a random sample of size
// s = ceil(n/k * ln(1/eps)) drawn from the elements not yet selected, rather
// than scanning the whole ground set. Grounded on original_source's
// stochastic_greedy(), including its Fisher-Yates index-inverse maintenance
// of the remaining candidate pool.
func Stochastic(of OracleFactory, sf StrategyFactory, l matrix.View, k int, p Param) (*GreedyResult, error) {
	if l == nil {
		return nil, greedyErrorf("Stochastic", ErrNilView)
	}
	n := l.N()
	if k < 0 || k > n {
		return nil, greedyErrorf("Stochastic", ErrInvalidCardinality)
	}

	result := newGreedyResult(k)
	timer := NewTimer()
	rng := rand.New(rand.NewSource(int64(p.Seed)))

	o, err := of(l, k, p.LogEntries)
	if err != nil {
		return nil, greedyErrorf("Stochastic", err)
	}

	s := 0
	if k > 0 {
		s = int(math.Ceil(float64(n) / float64(k) * math.Log(1.0/stochasticEps)))
	}

	t := make([]int, n)
	tInv := make([]int, n)
	for i := range t {
		t[i] = i
		tInv[i] = i
	}
	live := n

	for step := 0; step < k; step++ {
		currentS := s
		if currentS > live {
			currentS = live
		}
		fisherYatesShuffle(t[:live], tInv, currentS, rng)

		st, err := sf(o, append([]int(nil), t[:currentS]...), false)
		if err != nil {
			return nil, greedyErrorf("Stochastic", err)
		}
		if e, ok := st.PopLargest(); ok {
			o.Add(e)
			live = removeT(e, t[:live], tInv)
			p.Logger.LogStep(step, e, o.Value(), l.ComputedEntries())
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

// fisherYatesShuffle randomizes the first m positions of t (m <= len(t)),
// maintaining tInv as t's inverse permutation (tInv[t[i]] == i) so that
// removeT can locate any element's current slot in O(1).
func fisherYatesShuffle(t, tInv []int, m int, rng *rand.Rand) {
	n := len(t)
	if m > n {
		m = n
	}
	for i := 0; i < m; i++ {
		j := i + rng.Intn(n-i)
		swapT(i, j, t, tInv)
	}
}

func swapT(i, j int, t, tInv []int) {
	t[i], t[j] = t[j], t[i]
	tInv[t[i]] = i
	tInv[t[j]] = j
}

// removeT swaps e into the vacated slot at the end of the live prefix of t,
// keeping tInv consistent, and returns the new live length. Since a selected
// element never reappears in a future sample, the prefix t[:newLive] is all
// that fisherYatesShuffle ever draws from again.
func removeT(e int, t, tInv []int) int {
	last := len(t) - 1
	i := tInv[e]
	swapT(i, last, t, tInv)
	return last
}
