// SPDX-License-Identifier: MIT

package strategy

import (
	"container/heap"
	"fmt"

	"github.com/Alnusjaponica/DPP-MAP-Inference/oracle"
)

// NonLazy recomputes every remaining candidate's gain on every pop. Grounded
// on original_source's NonLazy::Instance: a scratch min-heap of size i+1
// tracks the top candidates seen so far during a single linear scan of T.
type NonLazy struct {
	oracle   oracle.Oracle
	t        map[int]struct{}
	addDummy bool
}

var _ Strategy = (*NonLazy)(nil)

// NewNonLazy builds a NonLazy strategy over the given ground set.
func NewNonLazy(o oracle.Oracle, groundSet []int, addDummy bool) (*NonLazy, error) {
	if o == nil {
		return nil, strategyErrorf("NewNonLazy", ErrNilOracle)
	}
	t := make(map[int]struct{}, len(groundSet))
	for _, e := range groundSet {
		t[e] = struct{}{}
	}
	return &NonLazy{oracle: o, t: t, addDummy: addDummy}, nil
}

// PopLargest implements Strategy.
func (s *NonLazy) PopLargest() (int, bool) { return s.PopKthLargest(0) }

// PopKthLargest implements Strategy.
func (s *NonLazy) PopKthLargest(i int) (int, bool) {
	if i < 0 || (!s.addDummy && i >= len(s.t)) {
		panic(fmt.Sprintf("strategy: PopKthLargest(%d) out of range for |T|=%d, addDummy=%v", i, len(s.t), s.addDummy))
	}
	if s.addDummy && i >= len(s.t) {
		return 0, false
	}

	h := newMinPairHeap(i + 1)
	count := 0
	for e := range s.t {
		v := s.oracle.ComputeMarginalGainExponential(e)
		cand := elementValuePair{element: e, value: v}
		if count < i+1 {
			heap.Push(h, cand)
			count++
			continue
		}
		top, _ := h.Top()
		if top.less(cand) {
			heap.Pop(h)
			heap.Push(h, cand)
		}
	}

	top, _ := h.Top()
	if s.addDummy && top.value <= 1.0 {
		return 0, false
	}
	s.Remove(top.element)
	return top.element, true
}

// Remove implements Strategy.
func (s *NonLazy) Remove(e int) {
	if _, ok := s.t[e]; !ok {
		panic(fmt.Sprintf("strategy: Remove(%d): element not in T", e))
	}
	delete(s.t, e)
}
