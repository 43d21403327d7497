// SPDX-License-Identifier: MIT

package strategy

import (
	"container/heap"
	"fmt"

	"github.com/Alnusjaponica/DPP-MAP-Inference/oracle"
)

// Lazy exploits submodularity: a stale (upper-bound) gain popped from the
// max-heap is only recomputed on demand, and reinserted if the fresh value
// no longer dominates the new top. Grounded on original_source's
// Lazy::Instance's pop_largest/pop_kth_largest recompute-and-compare loop.
type Lazy struct {
	oracle   oracle.Oracle
	t        map[int]struct{}
	addDummy bool
	q        *pairHeap
	recover  []int
}

var _ Strategy = (*Lazy)(nil)

// NewLazy builds a Lazy strategy over the given ground set, seeding the
// heap with each element's cheap (non-recomputing) last-known gain.
func NewLazy(o oracle.Oracle, groundSet []int, addDummy bool) (*Lazy, error) {
	if o == nil {
		return nil, strategyErrorf("NewLazy", ErrNilOracle)
	}
	t := make(map[int]struct{}, len(groundSet))
	q := newMaxPairHeap(len(groundSet))
	for _, e := range groundSet {
		t[e] = struct{}{}
		v := o.LastMarginalGainExponential(e)
		q.items = append(q.items, elementValuePair{element: e, value: v})
	}
	heap.Init(q)
	return &Lazy{oracle: o, t: t, addDummy: addDummy, q: q}, nil
}

// PopLargest implements Strategy.
func (s *Lazy) PopLargest() (int, bool) {
	for {
		if s.q.Len() == 0 {
			if s.addDummy {
				return 0, false
			}
			panic("strategy: PopLargest called with an empty ground set and addDummy=false")
		}
		top, _ := s.q.Top()
		if s.addDummy && top.value <= 1.0 {
			return 0, false
		}

		item := heap.Pop(s.q).(elementValuePair)
		e := item.element
		if _, ok := s.t[e]; !ok {
			continue // stale entry left behind by an earlier Remove
		}

		v := s.oracle.ComputeMarginalGainExponential(e)
		stillOnTop := s.q.Len() == 0
		if !stillOnTop {
			newTop, _ := s.q.Top()
			stillOnTop = v >= newTop.value
		}
		if stillOnTop {
			if s.addDummy && v <= 1.0 {
				return 0, false
			}
			s.Remove(e)
			return e, true
		}
		heap.Push(s.q, elementValuePair{element: e, value: v})
	}
}

// PopKthLargest implements Strategy.
func (s *Lazy) PopKthLargest(i int) (int, bool) {
	if i < 0 || (!s.addDummy && i >= len(s.t)) {
		panic(fmt.Sprintf("strategy: PopKthLargest(%d) out of range for |T|=%d, addDummy=%v", i, len(s.t), s.addDummy))
	}

	s.recover = s.recover[:0]
	for j := 0; j < i; j++ {
		e, ok := s.PopLargest()
		if !ok {
			break
		}
		s.recover = append(s.recover, e)
	}

	ret, ok := s.PopLargest()

	for _, e := range s.recover {
		s.t[e] = struct{}{}
		v := s.oracle.LastMarginalGainExponential(e)
		heap.Push(s.q, elementValuePair{element: e, value: v})
	}

	return ret, ok
}

// Remove implements Strategy.
func (s *Lazy) Remove(e int) {
	if _, ok := s.t[e]; !ok {
		panic(fmt.Sprintf("strategy: Remove(%d): element not in T", e))
	}
	delete(s.t, e)
}
