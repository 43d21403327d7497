// SPDX-License-Identifier: MIT

package oracle

import (
	"fmt"
	"math"

	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix"
)

// Direct refactors L[S,S] from scratch (via a fresh matrix.LDLT) whenever a
// stale element's gain is requested. Grounded on
// original_source's Oracle::Instance: u[e] tracks the |S| at which d[e] was
// last computed (-1 meaning "never").
type Direct struct {
	l   matrix.View
	n   int
	u   []int
	d   []float64
	s   []int
	value       float64
	oracleCalls int
	ldlt        *matrix.LDLT // scratch: factorization of L[S,S] from the most recent recompute
}

var _ Oracle = (*Direct)(nil)

// NewDirect constructs a Direct oracle over L for a solution of at most k elements.
func NewDirect(l matrix.View, k int) (*Direct, error) {
	if l == nil {
		return nil, oracleErrorf("NewDirect", ErrNilView)
	}
	n := l.N()
	if k < 0 || k > n {
		return nil, oracleErrorf("NewDirect", ErrInvalidCardinality)
	}
	u := make([]int, n)
	for i := range u {
		u[i] = -1
	}
	return &Direct{
		l: l,
		n: n,
		u: u,
		d: make([]float64, n),
		s: make([]int, 0, k),
	}, nil
}

func (o *Direct) checkIndex(e int) {
	if e < 0 || e >= o.n {
		panic(fmt.Sprintf("oracle: element %d out of range [0,%d)", e, o.n))
	}
}

// ComputeMarginalGainExponential implements Oracle.
func (o *Direct) ComputeMarginalGainExponential(e int) float64 {
	o.checkIndex(e)
	if o.u[e] < len(o.s) {
		sub, err := o.l.SubMatrix(o.s, o.s)
		if err != nil {
			panic(oracleErrorf("Direct.ComputeMarginalGainExponential", err))
		}
		f, err := matrix.ComputeLDLT(sub)
		if err != nil {
			panic(oracleErrorf("Direct.ComputeMarginalGainExponential", err))
		}
		o.ldlt = f

		lSe, err := o.l.Sub(o.s, e)
		if err != nil {
			panic(oracleErrorf("Direct.ComputeMarginalGainExponential", err))
		}
		quad, err := f.QuadForm(lSe)
		if err != nil {
			panic(oracleErrorf("Direct.ComputeMarginalGainExponential", err))
		}
		lee, err := o.l.At(e, e)
		if err != nil {
			panic(oracleErrorf("Direct.ComputeMarginalGainExponential", err))
		}

		gain := lee - quad
		if gain < 0 || math.IsNaN(gain) {
			gain = 0
		}
		o.d[e] = gain
		o.u[e] = len(o.s)
		o.oracleCalls++
	}
	return o.d[e]
}

// LastMarginalGainExponential implements Oracle.
func (o *Direct) LastMarginalGainExponential(e int) float64 {
	o.checkIndex(e)
	if o.u[e] == -1 {
		lee, err := o.l.At(e, e)
		if err != nil {
			panic(oracleErrorf("Direct.LastMarginalGainExponential", err))
		}
		o.d[e] = lee
		o.u[e] = 0
		o.oracleCalls++
	}
	return o.d[e]
}

// Add implements Oracle.
func (o *Direct) Add(e int) {
	o.checkIndex(e)
	if o.u[e] != len(o.s) {
		panic("oracle: Add called before the marginal gain was computed against the current solution")
	}
	o.s = append(o.s, e)
	o.value += math.Log(o.d[e])
}

func (o *Direct) Solution() []int { return o.s }
func (o *Direct) Value() float64  { return o.value }
func (o *Direct) OracleCalls() int { return o.oracleCalls }

// ComputedOffdiagonalsV implements Oracle. Direct never touches a V buffer.
func (o *Direct) ComputedOffdiagonalsV() int { return 0 }

// ComputedOffdiagonalPairs implements Oracle. Direct never touches a V buffer.
func (o *Direct) ComputedOffdiagonalPairs() [][2]int { return nil }

// ClearComputedOffdiagonalPairs implements Oracle. No-op for Direct.
func (o *Direct) ClearComputedOffdiagonalPairs() {}
