// SPDX-License-Identifier: MIT

package oracle

import (
	"fmt"
	"math"

	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix"
)

// Fast maintains an incremental implicit Cholesky factor V (row-major,
// n×kMax) and extends row e one column at a time as elements already in S
// are caught up to. Grounded on original_source's Fast::Instance: u[e]
// counts how many of S's elements row e has already been reconciled
// against; U is the running total of realized V offdiagonals.
type Fast struct {
	l matrix.View
	n int
	k int

	u []int
	d []float64
	v []float64 // row-major n x k
	s []int

	value float64
	u_    int // total realized V offdiagonals across all elements

	logPairs bool
	pairs    [][2]int
}

var _ Oracle = (*Fast)(nil)

// NewFast constructs a Fast oracle over L for a solution of at most k
// elements. logOffdiagonalPairs enables the (e,l) pair log consumed by
// diagnostics/CLI reporting; leave it false on the hot path to avoid the
// allocation.
func NewFast(l matrix.View, k int, logOffdiagonalPairs bool) (*Fast, error) {
	if l == nil {
		return nil, oracleErrorf("NewFast", ErrNilView)
	}
	n := l.N()
	if k < 0 || k > n {
		return nil, oracleErrorf("NewFast", ErrInvalidCardinality)
	}
	d := make([]float64, n)
	for i := range d {
		d[i] = math.NaN()
	}
	f := &Fast{
		l:        l,
		n:        n,
		k:        k,
		u:        make([]int, n),
		d:        d,
		v:        make([]float64, n*k),
		s:        make([]int, 0, k),
		logPairs: logOffdiagonalPairs,
	}
	if logOffdiagonalPairs {
		f.pairs = make([][2]int, 0, k*(k-1)/2+k*(n-k))
	}
	return f, nil
}

func (o *Fast) checkIndex(e int) {
	if e < 0 || e >= o.n {
		panic(fmt.Sprintf("oracle: element %d out of range [0,%d)", e, o.n))
	}
}

// row returns the backing slice for V's row e (length k, only [0,len(o.s)) meaningful).
func (o *Fast) row(e int) []float64 { return o.v[e*o.k : (e+1)*o.k] }

// ComputeMarginalGainExponential implements Oracle.
func (o *Fast) ComputeMarginalGainExponential(e int) float64 {
	o.checkIndex(e)
	o.LastMarginalGainExponential(e)

	re := o.row(e)
	for j := o.u[e]; j < len(o.s); j++ {
		l := o.s[j]
		rl := o.row(l)

		lel, err := o.l.At(e, l)
		if err != nil {
			panic(oracleErrorf("Fast.ComputeMarginalGainExponential", err))
		}
		var dot float64
		for t := 0; t < j; t++ {
			dot += re[t] * rl[t]
		}
		re[j] = (lel - dot) / math.Sqrt(o.d[l])

		gain := o.d[e] - re[j]*re[j]
		if gain < 0 || math.IsNaN(gain) {
			gain = 0
		}
		o.d[e] = gain

		o.u[e]++
		o.u_++
		if o.logPairs {
			o.pairs = append(o.pairs, [2]int{e, l})
		}
	}
	return o.d[e]
}

// LastMarginalGainExponential implements Oracle.
func (o *Fast) LastMarginalGainExponential(e int) float64 {
	o.checkIndex(e)
	if math.IsNaN(o.d[e]) {
		lee, err := o.l.At(e, e)
		if err != nil {
			panic(oracleErrorf("Fast.LastMarginalGainExponential", err))
		}
		o.d[e] = lee
	}
	return o.d[e]
}

// Add implements Oracle.
func (o *Fast) Add(e int) {
	o.checkIndex(e)
	if o.u[e] != len(o.s) || math.IsNaN(o.d[e]) {
		panic("oracle: Add called before the marginal gain was computed against the current solution")
	}
	o.s = append(o.s, e)
	o.value += math.Log(o.d[e])
}

func (o *Fast) Solution() []int { return o.s }
func (o *Fast) Value() float64  { return o.value }

// OracleCalls implements Oracle. Fast performs no from-scratch
// factorizations; it always returns 0, matching original_source.
func (o *Fast) OracleCalls() int { return 0 }

func (o *Fast) ComputedOffdiagonalsV() int { return o.u_ }

func (o *Fast) ComputedOffdiagonalPairs() [][2]int { return o.pairs }

func (o *Fast) ClearComputedOffdiagonalPairs() {
	if o.pairs != nil {
		o.pairs = o.pairs[:0]
	}
}
