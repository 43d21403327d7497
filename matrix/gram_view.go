// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// GramView derives a kernel L = BᵀB from a d×n factor B on demand, caching
// each entry the first time it is requested. This lets a dataset be supplied
// as a factor (a 0/1 incidence matrix, a dense feature matrix, ...) without
// ever materializing the full n×n kernel: only the entries an oracle
// actually touches during a run are computed.
//
// Symmetry is exploited directly: computing L[i,j] also fills in L[j,i] for
// free (a single dot product mirrors into both cells), and that mirror write
// does not itself count as a second computed entry.
type GramView struct {
	b        Matrix
	n, d     int
	cache    []float64 // row-major n*n; math.NaN() marks "not yet computed"
	computed int
}

var _ View = (*GramView)(nil)

// NewGramView wraps a d×n factor B as a deferred Gram kernel view.
func NewGramView(b Matrix) (*GramView, error) {
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf("NewGramView", err)
	}
	d, n := b.Rows(), b.Cols()
	if d <= 0 || n <= 0 {
		return nil, matrixErrorf("NewGramView", ErrBadShape)
	}
	cache := make([]float64, n*n)
	for i := range cache {
		cache[i] = math.NaN()
	}
	return &GramView{b: b, n: n, d: d, cache: cache}, nil
}

func (v *GramView) N() int { return v.n }

func (v *GramView) bounds(i, j int) error {
	if i < 0 || i >= v.n || j < 0 || j >= v.n {
		return fmt.Errorf("GramView: (%d,%d) outside %dx%d: %w", i, j, v.n, v.n, ErrOutOfRange)
	}
	return nil
}

// entry returns the (i,j) Gram value, computing and caching it (plus its
// mirror) on first access.
func (v *GramView) entry(i, j int) (float64, error) {
	if err := v.bounds(i, j); err != nil {
		return 0, err
	}
	idx := i*v.n + j
	if !math.IsNaN(v.cache[idx]) {
		return v.cache[idx], nil
	}
	var dot float64
	for r := 0; r < v.d; r++ {
		bi, err := v.b.At(r, i)
		if err != nil {
			return 0, matrixErrorf("GramView.entry", err)
		}
		bj, err := v.b.At(r, j)
		if err != nil {
			return 0, matrixErrorf("GramView.entry", err)
		}
		dot += bi * bj
	}
	v.cache[idx] = dot
	v.cache[j*v.n+i] = dot // mirror write; not a second computed entry
	v.computed++
	return dot, nil
}

func (v *GramView) At(i, j int) (float64, error) { return v.entry(i, j) }

func (v *GramView) Col(j int) ([]float64, error) {
	out := make([]float64, v.n)
	for i := 0; i < v.n; i++ {
		val, err := v.entry(i, j)
		if err != nil {
			return nil, err
		}
		out[i] = val
	}
	return out, nil
}

func (v *GramView) Sub(rows []int, col int) ([]float64, error) {
	out := make([]float64, len(rows))
	for k, r := range rows {
		val, err := v.entry(r, col)
		if err != nil {
			return nil, err
		}
		out[k] = val
	}
	return out, nil
}

func (v *GramView) SubMatrix(rows, cols []int) (*Dense, error) {
	out := newDenseZeroOK(len(rows), len(cols))
	for oi, r := range rows {
		for oj, c := range cols {
			val, err := v.entry(r, c)
			if err != nil {
				return nil, err
			}
			out.data[oi*out.c+oj] = val
		}
	}
	return out, nil
}

// ComputedEntries reports the number of distinct L[i,j] pairs realized so
// far (mirrored writes are not double-counted).
func (v *GramView) ComputedEntries() int { return v.computed }
