// SPDX-License-Identifier: MIT

package matrix

// DenseView adapts an already-materialized square Matrix to the View
// contract. Every entry is available up front, so ComputedEntries is
// constant and every accessor is a direct read with no caching to manage.
type DenseView struct {
	m Matrix
	n int
}

var _ View = (*DenseView)(nil)

// NewDenseView wraps a square Matrix as a View. Returns ErrNilMatrix or
// ErrDimensionMismatch (via ValidateSquareNonNil) if m is nil or non-square.
func NewDenseView(m Matrix) (*DenseView, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf("NewDenseView", err)
	}
	return &DenseView{m: m, n: m.Rows()}, nil
}

func (v *DenseView) N() int { return v.n }

func (v *DenseView) At(i, j int) (float64, error) {
	val, err := v.m.At(i, j)
	if err != nil {
		return 0, matrixErrorf("DenseView.At", err)
	}
	return val, nil
}

func (v *DenseView) Col(j int) ([]float64, error) {
	out := make([]float64, v.n)
	for i := 0; i < v.n; i++ {
		val, err := v.m.At(i, j)
		if err != nil {
			return nil, matrixErrorf("DenseView.Col", err)
		}
		out[i] = val
	}
	return out, nil
}

func (v *DenseView) Sub(rows []int, col int) ([]float64, error) {
	out := make([]float64, len(rows))
	for k, r := range rows {
		val, err := v.m.At(r, col)
		if err != nil {
			return nil, matrixErrorf("DenseView.Sub", err)
		}
		out[k] = val
	}
	return out, nil
}

func (v *DenseView) SubMatrix(rows, cols []int) (*Dense, error) {
	if d, ok := v.m.(*Dense); ok {
		return d.Induced(rows, cols)
	}
	out := newDenseZeroOK(len(rows), len(cols))
	for oi, r := range rows {
		for oj, c := range cols {
			val, err := v.m.At(r, c)
			if err != nil {
				return nil, matrixErrorf("DenseView.SubMatrix", err)
			}
			out.data[oi*out.c+oj] = val
		}
	}
	return out, nil
}

// ComputedEntries always reports the full n² footprint: a DenseView never
// defers computation, so nothing is amortized by lazy strategies.
func (v *DenseView) ComputedEntries() int { return v.n * v.n }
