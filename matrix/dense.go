// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Purpose: Dense is the row-major, fully-materialized Matrix implementation
// used whenever the kernel L is supplied directly rather than derived from a
// factor B. It backs both raw kernel storage and the small principal
// submatrices L[S,S] that Oracle.Direct factors on every call.
//
// AI-Hints: Dense never shares backing storage with another Dense — Clone and
// Induced always copy. Callers that need a zero-copy read path over a larger
// matrix should use a View (see view.go) instead of holding onto raw indices.
//
// Complexity quicksheet: At/Set O(1); Clone/String O(rows*cols);
// Induced O(len(rowsIdx)*len(colsIdx)).
const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxApply  = "Apply"
	ctxInduce = "Induced"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
const DefaultValidateNaNInf = true

// Dense is a row-major dense matrix with a NaN/Inf write guard (on by default).
type Dense struct {
	r, c           int
	data           []float64
	validateNaNInf bool
}

var (
	_ Matrix = (*Dense)(nil)
)

// NewDense allocates a zero-filled rows x cols matrix.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("matrix: %w: rows=%d cols=%d", ErrInvalidDimensions, rows, cols)
	}
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseZeroOK allocates rows x cols allowing either dimension to be zero.
// Used internally for empty selections (S = ∅).
func newDenseZeroOK(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols), validateNaNInf: DefaultValidateNaNInf}
}

func (d *Dense) Rows() int { return d.r }
func (d *Dense) Cols() int { return d.c }

// Shape returns (rows, cols) in one call.
func (d *Dense) Shape() (rows, cols int) { return d.r, d.c }

func (d *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, row, col, d.r, d.c)
	}
	return row*d.c + col, nil
}

// At returns the entry at (row, col).
func (d *Dense) At(row, col int) (float64, error) {
	idx, err := d.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}
	return d.data[idx], nil
}

// Set writes v to (row, col), rejecting NaN/Inf when the policy demands it.
func (d *Dense) Set(row, col int, v float64) error {
	idx, err := d.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if d.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	d.data[idx] = v
	return nil
}

// Clone deep-copies the matrix, preserving the NaN/Inf policy.
func (d *Dense) Clone() Matrix {
	out := &Dense{r: d.r, c: d.c, data: make([]float64, len(d.data)), validateNaNInf: d.validateNaNInf}
	copy(out.data, d.data)
	return out
}

// String renders the matrix row by row for debugging and test failure output.
func (d *Dense) String() string {
	var b strings.Builder
	for i := 0; i < d.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < d.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			fmt.Fprintf(&b, "%g", d.data[i*d.c+j])
		}
		b.WriteString(_fmtRowClose)
	}
	return b.String()
}

// Induced copies out the submatrix selecting rowsIdx x colsIdx, in the given
// order. Indices may repeat; a zero-length index list produces a 0-row or
// 0-col matrix. This is the primitive DenseView.SubMatrix builds on to
// realize L[S,e] and L[S,S] slices for the oracle.
func (d *Dense) Induced(rowsIdx, colsIdx []int) (*Dense, error) {
	out := newDenseZeroOK(len(rowsIdx), len(colsIdx))
	out.validateNaNInf = d.validateNaNInf
	for oi, ri := range rowsIdx {
		if ri < 0 || ri >= d.r {
			return nil, denseErrorf(ctxInduce, ri, 0, ErrOutOfRange)
		}
		for oj, cj := range colsIdx {
			if cj < 0 || cj >= d.c {
				return nil, denseErrorf(ctxInduce, 0, cj, ErrOutOfRange)
			}
			out.data[oi*out.c+oj] = d.data[ri*d.c+cj]
		}
	}
	return out, nil
}

// Do visits every entry in row-major order, stopping early if f returns false.
func (d *Dense) Do(f func(i, j int, v float64) bool) {
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			if !f(i, j, d.data[i*d.c+j]) {
				return
			}
		}
	}
}

// Apply maps f over every entry in place, honoring the NaN/Inf policy.
func (d *Dense) Apply(f func(i, j int, v float64) float64) error {
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			nv := f(i, j, d.data[i*d.c+j])
			if d.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			d.data[i*d.c+j] = nv
		}
	}
	return nil
}
