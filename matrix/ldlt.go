// SPDX-License-Identifier: MIT

package matrix

import "math"

// LDLT is the no-pivoting LDLᵀ factorization of a symmetric matrix: A = L D Lᵀ
// with L unit lower triangular and D diagonal. It is the numerical core of
// the Direct oracle, which refactors the growing principal submatrix L[S,S]
// from scratch on every marginal-gain query.
//
// Numerical stability requires pivoting upstream; this kernel is deterministic
// by design, mirroring the LU kernel's tradeoff (see matrix/ops/lu.go):
// a fixed elimination order over a PSD kernel is preferred to pivot-dependent
// output that would make selections seed-sensitive.
//
// LDLT does not reject a near-singular or indefinite input: a degenerate
// pivot divides through to ±Inf/NaN exactly as an unchecked Cholesky-family
// solve would, and callers are expected to clamp the resulting marginal gain
// at zero (see oracle.Direct), matching the "numerical degeneracy is absorbed,
// not an error" policy for this domain.
type LDLT struct {
	n int
	l []float64 // unit lower triangular, row-major n*n; only l[i*n+k], k<i, is meaningful
	d []float64 // diagonal pivots, length n
}

// ComputeLDLT factors the square matrix a. Complexity: O(n³) time, O(n²) space.
func ComputeLDLT(a Matrix) (*LDLT, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf("ComputeLDLT", err)
	}
	n := a.Rows()
	l := make([]float64, n*n)
	d := make([]float64, n)
	for i := 0; i < n; i++ {
		l[i*n+i] = 1.0
	}
	for j := 0; j < n; j++ {
		ajj, err := a.At(j, j)
		if err != nil {
			return nil, matrixErrorf("ComputeLDLT", err)
		}
		var sum float64
		for k := 0; k < j; k++ {
			sum += l[j*n+k] * l[j*n+k] * d[k]
		}
		d[j] = ajj - sum

		for i := j + 1; i < n; i++ {
			aij, err := a.At(i, j)
			if err != nil {
				return nil, matrixErrorf("ComputeLDLT", err)
			}
			var sum2 float64
			for k := 0; k < j; k++ {
				sum2 += l[i*n+k] * l[j*n+k] * d[k]
			}
			l[i*n+j] = (aij - sum2) / d[j]
		}
	}
	return &LDLT{n: n, l: l, d: d}, nil
}

// N returns the factored matrix's dimension.
func (f *LDLT) N() int { return f.n }

// D returns the diagonal pivots (not a copy; callers must not mutate).
func (f *LDLT) D() []float64 { return f.d }

// LogDet returns Σ log(D[i]), the log-determinant of the factored matrix.
// A non-positive pivot yields -Inf or NaN in the corresponding term, which
// propagates naturally rather than being special-cased.
func (f *LDLT) LogDet() float64 {
	var s float64
	for _, dv := range f.d {
		s += math.Log(dv)
	}
	return s
}

// Solve returns x such that A x = b, via forward substitution (Ly=b),
// diagonal scaling (z=D⁻¹y), then back substitution (Lᵀx=z).
// Complexity: O(n²).
func (f *LDLT) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf("LDLT.Solve", err)
	}
	n := f.n
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		s := b[i]
		for k := 0; k < i; k++ {
			s -= f.l[i*n+k] * y[k]
		}
		y[i] = s
	}
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		z[i] = y[i] / f.d[i]
	}
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		s := z[i]
		for k := i + 1; k < n; k++ {
			s -= f.l[k*n+i] * x[k]
		}
		x[i] = s
	}
	return x, nil
}

// QuadForm returns bᵀ A⁻¹ b = bᵀ Solve(b), the Schur-complement term used by
// the Direct oracle's marginal gain: L[e,e] - L[S,e]ᵀ L[S,S]⁻¹ L[S,e].
func (f *LDLT) QuadForm(b []float64) (float64, error) {
	x, err := f.Solve(b)
	if err != nil {
		return 0, err
	}
	var s float64
	for i, bi := range b {
		s += bi * x[i]
	}
	return s, nil
}
