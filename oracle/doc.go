// SPDX-License-Identifier: MIT

// Package oracle computes the exponential marginal gain
// det L[S∪{e}] / det L[S] of adding an element e to the current selection S
// (its logarithm is the log-det increment Δ(e|S)), without ever forming
// log det L[S] directly.
//
// Two implementations trade recompute cost against incremental bookkeeping:
//
//   - Direct refactors the growing principal submatrix L[S,S] with a fresh
//     matrix.LDLT on every stale query. Simple, O(|S|³) per stale element.
//   - Fast maintains an incremental implicit Cholesky factor V and extends
//     it column-by-column as S grows, amortizing the refactorization cost
//     to O(|S|) per stale element at the price of an n×kMax buffer.
//
// Both clamp a negative residual (numerical noise from cancellation) to
// zero before it reaches log/sqrt, and both track how many elements were
// stale — the same 0-vs-recompute lazy pattern the strategy package's Lazy
// selector relies on to decide whether a heap entry's cached gain is still
// trustworthy.
package oracle
