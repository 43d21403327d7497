// SPDX-License-Identifier: MIT

package oracle

// Oracle is satisfied by Direct and Fast. Every method except the
// constructors takes an element index in [0, N()) and panics if it is out
// of range — an out-of-range element is a caller programming error, not a
// recoverable condition (see the package-level error-handling policy: input
// errors are returned, contract violations panic).
type Oracle interface {
	// ComputeMarginalGainExponential returns d(e) = det-ratio contribution
	// of e w.r.t. the current S, recomputing it if S has grown since the
	// last query for e.
	ComputeMarginalGainExponential(e int) float64

	// LastMarginalGainExponential returns the most recently computed (and
	// possibly stale) d(e), computing it from scratch only if e has never
	// been queried. Used as a cheap upper bound by the Lazy strategy.
	LastMarginalGainExponential(e int) float64

	// Add commits e to the solution. Panics unless d(e) was computed against
	// the current S (ComputeMarginalGainExponential(e) after S last grew;
	// while S is empty, a LastMarginalGainExponential(e) query also counts).
	Add(e int)

	// Solution returns the committed selection, in the order elements were added.
	Solution() []int

	// Value returns Σ log d(e) over the committed selection: log det L[S,S].
	Value() float64

	// OracleCalls returns the number of genuine (non-cached) gain computations
	// for Direct. Always 0 for Fast.
	OracleCalls() int

	// ComputedOffdiagonalsV returns how many V-buffer offdiagonal entries
	// have been realized so far. Always 0 for Direct.
	ComputedOffdiagonalsV() int

	// ComputedOffdiagonalPairs returns the (e,l) index pairs realized so
	// far, if pair logging was requested at construction. Always nil for Direct.
	ComputedOffdiagonalPairs() [][2]int

	// ClearComputedOffdiagonalPairs discards the pair log accumulated so far.
	ClearComputedOffdiagonalPairs()
}
