// SPDX-License-Identifier: MIT

package strategy

// Strategy is satisfied by NonLazy and Lazy.
type Strategy interface {
	// PopLargest removes and returns the element of T with the largest
	// oracle gain, or (0, false) if addDummy is set and the best gain is at
	// or below the dummy threshold (1.0 — the exponential-domain marginal
	// gain of "no improvement").
	PopLargest() (int, bool)

	// PopKthLargest removes and returns the (i+1)-th largest element of T,
	// buffering and restoring the i elements ranked above it. Panics if i is
	// negative, or if i is out of range for a ground set without a dummy.
	PopKthLargest(i int) (int, bool)

	// Remove deletes e from T. Panics if e is not currently in T.
	Remove(e int)
}
