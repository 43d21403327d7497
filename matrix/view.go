// SPDX-License-Identifier: MIT

package matrix

// View is the oracle's read-only access capability over a kernel matrix L.
// It abstracts over two backing representations:
//
//   - DenseView: L is already fully materialized (e.g. loaded from a
//     symmetric-lower-triangle file, or a synthetic Wishart draw).
//   - GramView: L = BᵀB is derived on demand from a factor B, caching each
//     entry the first time it is requested (see gram_view.go).
//
// Every Oracle is built against a View rather than a concrete Matrix so the
// same marginal-gain code paths work whether L was supplied directly or must
// be computed lazily, and so ComputedEntries() can report the true amount of
// work performed regardless of which backing is in play.
type View interface {
	// N returns the dimension of the (square, symmetric) kernel.
	N() int

	// At returns L[i,j], materializing it first if the backing is deferred.
	At(i, j int) (float64, error)

	// Col returns the full column j as a dense slice of length N(), forcing
	// materialization of every entry in that column.
	Col(j int) ([]float64, error)

	// Sub returns L[rows, col] as a dense slice aligned with rows, forcing
	// materialization of each selected entry.
	Sub(rows []int, col int) ([]float64, error)

	// SubMatrix returns L[rows, cols] as a freshly allocated *Dense, forcing
	// materialization of each selected entry.
	SubMatrix(rows, cols []int) (*Dense, error)

	// ComputedEntries reports how many distinct L[i,j] entries have been
	// realized so far. For an eagerly materialized view this equals N()*N();
	// for a deferred Gram view it grows only as entries are requested.
	ComputedEntries() int
}
