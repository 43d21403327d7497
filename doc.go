// Package dppmap is a from-scratch, submodular-maximization playground for
// determinantal point processes — pick a diverse, high-quality subset of a
// ground set by greedily maximizing the log-determinant of a positive
// semi-definite kernel L.
//
// What is DPP-MAP-Inference?
//
//	A modern, single-threaded (not safe for concurrent use), mostly
//	zero-dependency toolkit built around:
//		• Matrix views: dense and lazily-materialized Gram (L = BᵀB) kernels
//		• Marginal-gain oracles: Direct (recompute) and Fast (incremental Cholesky)
//		• Selection strategies: NonLazy (linear scan) and Lazy (priority queue)
//		• Greedy drivers: Plain, Random, Stochastic, Interlace, Double
//		• Dataset I/O: dense/sparse/symmetric matrix files, CSV run logs, Wishart generation
//
// Why choose it?
//
//   - Pluggable — oracle and strategy are swapped via factory functions, not
//     compiled-in template parameters
//   - Deterministic given a seed — every run owns its own math/rand source
//   - Fail-fast — malformed input returns an error; a violated internal
//     contract (e.g. querying a stale marginal gain) panics
//
// Everything is organized under focused subpackages:
//
//	matrix/   — Dense storage, deferred Gram views, LU/LDLT/Inverse kernels
//	oracle/   — Direct and Fast marginal-gain computation over a kernel view
//	strategy/ — NonLazy and Lazy candidate selection with a dummy-threshold cutoff
//	greedy/   — the five selection drivers, their Param/Result/Logger plumbing
//	dataio/   — matrix file formats, CSV run logging, synthetic dataset generation
//	cmd/      — dppselect, dppgram, dppdouble command-line entry points
//
// Quick mental model:
//
//	L ⊒ 0  →  pick S maximizing log det(L_S)  →  one element added per step
//
// See SPEC_FULL.md and DESIGN.md for the full component design and the
// grounding of each package's third-party dependencies.
package dppmap
