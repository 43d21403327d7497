// Package matrix provides the dense linear-algebra substrate the oracle and
// greedy packages are built on: row-major Dense storage, the LDLT
// factorization the Direct oracle refactors on, and the
// View/DenseView/GramView abstraction that lets an oracle read a kernel L
// uniformly whether it was supplied directly or must be derived on demand
// from a factor B (L = BᵀB). LU decomposition and matrix inversion live in
// the sibling matrix/ops package.
//
// Matrices are dense and in-memory; there is no sparse representation.
// Kernels typically arise from small-to-medium datasets (Netflix/MovieLens
// subsets, synthetic Wishart draws) where O(n²) storage is acceptable.
package matrix
