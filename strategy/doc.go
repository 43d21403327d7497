// SPDX-License-Identifier: MIT

// Package strategy selects the next element to add to a DPP MAP solution
// from a ground set T, backed by an oracle.Oracle for marginal gains.
//
// NonLazy recomputes every candidate's gain on every selection — correct
// but wasteful once T is large, since only the winner's gain actually
// needed a fresh computation.
//
// Lazy exploits gain submodularity (a stale upper bound never underestimates
// the true current gain) via a max-heap of last-known gains: it only
// recomputes a candidate when it reaches the top of the heap, and reinserts
// it if the fresh value no longer dominates. This is the same lazy-greedy
// trick as the "lazy evaluation" family of submodular maximization
// algorithms, adapted here to the exact (gain, −element) tie-break the
// reference implementation uses.
package strategy
