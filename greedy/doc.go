// SPDX-License-Identifier: MIT

// Package greedy composes an oracle.Oracle and a strategy.Strategy into one
// of five DPP MAP selection drivers:
//
//   - Plain: repeatedly pop the single best remaining element.
//   - Random: repeatedly pop the element at a rank drawn uniformly from
//     0..k-1 among the remaining elements, trading solution quality for a broader coverage of the
//     selection space across repeated runs.
//   - Stochastic: at each step, sample a random subset of size
//     ⌈(n/k)·ln(1/ε)⌉ (ε = 0.5, fixed) and pop the best of the sample —
//     the stochastic-greedy submodular maximization algorithm.
//   - Interlace: run four coupled Plain chains over disjoint complements of
//     each other's picks, then at query time report whichever chain's
//     monotone value sequence is highest at the requested step.
//   - Double: unconstrained, non-monotone selection via the double-greedy
//     coin flip between committing an element to S or to its complement.
//
// Each driver measures itself: computed Gram entries, oracle calls, and
// wall-clock time are reported per step so a caller can study the
// cost/quality tradeoff between Direct/Fast oracles and NonLazy/Lazy
// strategies without instrumenting anything by hand.
package greedy
