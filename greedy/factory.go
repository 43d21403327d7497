// SPDX-License-Identifier: MIT

package greedy

import (
	"github.com/Alnusjaponica/DPP-MAP-Inference/matrix"
	"github.com/Alnusjaponica/DPP-MAP-Inference/oracle"
	"github.com/Alnusjaponica/DPP-MAP-Inference/strategy"
)

// OracleFactory and StrategyFactory are the Go stand-ins for the reference
// implementation's O and S template parameters: each driver is parametrized
// by which oracle and which strategy to build, rather than compiled once per
// instantiation.
type OracleFactory func(l matrix.View, k int, logOffdiagonalPairs bool) (oracle.Oracle, error)

type StrategyFactory func(o oracle.Oracle, groundSet []int, addDummy bool) (strategy.Strategy, error)

// DirectOracle and FastOracle adapt the oracle package's constructors to OracleFactory.
var (
	DirectOracle OracleFactory = func(l matrix.View, k int, _ bool) (oracle.Oracle, error) {
		return oracle.NewDirect(l, k)
	}
	FastOracle OracleFactory = func(l matrix.View, k int, logOffdiagonalPairs bool) (oracle.Oracle, error) {
		return oracle.NewFast(l, k, logOffdiagonalPairs)
	}
)

// NonLazyStrategy and LazyStrategy adapt the strategy package's constructors to StrategyFactory.
var (
	NonLazyStrategy StrategyFactory = func(o oracle.Oracle, groundSet []int, addDummy bool) (strategy.Strategy, error) {
		return strategy.NewNonLazy(o, groundSet, addDummy)
	}
	LazyStrategy StrategyFactory = func(o oracle.Oracle, groundSet []int, addDummy bool) (strategy.Strategy, error) {
		return strategy.NewLazy(o, groundSet, addDummy)
	}
)

func groundSet(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
