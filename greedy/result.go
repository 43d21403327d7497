// SPDX-License-Identifier: MIT

package greedy

import "time"

// Measurement records the instrumentation captured at a single step: how
// long the run has taken, how much of the kernel has been realized, and how
// many oracle/V-buffer computations were genuinely new.
type Measurement struct {
	Time                  time.Duration
	Value                 float64
	ComputedEntriesL      int
	OracleCalls           int
	ComputedOffdiagonalsV int
	Offdiagonals          [][2]int
}

// Result is one queryable step of a driver's run: the solution accumulated
// up to and including this step, its objective value, and the Measurement
// recorded when it was taken.
type Result struct {
	// Finished reports whether this Result represents a genuine step (true)
	// or an out-of-range query past the end of the run (false, all other
	// fields zero). A Double run stopped by its time limit also returns
	// Finished == false, with its partial solution and value filled in.
	Finished bool
	Solution []int
	Value    float64
	Measurement
}

// unfinishedResult is the sentinel returned for an out-of-range Step query,
// mirroring original_source's Result::unfinished().
func unfinishedResult() Result { return Result{} }

// GreedyResult accumulates one Measurement per step of Plain, Random, and
// Stochastic. Finished is false only when the run stopped early on its time
// limit; it is true once the cardinality budget is reached or the running
// value degenerates to -Inf.
type GreedyResult struct {
	elements     []int  // elements[0] is a placeholder for the empty-solution row
	hasElement   []bool
	measurements []Measurement
	Finished     bool
}

func newGreedyResult(reserve int) *GreedyResult {
	r := &GreedyResult{
		elements:     make([]int, 0, reserve+1),
		hasElement:   make([]bool, 0, reserve+1),
		measurements: make([]Measurement, 0, reserve+1),
	}
	r.add(0, false, Measurement{})
	return r
}

func (r *GreedyResult) add(e int, has bool, m Measurement) {
	r.elements = append(r.elements, e)
	r.hasElement = append(r.hasElement, has)
	r.measurements = append(r.measurements, m)
}

// Size returns the number of recorded steps, including the initial
// empty-solution row.
func (r *GreedyResult) Size() int { return len(r.measurements) }

// Last returns the most recently recorded step.
func (r *GreedyResult) Last() Result { return r.Step(r.Size() - 1) }

// Step returns the Result as of the k-th element added (k == 0 is the empty
// solution). Returns an unfinished Result if k is out of range.
func (r *GreedyResult) Step(k int) Result {
	if k < 0 {
		panic("greedy: Step called with a negative index")
	}
	if k >= r.Size() {
		return unfinishedResult()
	}
	sol := make([]int, k)
	for i := 0; i < k; i++ {
		if !r.hasElement[i+1] {
			panic("greedy: Step requested past the last committed element")
		}
		sol[i] = r.elements[i+1]
	}
	var offdiagonals [][2]int
	for i := 0; i <= k; i++ {
		offdiagonals = append(offdiagonals, r.measurements[i].Offdiagonals...)
	}
	m := r.measurements[k]
	m.Offdiagonals = offdiagonals
	return Result{Finished: true, Solution: sol, Value: m.Value, Measurement: m}
}

// InterlaceResult accumulates one quadruple of Measurements per step of
// Interlace. Step reports whichever of the four coupled chains has the
// highest value at that step, per original_source's InterlaceResult::get_max.
type InterlaceResult struct {
	quadElements   [][4]int
	quadHasElement [][4]bool
	quadValues     [][4]float64
	measurements   []Measurement
	Finished       bool
}

func newInterlaceResult(reserve int) *InterlaceResult {
	r := &InterlaceResult{
		quadElements:   make([][4]int, 0, reserve+1),
		quadHasElement: make([][4]bool, 0, reserve+1),
		quadValues:     make([][4]float64, 0, reserve+1),
		measurements:   make([]Measurement, 0, reserve+1),
	}
	r.add([4]int{}, [4]bool{}, [4]float64{}, Measurement{})
	return r
}

func (r *InterlaceResult) add(elements [4]int, has [4]bool, values [4]float64, m Measurement) {
	r.quadElements = append(r.quadElements, elements)
	r.quadHasElement = append(r.quadHasElement, has)
	r.quadValues = append(r.quadValues, values)
	r.measurements = append(r.measurements, m)
}

// Size returns the number of recorded steps, including the initial row.
func (r *InterlaceResult) Size() int { return len(r.measurements) }

// Last returns the most recently recorded step.
func (r *InterlaceResult) Last() Result { return r.Step(r.Size() - 1) }

// bestChainAt finds, among the four chains, the one whose value at step k is
// highest, and counts how many elements that chain committed in steps 1..k
// (a step may leave a chain without a new element).
func (r *InterlaceResult) bestChainAt(k int) (chain, count int, value float64) {
	best := -1
	var bestValue float64
	for f := 0; f < 4; f++ {
		v := r.quadValues[k][f]
		if best == -1 || v > bestValue {
			best = f
			bestValue = v
		}
	}
	n := 0
	for i := 1; i <= k; i++ {
		if r.quadHasElement[i][best] {
			n++
		}
	}
	return best, n, bestValue
}

// Step returns the Result as of step k, reporting whichever chain currently
// leads. Returns an unfinished Result if k is out of range.
func (r *InterlaceResult) Step(k int) Result {
	if k < 0 {
		panic("greedy: Step called with a negative index")
	}
	if k >= r.Size() {
		return unfinishedResult()
	}
	chain, count, value := r.bestChainAt(k)
	sol := make([]int, 0, count)
	for i := 1; i <= k; i++ {
		if r.quadHasElement[i][chain] {
			sol = append(sol, r.quadElements[i][chain])
		}
	}
	return Result{Finished: true, Solution: sol, Value: value, Measurement: r.measurements[k]}
}
