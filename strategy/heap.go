// SPDX-License-Identifier: MIT

package strategy

import "container/heap"

// elementValuePair pairs a ground-set element with its oracle gain. Ordering
// uses (value, −element): the larger gain wins, and on a tie the smaller
// element index wins — matching original_source's ElementValuePair.
type elementValuePair struct {
	element int
	value   float64
}

func (a elementValuePair) less(b elementValuePair) bool {
	if a.value != b.value {
		return a.value < b.value
	}
	return a.element > b.element
}

// pairHeap is a binary heap over elementValuePair, grounded on
// hupe1980-vecgo's internal/queue/queue.go PriorityQueue: value-based
// storage, an isMaxHeap toggle shared by a single implementation, satisfying
// container/heap.Interface directly rather than wrapping heap.Interface in
// a second layer.
type pairHeap struct {
	isMaxHeap bool
	items     []elementValuePair
}

var _ heap.Interface = (*pairHeap)(nil)

func newMinPairHeap(capacity int) *pairHeap {
	return &pairHeap{isMaxHeap: false, items: make([]elementValuePair, 0, capacity)}
}

func newMaxPairHeap(capacity int) *pairHeap {
	return &pairHeap{isMaxHeap: true, items: make([]elementValuePair, 0, capacity)}
}

func (h *pairHeap) Len() int { return len(h.items) }

func (h *pairHeap) Less(i, j int) bool {
	if h.isMaxHeap {
		return h.items[j].less(h.items[i])
	}
	return h.items[i].less(h.items[j])
}

func (h *pairHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *pairHeap) Push(x any) { h.items = append(h.items, x.(elementValuePair)) }

func (h *pairHeap) Pop() any {
	n := len(h.items)
	item := h.items[n-1]
	h.items[n-1] = elementValuePair{}
	h.items = h.items[:n-1]
	return item
}

// Top returns the root element without removing it.
func (h *pairHeap) Top() (elementValuePair, bool) {
	if len(h.items) == 0 {
		return elementValuePair{}, false
	}
	return h.items[0], true
}
