package stats

import (
	"container/heap"
	"math"
)

// minHeap is a min-oriented heap of float64
type minHeap []float64

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(float64)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// maxHeap is a max-oriented heap of float64
type maxHeap []float64

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(i, j int) bool  { return h[i] > h[j] }
func (h maxHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap) Push(x interface{}) { *h = append(*h, x.(float64)) }
func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// Median returns the running median of the explicit values using two
// heaps: a max-heap for the lower half and a min-heap for the upper half.
// Each insertion is routed through one heap into the other, keeping their
// sizes within one element of each other. Implicit zeros are not
// considered. Empty input returns NaN.
func Median(seq Sequence, absolute bool) float64 {
	lower := &maxHeap{}
	upper := &minHeap{}
	count := 0
	seq.ForEachValue(func(value float64) {
		if absolute {
			value = math.Abs(value)
		}
		if count%2 == 0 {
			heap.Push(lower, value)
			heap.Push(upper, heap.Pop(lower))
		} else {
			heap.Push(upper, value)
			heap.Push(lower, heap.Pop(upper))
		}
		count++
	})
	if count == 0 {
		return math.NaN()
	}
	if count%2 == 0 {
		return ((*upper)[0] + (*lower)[0]) / 2
	}
	return (*upper)[0]
}
