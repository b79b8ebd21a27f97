// Package frontier provides the min-priority queue used as the open set
// by the gridpath searches.
package frontier

import "container/heap"

// Item is one open-set entry: a cell index and the scalar priority that
// orders it (g+h for A*, g for Dijkstra).
type Item struct {
	Cell     int
	Priority float64
}

// Queue is a min-heap of Items ordered by ascending Priority.
// The zero value is NOT ready to use; call New.
type Queue struct {
	h itemHeap
}

// New returns an empty Queue with capacity for roughly n entries.
// Complexity: O(1) (single backing allocation).
func New(n int) *Queue {
	q := &Queue{h: make(itemHeap, 0, n)}
	heap.Init(&q.h)

	return q
}

// Len returns the number of entries currently queued, stale ones included.
// Complexity: O(1).
func (q *Queue) Len() int { return len(q.h) }

// Push inserts a cell with the given priority.
// Duplicates are allowed (lazy decrease-key): callers skip stale entries
// on pop. Complexity: O(log N).
func (q *Queue) Push(cell int, priority float64) {
	heap.Push(&q.h, Item{Cell: cell, Priority: priority})
}

// Pop removes and returns the entry with the smallest priority.
// Calling Pop on an empty queue panics; guard with Len.
// Complexity: O(log N).
func (q *Queue) Pop() Item {
	return heap.Pop(&q.h).(Item)
}

// itemHeap implements heap.Interface over a slice of Items.
type itemHeap []Item

// Len returns the number of items in the heap.
func (h itemHeap) Len() int { return len(h) }

// Less defines the comparison: smaller priority → popped first.
func (h itemHeap) Less(i, j int) bool { return h[i].Priority < h[j].Priority }

// Swap swaps two elements in the heap.
func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type Item.
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(Item)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to Item.
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
