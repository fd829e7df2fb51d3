package collection

import (
	"container/heap"

	"github.com/ar90n/prioritree"
)

type itemHeap[T any] []*item[T]

func (h itemHeap[T]) Len() int { return len(h) }

func (h itemHeap[T]) Less(i, j int) bool {
	return lessItem(*h[i], *h[j])
}

func (h itemHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *itemHeap[T]) Push(x interface{}) {
	it := x.(*item[T])
	*h = append(*h, it)
}

func (h *itemHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // avoid memory leak
	*h = old[0 : n-1]
	return it
}

// HeapPriorityQueue is a binary heap with the same ordering as
// BstPriorityQueue, including first in, first out among equal priorities.
type HeapPriorityQueue[T any] struct {
	items itemHeap[T]
	seq   uint64
}

var _ prioritree.Queue[int] = (*HeapPriorityQueue[int])(nil)

func NewHeapPriorityQueue[T any](capacity int) *HeapPriorityQueue[T] {
	return &HeapPriorityQueue[T]{
		items: make(itemHeap[T], 0, capacity),
	}
}

func (pq *HeapPriorityQueue[T]) Enqueue(value T, priority int) {
	heap.Push(
		&pq.items,
		&item[T]{
			value:    value,
			priority: priority,
			seq:      pq.seq,
		},
	)
	pq.seq++
}

func (pq *HeapPriorityQueue[T]) DequeueWithPriority() (ret prioritree.Entry[T], _ error) {
	if pq.items.Len() == 0 {
		return ret, prioritree.ErrEmptyQueue
	}
	it := heap.Pop(&pq.items).(*item[T])
	return it.entry(), nil
}

func (pq *HeapPriorityQueue[T]) Dequeue() T {
	entry, _ := pq.DequeueWithPriority()
	return entry.Value
}

func (pq *HeapPriorityQueue[T]) PeekWithPriority() (ret prioritree.Entry[T], _ error) {
	if pq.items.Len() == 0 {
		return ret, prioritree.ErrEmptyQueue
	}
	return pq.items[0].entry(), nil
}

func (pq *HeapPriorityQueue[T]) Peek() T {
	entry, _ := pq.PeekWithPriority()
	return entry.Value
}

func (pq *HeapPriorityQueue[T]) Len() int {
	return pq.items.Len()
}

func (pq *HeapPriorityQueue[T]) Clear() {
	for i := range pq.items {
		pq.items[i] = nil
	}
	pq.items = pq.items[:0]
	pq.seq = 0
}
