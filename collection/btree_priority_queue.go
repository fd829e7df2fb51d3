package collection

import (
	"fmt"
	"strings"

	"github.com/ar90n/prioritree"
	"github.com/google/btree"
)

const defaultBTreeDegree = 32

// BTreePriorityQueue keeps entries in a B-tree ordered by priority and then
// by enqueue order. Use NewBTreePriorityQueue to create one.
type BTreePriorityQueue[T any] struct {
	tree *btree.BTreeG[item[T]]
	seq  uint64
}

var _ prioritree.Queue[int] = (*BTreePriorityQueue[int])(nil)

// NewBTreePriorityQueue returns an empty queue whose B-tree has the given
// degree. A degree below 2 selects the default.
func NewBTreePriorityQueue[T any](degree int) *BTreePriorityQueue[T] {
	if degree < 2 {
		degree = defaultBTreeDegree
	}
	return &BTreePriorityQueue[T]{
		tree: btree.NewG[item[T]](degree, lessItem[T]),
	}
}

func (bq *BTreePriorityQueue[T]) Enqueue(value T, priority int) {
	bq.tree.ReplaceOrInsert(item[T]{
		value:    value,
		priority: priority,
		seq:      bq.seq,
	})
	bq.seq++
}

func (bq *BTreePriorityQueue[T]) DequeueWithPriority() (prioritree.Entry[T], error) {
	it, ok := bq.tree.DeleteMin()
	if !ok {
		return prioritree.Entry[T]{}, prioritree.ErrEmptyQueue
	}
	return it.entry(), nil
}

func (bq *BTreePriorityQueue[T]) Dequeue() T {
	entry, _ := bq.DequeueWithPriority()
	return entry.Value
}

func (bq *BTreePriorityQueue[T]) PeekWithPriority() (prioritree.Entry[T], error) {
	it, ok := bq.tree.Min()
	if !ok {
		return prioritree.Entry[T]{}, prioritree.ErrEmptyQueue
	}
	return it.entry(), nil
}

func (bq *BTreePriorityQueue[T]) Peek() T {
	entry, _ := bq.PeekWithPriority()
	return entry.Value
}

func (bq *BTreePriorityQueue[T]) Len() int {
	return bq.tree.Len()
}

func (bq *BTreePriorityQueue[T]) Clear() {
	bq.tree.Clear(false)
	bq.seq = 0
}

// String uses the same line format as BstPriorityQueue.String.
func (bq *BTreePriorityQueue[T]) String() string {
	var sb strings.Builder
	bq.tree.Ascend(func(it item[T]) bool {
		fmt.Fprintln(&sb, it.entry())
		return true
	})
	return sb.String()
}
