package collection

import (
	"fmt"
	"strings"

	"github.com/ar90n/prioritree"
)

// node is an entry of a BstPriorityQueue. Nodes reachable through left and
// right form a binary search tree over unique priorities. Entries that share
// a priority hang off the first one through link, oldest first.
//
// parent points to the BST parent for tree nodes and to the chain
// predecessor for chained nodes. It is only used for navigation.
type node[T any] struct {
	priority int
	value    T
	dup      bool
	parent   *node[T]
	link     *node[T]
	left     *node[T]
	right    *node[T]
}

// BstPriorityQueue is a min-priority queue backed by an unbalanced binary
// search tree keyed on priority. Entries with an equal priority are chained
// in enqueue order, so ties are dequeued first in, first out.
//
// The zero value is an empty queue ready to use. A BstPriorityQueue is not
// safe for concurrent use.
type BstPriorityQueue[T any] struct {
	root   *node[T]
	size   int
	cursor Cursor[T]
}

var _ prioritree.Queue[int] = (*BstPriorityQueue[int])(nil)

func NewBstPriorityQueue[T any]() *BstPriorityQueue[T] {
	return &BstPriorityQueue[T]{}
}

// Enqueue inserts value with the given priority. It never fails.
func (q *BstPriorityQueue[T]) Enqueue(value T, priority int) {
	var prev *node[T]
	curr := q.root
	for curr != nil {
		prev = curr
		if priority < curr.priority {
			curr = curr.left
		} else if curr.priority < priority {
			curr = curr.right
		} else {
			break
		}
	}

	n := &node[T]{priority: priority, value: value}
	switch {
	case curr != nil:
		curr.dup = true
		tail := curr
		for tail.link != nil {
			tail = tail.link
		}
		tail.link = n
		n.parent = tail
	case prev == nil:
		q.root = n
	case priority < prev.priority:
		prev.left = n
		n.parent = prev
	default:
		prev.right = n
		n.parent = prev
	}

	q.size++
}

// DequeueWithPriority removes and returns the entry with the smallest
// priority. prioritree.ErrEmptyQueue is returned if the queue is empty.
func (q *BstPriorityQueue[T]) DequeueWithPriority() (prioritree.Entry[T], error) {
	m := leftmost(q.root)
	if m == nil {
		return prioritree.Entry[T]{}, prioritree.ErrEmptyQueue
	}

	// m has no left child, and if it has a parent it is that parent's left child.
	parent := m.parent
	replacement := m.right
	if m.dup {
		next := m.link
		next.dup = next.link != nil
		next.parent = parent
		next.right = m.right
		if next.right != nil {
			next.right.parent = next
		}
		replacement = next
	} else if replacement != nil {
		replacement.parent = parent
	}

	if parent == nil {
		q.root = replacement
	} else {
		parent.left = replacement
	}

	entry := prioritree.Entry[T]{Value: m.value, Priority: m.priority}
	*m = node[T]{}
	q.size--

	return entry, nil
}

// Dequeue removes and returns the value with the smallest priority. The zero
// value of T is returned if the queue is empty; check Len beforehand or use
// DequeueWithPriority to tell the two apart.
func (q *BstPriorityQueue[T]) Dequeue() T {
	entry, _ := q.DequeueWithPriority()
	return entry.Value
}

// PeekWithPriority returns the entry Dequeue would remove next.
func (q *BstPriorityQueue[T]) PeekWithPriority() (prioritree.Entry[T], error) {
	m := leftmost(q.root)
	if m == nil {
		return prioritree.Entry[T]{}, prioritree.ErrEmptyQueue
	}
	return prioritree.Entry[T]{Value: m.value, Priority: m.priority}, nil
}

// Peek returns the value Dequeue would remove next, or the zero value of T
// if the queue is empty.
func (q *BstPriorityQueue[T]) Peek() T {
	entry, _ := q.PeekWithPriority()
	return entry.Value
}

func (q *BstPriorityQueue[T]) Len() int {
	return q.size
}

// Size is an alias of Len.
func (q *BstPriorityQueue[T]) Size() int {
	return q.size
}

// Clear removes every entry. Nodes are released children and chain first.
func (q *BstPriorityQueue[T]) Clear() {
	release(q.root)
	q.root = nil
	q.size = 0
	q.cursor.curr = nil
}

func release[T any](n *node[T]) {
	if n == nil {
		return
	}
	release(n.left)
	release(n.right)
	for c := n.link; c != nil; {
		next := c.link
		*c = node[T]{}
		c = next
	}
	*n = node[T]{}
}

// CopyFrom replaces the contents of q with a deep copy of other. Entries are
// re-enqueued in pre-order (node, left subtree, right subtree, chain), which
// rebuilds the same tree shape and chain order as other.
func (q *BstPriorityQueue[T]) CopyFrom(other *BstPriorityQueue[T]) {
	if q == other {
		return
	}
	q.Clear()
	q.enqueuePreOrder(other.root)
}

func (q *BstPriorityQueue[T]) enqueuePreOrder(n *node[T]) {
	if n == nil {
		return
	}
	q.Enqueue(n.value, n.priority)
	q.enqueuePreOrder(n.left)
	q.enqueuePreOrder(n.right)
	q.enqueuePreOrder(n.link)
}

// Clone returns an independent deep copy of q.
func (q *BstPriorityQueue[T]) Clone() *BstPriorityQueue[T] {
	c := NewBstPriorityQueue[T]()
	c.CopyFrom(q)
	return c
}

// String renders every entry in ascending priority order, one
// "<priority> value: <value>" line per entry. It does not touch the cursor.
func (q *BstPriorityQueue[T]) String() string {
	var sb strings.Builder
	writeInOrder(&sb, q.root)
	return sb.String()
}

func writeInOrder[T any](sb *strings.Builder, n *node[T]) {
	if n == nil {
		return
	}
	writeInOrder(sb, n.left)
	for c := n; c != nil; c = c.link {
		fmt.Fprintln(sb, prioritree.Entry[T]{Value: c.value, Priority: c.priority})
	}
	writeInOrder(sb, n.right)
}

// Entries returns every entry in the order String renders them.
func (q *BstPriorityQueue[T]) Entries() []prioritree.Entry[T] {
	entries := make([]prioritree.Entry[T], 0, q.size)
	q.Each(func(value T, priority int) bool {
		entries = append(entries, prioritree.Entry[T]{Value: value, Priority: priority})
		return true
	})
	return entries
}

// Equal reports whether a and b hold the same number of entries laid out in
// the same shape with equal values at each position. Priorities are not
// compared, and two queues holding the same entries may differ in shape when
// they were filled in a different order.
func Equal[T comparable](a, b *BstPriorityQueue[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return x == y
	})
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[T any](a, b *BstPriorityQueue[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	return identical(a.root, b.root, eq)
}

func identical[T any](x, y *node[T], eq func(T, T) bool) bool {
	if x == nil || y == nil {
		return x == y
	}
	if !eq(x.value, y.value) {
		return false
	}
	return identical(x.left, y.left, eq) &&
		identical(x.right, y.right, eq) &&
		identical(x.link, y.link, eq)
}

func leftmost[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}
