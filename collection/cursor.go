package collection

// Cursor iterates over a BstPriorityQueue in ascending priority order,
// visiting entries that share a priority in enqueue order. It keeps no
// buffer; each step climbs or descends the tree from the current node.
//
// The queue must not be modified while a traversal is in progress. Doing so
// leaves the cursor in an undefined state until Begin is called again.
type Cursor[T any] struct {
	queue *BstPriorityQueue[T]
	curr  *node[T]
}

// Cursor returns a new cursor positioned at the first entry of q. It is
// independent of the cursor driven by q.Begin and q.Next.
func (q *BstPriorityQueue[T]) Cursor() *Cursor[T] {
	c := &Cursor[T]{queue: q}
	c.Begin()
	return c
}

// Begin rewinds the cursor to the entry with the smallest priority.
func (c *Cursor[T]) Begin() {
	c.curr = leftmost(c.queue.root)
}

// Next returns the current entry and advances. ok is false once every entry
// has been returned.
func (c *Cursor[T]) Next() (value T, priority int, ok bool) {
	if c.curr == nil {
		return value, priority, false
	}
	value, priority = c.curr.value, c.curr.priority
	c.curr = successor(c.curr)
	return value, priority, true
}

func successor[T any](n *node[T]) *node[T] {
	if n.link != nil {
		return n.link
	}

	// back to the chain head
	for n.parent != nil && n.parent.priority == n.priority {
		n = n.parent
	}

	if n.right != nil {
		return leftmost(n.right)
	}

	for n.parent != nil {
		if n.parent.left == n {
			return n.parent
		}
		n = n.parent
	}
	return nil
}

// Begin rewinds the queue's own cursor. See Cursor for the rules that apply
// while a traversal is in progress.
func (q *BstPriorityQueue[T]) Begin() {
	q.cursor.queue = q
	q.cursor.Begin()
}

// Next advances the queue's own cursor. It reports ok == false when Begin
// has not been called or every entry has been returned.
func (q *BstPriorityQueue[T]) Next() (value T, priority int, ok bool) {
	return q.cursor.Next()
}

// Each calls fn for every entry in cursor order until fn returns false. It
// uses a fresh cursor and leaves the queue's own cursor untouched.
func (q *BstPriorityQueue[T]) Each(fn func(value T, priority int) bool) {
	c := q.Cursor()
	for {
		value, priority, ok := c.Next()
		if !ok || !fn(value, priority) {
			return
		}
	}
}
