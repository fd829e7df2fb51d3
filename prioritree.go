package prioritree

import "fmt"

// Entry is a value stored in a queue together with its priority.
type Entry[T any] struct {
	Value    T
	Priority int
}

// Queue is a min-priority queue. Smaller priorities are dequeued first and
// entries sharing a priority come out in the order they were enqueued.
type Queue[T any] interface {
	Enqueue(value T, priority int)
	Dequeue() T
	Peek() T
	DequeueWithPriority() (Entry[T], error)
	PeekWithPriority() (Entry[T], error)
	Len() int
	Clear()
}

// String formats e as "<priority> value: <value>".
func (e Entry[T]) String() string {
	return fmt.Sprintf("%d value: %v", e.Priority, e.Value)
}
