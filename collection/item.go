package collection

import "github.com/ar90n/prioritree"

// item orders entries by priority and then by enqueue sequence so that
// equal priorities leave in the order they arrived.
type item[T any] struct {
	value    T
	priority int
	seq      uint64
}

func lessItem[T any](a, b item[T]) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}

func (i item[T]) entry() prioritree.Entry[T] {
	return prioritree.Entry[T]{Value: i.value, Priority: i.priority}
}
