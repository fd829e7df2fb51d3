package pipeline

import (
	"context"

	"github.com/ar90n/prioritree"
)

const streamBufferSize = 8

// Drain dequeues q until it is empty or ctx is done and streams the entries
// in dequeue order. q belongs to the draining goroutine until the returned
// channel is closed.
func Drain[T any](ctx context.Context, q prioritree.Queue[T]) <-chan prioritree.Entry[T] {
	outputStream := make(chan prioritree.Entry[T], streamBufferSize)
	go func() {
		defer close(outputStream)

		for {
			entry, err := q.DequeueWithPriority()
			if err != nil {
				return
			}

			select {
			case <-ctx.Done():
				return
			case outputStream <- entry:
			}
		}
	}()

	return outputStream
}

func Take[T any](ctx context.Context, n uint, inputStream <-chan T) <-chan T {
	outputStream := make(chan T, streamBufferSize)
	go func() {
		defer close(outputStream)

		i := uint(0)
		for {
			select {
			case <-ctx.Done():
				return
			case item, ok := <-inputStream:
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					return
				case outputStream <- item:
				}
				i++
				if n <= i {
					return
				}
			}
		}
	}()

	return outputStream
}

func Seq(ctx context.Context, n uint) <-chan int {
	outputStream := make(chan int, streamBufferSize)
	go func() {
		defer close(outputStream)
		for i := uint(0); i < n; i++ {
			select {
			case <-ctx.Done():
				return
			case outputStream <- int(i):
			}
		}
	}()

	return outputStream
}

func ToSlice[T any](ctx context.Context, inputStream <-chan T) []T {
	output := make([]T, 0)
	for {
		select {
		case <-ctx.Done():
			return output
		case item, ok := <-inputStream:
			if !ok {
				return output
			}
			output = append(output, item)
		}
	}
}
