package prioritree

import "errors"

var (
	ErrEmptyQueue = errors.New("empty queue")
)
