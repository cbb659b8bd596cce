package future

import (
	"context"
	"sync"
)

// Chan represents a future that completes with a single value of type T.
// The result can be read any number of times via Get, Wait or Receive.
// Only the first call to Complete has an effect.
// Chan is safe for concurrent use.
type Chan[T any] struct {
	result func() T // blocks until the result is available

	complete sync.Once
	done     chan struct{} // closed once the result is set
	value    T
}

// NewChan returns a new, uncompleted Chan.
func NewChan[T any]() *Chan[T] {
	f := &Chan[T]{done: make(chan struct{})}
	f.result = sync.OnceValue(func() T { <-f.done; return f.value })
	return f
}

// Go runs fn in a new goroutine and returns a future completed with its result.
func Go[T any](fn func() T) *Chan[T] {
	f := NewChan[T]()
	go func() { f.Complete(fn()) }()
	return f
}

// Completed returns a new future already completed with result.
func Completed[T any](result T) *Chan[T] {
	return NewChan[T]().Complete(result)
}

// Receive returns a channel receiving the result once, then closed.
func (f *Chan[T]) Receive() <-chan T {
	c := make(chan T, 1)
	go func() { c <- f.result(); close(c) }()
	return c
}

// Get blocks until the result is available.
func (f *Chan[T]) Get() T { return f.result() }

// Wait blocks until the result is available or ctx is done.
func (f *Chan[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done reports whether the future was completed.
func (f *Chan[T]) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Complete sets the result once. Later calls have no effect.
func (f *Chan[T]) Complete(result T) *Chan[T] {
	f.complete.Do(func() {
		f.value = result
		close(f.done)
	})
	return f
}
