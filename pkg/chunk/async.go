package chunk

import "go.minekube.com/collections/pkg/util/future"

// Result is the outcome of advancing a List asynchronously.
type Result[T any] struct {
	List *List[T]
	Err  error
}

// NextAsync calls l.Next in a new goroutine.
// The caller must not use l until the returned future completes.
func NextAsync[T any](l *List[T]) *future.Chan[Result[T]] {
	return future.Go(func() Result[T] {
		next, err := l.Next()
		return Result[T]{List: next, Err: err}
	})
}
