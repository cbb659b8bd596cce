package chunk

import "github.com/gammazero/deque"

// Replay is a cursor that yields unread values before pulling from the wrapped cursor.
// It holds values that were read ahead of their consumer and releases them, most
// recently unread first, on the following calls to Next.
type Replay[T any] struct {
	cursor  Cursor[T]
	pending *deque.Deque[T]
}

// NewReplay returns a Replay wrapping c.
func NewReplay[T any](c Cursor[T]) *Replay[T] {
	if r, ok := c.(*Replay[T]); ok {
		return r
	}
	return &Replay[T]{
		cursor:  c,
		pending: new(deque.Deque[T]),
	}
}

// Unread pushes v back so that it is returned by the next call to Next.
func (r *Replay[T]) Unread(v T) {
	r.pending.PushFront(v)
}

// Pending returns the number of unread values waiting to be replayed.
func (r *Replay[T]) Pending() int {
	return r.pending.Len()
}

// Next implements Cursor.
func (r *Replay[T]) Next() (T, bool) {
	if r.pending.Len() > 0 {
		return r.pending.PopFront(), true
	}
	return r.cursor.Next()
}

// Close closes the wrapped cursor if it is closable and drops pending values.
func (r *Replay[T]) Close() error {
	r.pending.Clear()
	return closeCursor(r.cursor)
}
