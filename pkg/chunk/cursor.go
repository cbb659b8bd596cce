package chunk

import (
	"io"
	"iter"

	"go.minekube.com/collections/pkg/util/sets"
)

// Cursor is a forward-only reader over a sequence of values.
// Next returns the next value, or false once the sequence is exhausted.
//
// A Cursor that holds resources should also implement io.Closer.
// Lists owning a cursor close it exactly once, at the end of the stream.
type Cursor[T any] interface {
	Next() (T, bool)
}

// Sequence is a reusable source of values.
// Every call to Cursor starts a new pass over the sequence.
type Sequence[T any] interface {
	Cursor() Cursor[T]
}

// CursorFunc implements Cursor using a function.
type CursorFunc[T any] func() (T, bool)

// Next implements Cursor.
func (f CursorFunc[T]) Next() (T, bool) { return f() }

// Slice is a Sequence over the elements of a slice.
type Slice[T any] []T

// Cursor implements Sequence.
func (s Slice[T]) Cursor() Cursor[T] { return FromSlice(s) }

// Seq is a Sequence over an iter.Seq.
// Cursors of a Seq are closable and stop the underlying iterator when closed.
type Seq[T any] iter.Seq[T]

// Cursor implements Sequence.
// It returns nil for a nil Seq.
func (s Seq[T]) Cursor() Cursor[T] {
	if s == nil {
		return nil
	}
	return FromSeq(iter.Seq[T](s))
}

type sliceCursor[T any] struct {
	items []T
	pos   int
}

// FromSlice returns a cursor over items.
func FromSlice[T any](items []T) Cursor[T] {
	return &sliceCursor[T]{items: items}
}

func (c *sliceCursor[T]) Next() (v T, ok bool) {
	if c.pos >= len(c.items) {
		return v, false
	}
	v = c.items[c.pos]
	c.pos++
	return v, true
}

type pullCursor[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq returns a closable cursor pulling from seq.
// The cursor must be closed if it is not drained.
func FromSeq[T any](seq iter.Seq[T]) Cursor[T] {
	next, stop := iter.Pull(seq)
	return &pullCursor[T]{next: next, stop: stop}
}

func (c *pullCursor[T]) Next() (T, bool) { return c.next() }

func (c *pullCursor[T]) Close() error {
	c.stop()
	return nil
}

// FromChan returns a cursor receiving from ch until it is closed.
// Next blocks while ch is empty.
func FromChan[T any](ch <-chan T) Cursor[T] {
	return CursorFunc[T](func() (T, bool) {
		v, ok := <-ch
		return v, ok
	})
}

type filterCursor[T any] struct {
	Cursor[T]
	keep func(T) bool
}

// Filter returns a cursor yielding only the values of c for which keep returns true.
// Closing the returned cursor closes c.
func Filter[T any](c Cursor[T], keep func(T) bool) Cursor[T] {
	if c == nil || keep == nil {
		return c
	}
	return &filterCursor[T]{Cursor: c, keep: keep}
}

func (c *filterCursor[T]) Next() (T, bool) {
	for {
		v, ok := c.Cursor.Next()
		if !ok || c.keep(v) {
			return v, ok
		}
	}
}

func (c *filterCursor[T]) Close() error { return closeCursor(c.Cursor) }

// Distinct returns a cursor skipping values already yielded by it.
// At most limit values are remembered; once that many were seen,
// unseen values pass through without being tracked. A limit <= 0 remembers all values.
// Closing the returned cursor closes c.
func Distinct[T comparable](c Cursor[T], limit int) Cursor[T] {
	seen := sets.NewCappedSet[T](limit)
	return Filter(c, func(v T) bool {
		if seen.Has(v) {
			return false
		}
		seen.Add(v)
		return true
	})
}

// closeCursor closes c if it holds resources.
func closeCursor[T any](c Cursor[T]) error {
	if closer, ok := c.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
