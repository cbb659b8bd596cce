package chunk

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-logr/logr"
	"go.uber.org/atomic"
)

// DefaultSize is a reasonable chunk size when callers have no preference.
const DefaultSize = 25

// maxPrealloc bounds the capacity reserved up front for a chunk,
// so a huge size does not allocate before any element was read.
const maxPrealloc = 1024

// Options are the arguments for opening a List on a cursor.
type Options struct {
	// Owns reports whether the List closes the cursor (if it implements io.Closer)
	// once the end of the stream is reached or the chain is closed.
	// Ownership is fixed for the whole chain of successor nodes.
	Owns bool
	// The logger used by all nodes of the chain.
	// If none is set, no logging is done.
	Logger logr.Logger
}

// source is the cursor state shared by all nodes of one chain.
type source[T any] struct {
	cursor   *Replay[T]
	owns     bool
	released atomic.Bool // cursor was released, never pulled again
	closed   atomic.Bool // chain was closed by a consumer
	err      error       // error returned when closing the cursor
	broken   error       // why an iteration of the chain stopped before its end
	log      logr.Logger
}

// release marks the end of the stream and closes the cursor if it is owned.
// Only the first call has an effect.
func (s *source[T]) release() error {
	if !s.released.CompareAndSwap(false, true) {
		return s.err
	}
	if !s.owns {
		return nil
	}
	if err := s.cursor.Close(); err != nil {
		s.err = err
		s.log.Error(err, "failed to release source cursor")
		return err
	}
	s.log.V(1).Info("released source cursor")
	return nil
}

// List is one node of a chain of chunks split from a single source.
//
// The chunk of a node is read when the node is constructed. Reading the chunk
// of the following node is deferred until Next is called.
// A List must be driven by a single consumer.
type List[T any] struct {
	src   *source[T]
	size  int
	index int
	chunk []T

	lookahead T    // first element of the next chunk
	hasMore   bool // lookahead is set
	advanced  bool // Next succeeded, the cursor belongs to the successor
}

// New splits seq into chunks of size elements.
// The List owns the cursor obtained from seq.
func New[T any](seq Sequence[T], size int) (*List[T], error) {
	if seq == nil {
		return nil, ErrNilSource
	}
	if err := validSize(size); err != nil {
		return nil, err
	}
	return Open(seq.Cursor(), size, Options{Owns: true})
}

// NewFromCursor splits the remaining values of c into chunks of size elements.
// If owns is true, c is closed at the end of the stream.
func NewFromCursor[T any](c Cursor[T], size int, owns bool) (*List[T], error) {
	return Open(c, size, Options{Owns: owns})
}

// Open splits the remaining values of c into chunks of size elements.
// The first chunk and the look-ahead element are read before Open returns.
func Open[T any](c Cursor[T], size int, opts Options) (*List[T], error) {
	if c == nil {
		return nil, ErrNilSource
	}
	if err := validSize(size); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	src := &source[T]{
		cursor: NewReplay(c),
		owns:   opts.Owns,
		log:    log.WithValues("chunkSize", size),
	}
	return fill(src, size, 0), nil
}

func validSize(size int) error {
	if size < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return nil
}

// fill constructs the node at index by pulling up to size elements
// and, if the chunk is full, exactly one look-ahead element.
func fill[T any](src *source[T], size, index int) *List[T] {
	l := &List[T]{
		src:   src,
		size:  size,
		index: index,
		chunk: make([]T, 0, min(size, maxPrealloc)),
	}
	for len(l.chunk) < size {
		v, ok := src.cursor.Next()
		if !ok {
			break
		}
		l.chunk = append(l.chunk, v)
	}
	// A short chunk means the cursor is already exhausted.
	if len(l.chunk) == size {
		l.lookahead, l.hasMore = src.cursor.Next()
	}
	if !l.hasMore {
		_ = src.release()
	}
	src.log.V(1).Info("materialized chunk",
		"index", index,
		"len", len(l.chunk),
		"hasMore", l.hasMore)
	return l
}

// Chunk returns a copy of the elements of this node.
// The last node of a chain split from an empty source has no elements.
func (l *List[T]) Chunk() []T {
	return slices.Clone(l.chunk)
}

// Len returns the number of elements of this node.
func (l *List[T]) Len() int { return len(l.chunk) }

// Size returns the configured chunk size of the chain.
func (l *List[T]) Size() int { return l.size }

// Index returns the zero-based position of this node in the chain.
func (l *List[T]) Index() int { return l.index }

// HasMore reports whether another chunk follows this one.
func (l *List[T]) HasMore() bool { return l.hasMore }

// Next reads and returns the following node of the chain.
//
// It returns ErrNoMoreChunks if HasMore is false, ErrClosed if the chain was
// closed and ErrAdvanced if Next already succeeded on this node.
func (l *List[T]) Next() (*List[T], error) {
	switch {
	case !l.hasMore:
		return nil, ErrNoMoreChunks
	case l.src.closed.Load():
		return nil, ErrClosed
	case l.advanced:
		return nil, ErrAdvanced
	}
	l.advanced = true
	l.src.cursor.Unread(l.lookahead)
	var zero T
	l.lookahead = zero
	return fill(l.src, l.size, l.index+1), nil
}

// Close ends the chain early. An owned cursor is closed if that did not
// already happen at the end of the stream. Next fails with ErrClosed afterwards.
func (l *List[T]) Close() error {
	l.src.closed.Store(true)
	return l.src.release()
}

// Err returns the error reported when the owned cursor was closed and the
// error that stopped Flatten or Chunks before the end of the chain, if any.
func (l *List[T]) Err() error { return errors.Join(l.src.err, l.src.broken) }

// interrupt records the first error that stopped an iteration of the chain.
func (s *source[T]) interrupt(err error) {
	if s.broken == nil {
		s.broken = err
	}
}
