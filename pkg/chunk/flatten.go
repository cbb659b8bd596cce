package chunk

import (
	"iter"

	"go.uber.org/atomic"
)

// Flatten returns the elements of every chunk of the chain starting at l, in source order.
//
// The returned sequence can be ranged over once; later passes yield nothing,
// since advancing the chain consumes the source. If the consumer stops early,
// the chain is closed. A nil List yields nothing.
//
// l must not have been advanced with Next, and must not be closed while more
// chunks follow. Otherwise nothing is yielded and l.Err reports ErrAdvanced
// or ErrClosed.
func Flatten[T any](l *List[T]) iter.Seq[T] {
	chunks := Chunks(l)
	return func(yield func(T) bool) {
		for _, c := range chunks {
			for _, v := range c {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Chunks returns the index and elements of every node of the chain starting at l.
//
// Like Flatten, the returned sequence can be ranged over once and closes the
// chain if the consumer stops early. It has the same requirements on l as Flatten.
func Chunks[T any](l *List[T]) iter.Seq2[int, []T] {
	var used atomic.Bool
	return func(yield func(int, []T) bool) {
		if l == nil || used.Swap(true) {
			return
		}
		switch {
		case l.advanced:
			l.src.interrupt(ErrAdvanced)
			return
		case l.hasMore && l.src.closed.Load():
			l.src.interrupt(ErrClosed)
			return
		}
		for node := l; ; {
			if !yield(node.index, node.Chunk()) {
				_ = node.Close()
				return
			}
			if !node.HasMore() {
				return
			}
			next, err := node.Next()
			if err != nil {
				node.src.interrupt(err)
				return
			}
			node = next
		}
	}
}
