package sets

import "github.com/zyedidia/generic/mapset"

// CappedSet is a set that stops accepting new items once it holds cap items.
// A cap <= 0 means the set is unbounded.
type CappedSet[T comparable] struct {
	items mapset.Set[T]
	cap   int
}

func NewCappedSet[T comparable](cap int) *CappedSet[T] {
	return &CappedSet[T]{
		items: mapset.New[T](),
		cap:   cap,
	}
}

func (s *CappedSet[T]) Len() int {
	return s.items.Size()
}

// Full reports whether the set reached its capacity.
func (s *CappedSet[T]) Full() bool {
	return s.cap > 0 && s.items.Size() >= s.cap
}

// Has returns true if and only if item is contained in the set.
func (s *CappedSet[T]) Has(item T) bool {
	return s.items.Has(item)
}

// Add inserts items until the set is full and returns how many were newly added.
func (s *CappedSet[T]) Add(items ...T) (added int) {
	for _, item := range items {
		if s.items.Has(item) {
			continue
		}
		if s.Full() {
			return added
		}
		s.items.Put(item)
		added++
	}
	return added
}
