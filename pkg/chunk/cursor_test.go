package chunk

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains c.
func collect[T any](c Cursor[T]) []T {
	var out []T
	for {
		v, ok := c.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestFromSlice(t *testing.T) {
	c := FromSlice([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, collect(c))
	_, ok := c.Next()
	assert.False(t, ok, "exhausted cursor stays exhausted")
}

func TestSlice_FreshCursor(t *testing.T) {
	s := Slice[int]{1, 2, 3}
	assert.Equal(t, []int{1, 2, 3}, collect(s.Cursor()))
	assert.Equal(t, []int{1, 2, 3}, collect(s.Cursor()))
}

func TestFromSeq(t *testing.T) {
	stopped := false
	seq := func(yield func(int) bool) {
		defer func() { stopped = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
	c := FromSeq(seq)
	for i := 0; i < 3; i++ {
		v, ok := c.Next()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	require.NoError(t, closeCursor(c))
	assert.True(t, stopped)
	_, ok := c.Next()
	assert.False(t, ok)
}

func TestSeq_OwnedByList(t *testing.T) {
	l, err := New[int](Seq[int](slices.Values([]int{1, 2, 3, 4, 5})), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, slices.Collect(Flatten(l)))
}

func TestFromChan(t *testing.T) {
	ch := make(chan int)
	go func() {
		defer close(ch)
		for i := 0; i < 5; i++ {
			ch <- i
		}
	}()
	l, err := NewFromCursor(FromChan(ch), 2, false)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, slices.Collect(Flatten(l)))
}

func TestCursorFunc(t *testing.T) {
	i := 0
	c := CursorFunc[int](func() (int, bool) {
		i++
		return i, i <= 3
	})
	assert.Equal(t, []int{1, 2, 3}, collect[int](c))
}

func TestFilter(t *testing.T) {
	src := &countingCursor[int]{Cursor: FromSlice([]int{1, 2, 3, 4, 5, 6})}
	c := Filter[int](src, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, collect(c))

	require.NoError(t, closeCursor(c))
	assert.Equal(t, 1, src.closes, "closing the filter closes the source")

	assert.Nil(t, Filter[int](nil, func(int) bool { return true }))
}

func TestDistinct(t *testing.T) {
	c := Distinct(FromSlice([]string{"a", "b", "a", "c", "b", "a"}), 0)
	assert.Equal(t, []string{"a", "b", "c"}, collect(c))
}

func TestDistinct_Limit(t *testing.T) {
	// only "a" is remembered, so repeated "b" passes through
	c := Distinct(FromSlice([]string{"a", "b", "a", "b"}), 1)
	assert.Equal(t, []string{"a", "b", "b"}, collect(c))

	// once the limit is reached, repeats of untracked values pass through
	ints := Distinct(FromSlice([]int{1, 1, 2, 2, 3, 3, 1}), 2)
	assert.Equal(t, []int{1, 2, 3, 3}, collect(ints))
}
