package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplay(t *testing.T) {
	r := NewReplay(FromSlice([]int{3, 4}))
	r.Unread(2)
	r.Unread(1)
	assert.Equal(t, 2, r.Pending())
	assert.Equal(t, []int{1, 2, 3, 4}, collect[int](r))
	assert.Zero(t, r.Pending())
}

func TestReplay_UnreadSeveral(t *testing.T) {
	r := NewReplay(FromSlice([]int{5}))
	for i := 4; i >= 0; i-- {
		r.Unread(i)
	}
	assert.Equal(t, 5, r.Pending())
	v, ok := r.Next()
	require.True(t, ok)
	assert.Equal(t, 0, v)

	r.Unread(-1)
	assert.Equal(t, []int{-1, 1, 2, 3, 4, 5}, collect[int](r))
	_, ok = r.Next()
	assert.False(t, ok)
}

func TestReplay_Close(t *testing.T) {
	src := &countingCursor[int]{Cursor: FromSlice([]int{1})}
	r := NewReplay[int](src)
	r.Unread(0)
	require.NoError(t, r.Close())
	assert.Equal(t, 1, src.closes)
	assert.Zero(t, r.Pending())
}

func TestNewReplay_Reuses(t *testing.T) {
	r := NewReplay(FromSlice([]int{1}))
	assert.Same(t, r, NewReplay[int](r))
}
