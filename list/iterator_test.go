package list

import (
	"cdll/utils/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestIteratorWrapAround(t *testing.T) {
	l := fromValues('A', 'B', 'C')

	it := l.End()
	require.NoError(t, it.Next())
	assert.True(t, it.Equal(l.Begin()))

	it = l.Begin()
	require.NoError(t, it.Prev())
	assert.True(t, it.Equal(l.End()))

	// walking forward twice around the ring visits every element twice
	var seen []rune
	it = l.Begin()
	for i := 0; i < 2*l.Len(); i++ {
		v, err := it.Value()
		require.NoError(t, err)
		seen = append(seen, v)
		require.NoError(t, it.Next())
	}
	assert.Equal(t, []rune("ABCABC"), seen)

	seen = seen[:0]
	it = l.End()
	for i := 0; i < 4; i++ {
		v, err := it.Value()
		require.NoError(t, err)
		seen = append(seen, v)
		require.NoError(t, it.Prev())
	}
	assert.Equal(t, []rune("CBAC"), seen)
}

func TestIteratorPostfix(t *testing.T) {
	l := fromValues(1, 2)
	it := l.Begin()
	old := it
	require.NoError(t, it.Next())
	v, err := old.Value()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	v, err = it.Value()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	next, err := it.Succ()
	require.NoError(t, err)
	prev, err := it.Pred()
	require.NoError(t, err)
	assert.True(t, next.Equal(prev), "on a pair both neighbours are the other node")
	assert.True(t, next.Equal(old))
	v, _ = it.Value()
	assert.Equal(t, 2, v, "Succ and Pred leave the receiver in place")
}

func TestIteratorSet(t *testing.T) {
	l := fromValues("this", "IS")
	it := l.End()
	require.NoError(t, it.Set("BE"))
	assert.Equal(t, []string{"this", "BE"}, l.Values())
}

func TestAbsentIterator(t *testing.T) {
	empty := New[int]()
	for _, it := range []Iterator[int]{{}, empty.Begin(), empty.End()} {
		assert.False(t, it.Valid())
		assert.ErrorIs(t, it.Next(), errs.ErrNullReference)
		assert.ErrorIs(t, it.Prev(), errs.ErrNullReference)
		_, err := it.Value()
		assert.ErrorIs(t, err, errs.ErrNullReference)
		assert.ErrorIs(t, it.Set(1), errs.ErrNullReference)
		_, err = it.Succ()
		assert.ErrorIs(t, err, errs.ErrNullReference)
		_, err = it.Pred()
		assert.ErrorIs(t, err, errs.ErrNullReference)
	}
}

func TestIteratorEqual(t *testing.T) {
	a := fromValues(1, 2)
	b := fromValues(1, 2)
	assert.True(t, a.Begin().Equal(a.Begin()))
	assert.False(t, a.Begin().Equal(a.End()))
	assert.False(t, a.Begin().Equal(b.Begin()), "same offset in another list is another node")
	assert.True(t, New[int]().Begin().Equal(Iterator[int]{}))
	assert.False(t, a.Begin().Equal(Iterator[int]{}))
}

func TestIteratorOnFreedNode(t *testing.T) {
	l := fromValues(1, 2, 3)
	it := l.Begin()
	_, err := l.PopFront()
	require.NoError(t, err)
	assert.False(t, it.Valid())
	_, err = it.Value()
	assert.ErrorIs(t, err, errs.ErrNullReference)

	rest := l.Begin()
	l.Release()
	assert.ErrorIs(t, rest.Next(), errs.ErrNullReference)
}

func TestIteratorSurvivesOtherRemovals(t *testing.T) {
	l := fromValues(1, 2, 3)
	mid, err := l.Begin().Succ()
	require.NoError(t, err)
	_, err = l.PopFront()
	require.NoError(t, err)
	_, err = l.PopBack()
	require.NoError(t, err)
	l.PushBack(4)

	v, err := mid.Value()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	require.NoError(t, mid.Next())
	v, _ = mid.Value()
	assert.Equal(t, 4, v)
}
