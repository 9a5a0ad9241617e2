package primemap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	s := NewSet(11)

	require.True(t, s.Add("foo"))
	require.False(t, s.Add("foo"))
	require.True(t, s.Add("bar"))
	require.Equal(t, 2, s.Len())

	assert.True(t, s.Has("foo"))
	assert.False(t, s.Has("baz"))

	require.True(t, s.Delete("foo"))
	require.False(t, s.Delete("foo"))
	require.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Stats().Tombstones)

	require.Equal(t, []string{"bar"}, slices.Collect(s.All()))
}

func TestSet_Grow(t *testing.T) {
	s := NewSet(3)

	for _, w := range genWords(100) {
		s.Add(w)
	}

	require.Equal(t, 100, s.Len())
	require.Greater(t, s.Stats().Capacity, 200)

	keys := slices.Sorted(s.All())
	expected := genWords(100)
	slices.Sort(expected)
	require.Equal(t, expected, keys)
}
