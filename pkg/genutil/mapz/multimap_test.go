package mapz

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultimapOperations(t *testing.T) {
	mm := NewMultiMap[string, int]()
	require.Equal(t, 0, mm.Len())
	require.True(t, mm.IsEmpty())

	// Add some values to the map.
	mm.Add("odd", 1)
	mm.Add("odd", 3)
	mm.Add("odd", 5)

	require.Equal(t, 1, mm.Len())
	require.False(t, mm.IsEmpty())
	require.Equal(t, 3, mm.CountOf("odd"))

	require.True(t, mm.Has("odd"))
	found, ok := mm.Get("odd")
	require.True(t, ok)
	require.Equal(t, []int{1, 3, 5}, found)

	require.False(t, mm.Has("even"))
	found, ok = mm.Get("even")
	require.False(t, ok)
	require.Equal(t, []int{}, found)

	require.Equal(t, []string{"odd"}, mm.Keys())

	// Add some more values.
	mm.Add("even", 2)
	mm.Add("even", 4)

	require.Equal(t, 2, mm.Len())

	foundKeys := mm.Keys()
	sort.Strings(foundKeys)
	require.Equal(t, []string{"even", "odd"}, foundKeys)

	foundValues := mm.Values()
	sort.Ints(foundValues)
	require.Equal(t, []int{1, 2, 3, 4, 5}, foundValues)

	// Remove a key.
	mm.RemoveKey("odd")

	require.Equal(t, 1, mm.Len())
	require.False(t, mm.Has("odd"))
	require.Equal(t, 0, mm.CountOf("odd"))
	require.Equal(t, []string{"even"}, mm.Keys())
}

func TestMultimapDuplicateValues(t *testing.T) {
	mm := NewMultiMap[int, string]()
	mm.Add(1, "hello")
	mm.Add(1, "hello")

	// Values are appended without comparison.
	require.Equal(t, 2, mm.CountOf(1))
	found, ok := mm.Get(1)
	require.True(t, ok)
	require.Equal(t, []string{"hello", "hello"}, found)
}
