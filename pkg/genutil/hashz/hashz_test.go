package hashz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// caseFolded treats strings that differ only by case as equal.
type caseFolded string

func (c caseFolded) Hash() uint64 {
	return Comparable(strings.ToLower(string(c)))
}

func (c caseFolded) Equal(other caseFolded) bool {
	return strings.EqualFold(string(c), string(other))
}

func TestComparable(t *testing.T) {
	require.Equal(t, Comparable(42), Comparable(42))
	require.NotEqual(t, Comparable(42), Comparable(43))

	type pair struct{ a, b int }
	require.Equal(t, Comparable(pair{1, 2}), Comparable(pair{1, 2}))
}

func TestCombine(t *testing.T) {
	require.Equal(t, Combine(1, 2), Combine(1, 2))
	require.NotEqual(t, Combine(1, 2), Combine(2, 1))
	require.NotEqual(t, Combine(1), Combine(1, 1))
	require.Equal(t, Combine(), Combine())
}

func TestSetFirstAddedSurvives(t *testing.T) {
	s := NewSet[caseFolded]()
	require.True(t, s.IsEmpty())

	require.True(t, s.Add("Hello"))
	require.False(t, s.Add("HELLO"))
	require.False(t, s.Add("hello"))
	require.True(t, s.Add("world"))

	require.Equal(t, 2, s.Len())
	require.False(t, s.IsEmpty())

	// The element that was added first is the one kept.
	require.Contains(t, s.Values(), caseFolded("Hello"))
	require.Contains(t, s.Values(), caseFolded("world"))
}

func TestSetHas(t *testing.T) {
	s := NewSet[caseFolded]("Hello")
	require.True(t, s.Has("hello"))
	require.True(t, s.Has("HELLO"))
	require.False(t, s.Has("world"))
}

func TestSetAll(t *testing.T) {
	s := NewSet[caseFolded]("a", "b", "c")

	collected := NewSet[caseFolded]()
	for value := range s.All() {
		collected.Add(value)
	}
	require.Equal(t, 3, collected.Len())

	// Early termination stops the iteration.
	count := 0
	for range s.All() {
		count++
		break
	}
	require.Equal(t, 1, count)
}
