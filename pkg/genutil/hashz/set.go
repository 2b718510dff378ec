package hashz

import (
	"iter"

	"github.com/jotak/gomisc/pkg/genutil/mapz"
)

// Set implements a hash-addressed set: membership is decided by the
// elements' own Hash and Equal rather than the == operator. Elements with
// the same hash land in the same bucket and are told apart by Equal; on a
// match, the element already held survives.
//
// The zero value is not usable; construct with NewSet.
type Set[E Hashable[E]] struct {
	buckets *mapz.MultiMap[uint64, E]
	count   int
}

// NewSet returns a new set holding the given items.
func NewSet[E Hashable[E]](items ...E) *Set[E] {
	s := &Set[E]{buckets: mapz.NewMultiMap[uint64, E]()}
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// Add adds the given value to the set and returns true. If an equal value
// with the same hash is already present, that value is kept and Add returns
// false.
func (s *Set[E]) Add(value E) bool {
	hash := value.Hash()
	if held, ok := s.buckets.Get(hash); ok {
		for _, h := range held {
			if value.Equal(h) {
				return false
			}
		}
	}

	s.buckets.Add(hash, value)
	s.count++
	return true
}

// Has returns true if the set contains a value equal to the given one.
func (s *Set[E]) Has(value E) bool {
	held, ok := s.buckets.Get(value.Hash())
	if !ok {
		return false
	}

	for _, h := range held {
		if value.Equal(h) {
			return true
		}
	}
	return false
}

// IsEmpty returns true if the set is empty.
func (s *Set[E]) IsEmpty() bool {
	return s.count == 0
}

// Len returns the number of values in the set.
func (s *Set[E]) Len() int {
	return s.count
}

// Values returns the values in the set as a slice, in unspecified order.
func (s *Set[E]) Values() []E {
	return s.buckets.Values()
}

// All iterates over the values in the set, in unspecified order.
func (s *Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, value := range s.buckets.Values() {
			if !yield(value) {
				return
			}
		}
	}
}
