// Package setz implements a basic generic set keyed by the values' own
// equality, i.e. the == operator.
package setz

import (
	"iter"

	"golang.org/x/exp/maps"
)

// Set implements a very basic generic set.
type Set[T comparable] struct {
	values map[T]struct{}
}

// NewSet returns a new set holding the given items.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{
		values: make(map[T]struct{}, len(items)),
	}
	for _, item := range items {
		s.values[item] = struct{}{}
	}
	return s
}

// Has returns true if the set contains the given value.
func (s *Set[T]) Has(value T) bool {
	_, exists := s.values[value]
	return exists
}

// Add adds the given value to the set and returns true. If
// the value is already present, returns false.
func (s *Set[T]) Add(value T) bool {
	if s.Has(value) {
		return false
	}

	s.values[value] = struct{}{}
	return true
}

// Delete removes the value from the set, returning whether
// the element was present when the call was made.
func (s *Set[T]) Delete(value T) bool {
	if !s.Has(value) {
		return false
	}

	delete(s.values, value)
	return true
}

// Extend adds all the values to the set.
func (s *Set[T]) Extend(values []T) {
	for _, value := range values {
		s.values[value] = struct{}{}
	}
}

// IsEmpty returns true if the set is empty.
func (s *Set[T]) IsEmpty() bool {
	return len(s.values) == 0
}

// Len returns the number of values in the set.
func (s *Set[T]) Len() int {
	return len(s.values)
}

// AsSlice returns the values in the set as a slice, in unspecified order.
func (s *Set[T]) AsSlice() []T {
	return maps.Keys(s.values)
}

// All iterates over the values in the set, in unspecified order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for value := range s.values {
			if !yield(value) {
				return
			}
		}
	}
}
