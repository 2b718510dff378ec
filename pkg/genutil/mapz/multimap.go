// Package mapz implements generic maps with more structure than the builtin
// map type.
package mapz

import (
	"golang.org/x/exp/maps"
)

// MultiMap represents a map that can contain 1 or more values for each key.
type MultiMap[K comparable, V any] struct {
	items map[K][]V
}

// NewMultiMap initializes a new MultiMap.
func NewMultiMap[K comparable, V any]() *MultiMap[K, V] {
	return &MultiMap[K, V]{items: map[K][]V{}}
}

// Add inserts the value into the map at the given key.
//
// If there exists an existing value, then this value is appended
// *without comparison*. Put another way, a value can be added twice, if this
// method is called twice for the same value.
func (mm *MultiMap[K, V]) Add(key K, item V) {
	mm.items[key] = append(mm.items[key], item)
}

// RemoveKey removes the given key and all its values from the map.
func (mm *MultiMap[K, V]) RemoveKey(key K) {
	delete(mm.items, key)
}

// Has returns true if the key is found in the map.
func (mm *MultiMap[K, V]) Has(key K) bool {
	_, ok := mm.items[key]
	return ok
}

// Get returns the values stored in the map for the provided key and whether
// the key existed.
//
// If the key does not exist, an empty slice is returned.
func (mm *MultiMap[K, V]) Get(key K) ([]V, bool) {
	found, ok := mm.items[key]
	if !ok {
		return []V{}, false
	}

	return found, true
}

// IsEmpty returns true if the map is currently empty.
func (mm *MultiMap[K, V]) IsEmpty() bool { return len(mm.items) == 0 }

// Len returns the length of the map, e.g. the number of *keys* present.
func (mm *MultiMap[K, V]) Len() int { return len(mm.items) }

// Keys returns the keys of the map.
func (mm *MultiMap[K, V]) Keys() []K { return maps.Keys(mm.items) }

// Values returns all values in the map.
func (mm *MultiMap[K, V]) Values() []V {
	values := make([]V, 0, len(mm.items)*2)
	for _, valueSlice := range maps.Values(mm.items) {
		values = append(values, valueSlice...)
	}
	return values
}

// CountOf returns the number of values stored for the given key.
func (mm *MultiMap[K, V]) CountOf(key K) int {
	return len(mm.items[key])
}
