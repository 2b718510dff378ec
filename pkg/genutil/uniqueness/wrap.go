package uniqueness

import (
	"reflect"

	"github.com/jotak/gomisc/pkg/genutil/hashz"
)

// Wrap pairs one value with an equality rule, so that the value can sit in
// a hash-addressed container using that rule instead of its own equality.
// The builder feeds wraps to its intermediate set; WrapValue and WrapFields
// build standalone ones, e.g. to insert into a hashz.Set directly.
type Wrap[T any] struct {
	value  T
	equals EqualsFunc[T]
	hash   HashFunc[T]
}

// WrapValue wraps value with an explicit equality and hash pair.
func WrapValue[T any](value T, equals EqualsFunc[T], hash HashFunc[T]) Wrap[T] {
	return Wrap[T]{value: value, equals: equals, hash: hash}
}

// WrapFields wraps value with equality and hash rules derived from the
// given field projections, the same way ConstraintOn does.
func WrapFields[T any](value T, fields ...FieldFunc[T]) Wrap[T] {
	return Wrap[T]{value: value, equals: fieldsEquals(fields), hash: fieldsHash(fields)}
}

// Unwrap returns the wrapped value.
func (w Wrap[T]) Unwrap() T {
	return w.value
}

// Hash implements hashz.Hashable with the wrapped hash rule.
func (w Wrap[T]) Hash() uint64 {
	return w.hash(w.value)
}

// Equal implements hashz.Hashable with the wrapped equality rule. The
// receiver's value is passed as the subject and other's value as the
// comparison target.
func (w Wrap[T]) Equal(other Wrap[T]) bool {
	return w.equals(w.value, other.value)
}

func fieldsEquals[T any](fields []FieldFunc[T]) EqualsFunc[T] {
	return func(subject, other T) bool {
		if reflect.TypeOf(subject) != reflect.TypeOf(other) {
			return false
		}
		for _, field := range fields {
			if field(subject) != field(other) {
				return false
			}
		}
		return true
	}
}

func fieldsHash[T any](fields []FieldFunc[T]) HashFunc[T] {
	return func(value T) uint64 {
		hashes := make([]uint64, len(fields))
		for i, field := range fields {
			hashes[i] = hashz.Comparable(field(value))
		}
		return hashz.Combine(hashes...)
	}
}
