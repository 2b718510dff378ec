// Package uniqueness transforms a slice into a copy without duplicates,
// using custom equality and hash functions. Basically, it avoids having to
// define a wrapping type for your values when you want to override their
// equality for one deduplication.
package uniqueness

import (
	"iter"
	"slices"

	"github.com/jotak/gomisc/pkg/genutil/hashz"
	"github.com/jotak/gomisc/pkg/genutil/setz"
	"github.com/jotak/gomisc/pkg/genutil/slicez"
)

// EqualsFunc reports whether other duplicates subject. Implementations are
// not required to be symmetric: deduplication always passes the value being
// examined as subject and an already-kept value as other.
type EqualsFunc[T any] func(subject, other T) bool

// HashFunc returns a value's hash. Values reported equal by the paired
// EqualsFunc must hash identically.
type HashFunc[T any] func(value T) uint64

// FieldFunc projects one field out of a value. Projections used to derive
// an equality rule must have comparable dynamic types.
type FieldFunc[T any] func(value T) any

// Uniqueness deduplicates a slice using a configurable equality rule
// instead of the element type's own. Configure the rule with
// WithEquals+WithHash or with ConstraintOn, then finish with one of Seq,
// AsSlice or AsSet.
//
// An instance must not be reconfigured from another goroutine while a
// terminal call runs; independent instances share nothing.
type Uniqueness[T comparable] struct {
	source []T
	equals EqualsFunc[T]
	hash   HashFunc[T]
}

// From starts a deduplication over source. The default rule is the values'
// own equality: the == operator and the runtime's hash. You should then
// call either WithEquals+WithHash or ConstraintOn, and finish with a
// terminal call. The source is never mutated.
//
// Panics if source is a nil slice.
func From[T comparable](source []T) *Uniqueness[T] {
	if source == nil {
		panic("uniqueness: nil source slice")
	}
	return &Uniqueness[T]{
		source: source,
		equals: func(subject, other T) bool { return subject == other },
		hash:   hashz.Comparable[T],
	}
}

// WithEquals overrides the equality rule only. The hash rule is left
// untouched, so pair this with WithHash unless the current hash is already
// consistent with the new equality; no consistency check is performed
// between the two. Exclusive with ConstraintOn: whichever is called last
// wins.
func (u *Uniqueness[T]) WithEquals(equals EqualsFunc[T]) *Uniqueness[T] {
	u.equals = equals
	return u
}

// WithHash overrides the hash rule only. Exclusive with ConstraintOn:
// whichever is called last wins.
func (u *Uniqueness[T]) WithHash(hash HashFunc[T]) *Uniqueness[T] {
	u.hash = hash
	return u
}

// ConstraintOn derives and installs both the equality and the hash rules
// from the given field projections: two values are duplicates iff they have
// the same runtime type and all their projections are equal, in order. Any
// rule set before is overwritten.
//
// With no projections at all, every value duplicates every other value of
// its runtime type, so a non-empty source collapses to a single element.
// This is intentional.
func (u *Uniqueness[T]) ConstraintOn(fields ...FieldFunc[T]) *Uniqueness[T] {
	u.equals = fieldsEquals(fields)
	u.hash = fieldsHash(fields)
	return u
}

// Seq returns the deduplicated elements as a lazy sequence, in unspecified
// order. Once iterated, elements are bucketed through an intermediate
// hash-addressed set; when several elements duplicate each other under the
// configured rule, the one earliest in the source survives.
//
// No check is made that the configured rule is a consistent equivalence
// (reflexive, symmetric, transitive, hash consistent with equals). When it
// is not, the survivors are simply one per collision bucket found during
// left-to-right insertion, which may depend on source order.
//
// The returned sequence captures the rules active at the call; later
// reconfiguration of the builder does not affect it. Panics if either rule
// has been forced to nil.
func (u *Uniqueness[T]) Seq() iter.Seq[T] {
	equals, hash := u.equals, u.hash
	if equals == nil || hash == nil {
		panic("uniqueness: both equals and hash rules must be set")
	}

	return func(yield func(T) bool) {
		kept := hashz.NewSet(slicez.Map(u.source, func(value T) Wrap[T] {
			return Wrap[T]{value: value, equals: equals, hash: hash}
		})...)
		for w := range kept.All() {
			if !yield(w.Unwrap()) {
				return
			}
		}
	}
}

// AsSlice returns the deduplicated elements as a new slice, in unspecified
// order. The slice is never nil, so the result can always be fed back into
// From.
func (u *Uniqueness[T]) AsSlice() []T {
	return slices.AppendSeq(make([]T, 0), u.Seq())
}

// AsSet returns the deduplicated elements as a native-equality set.
//
// WARNING: insertion into the set compares elements with the == operator,
// not with the configured rule. When == is coarser than the rule, elements
// the rule kept apart are merged again, so the set can hold fewer elements
// than AsSlice returns.
func (u *Uniqueness[T]) AsSet() *setz.Set[T] {
	return setz.NewSet(u.AsSlice()...)
}
