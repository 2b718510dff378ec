// Package hashz provides hashing helpers and a hash-addressed set for
// element types that define their own hash and equality, independently of
// the == operator.
package hashz

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hashable is implemented by element types that carry their own hash and
// equality rules.
type Hashable[E any] interface {
	// Hash returns the element's hash. Elements reported equal by Equal
	// must return the same hash.
	Hash() uint64

	// Equal reports whether the receiver matches other. The receiver is
	// always the candidate being tested against an element already held,
	// so an asymmetric implementation sees a fixed argument order.
	Equal(other E) bool
}

var comparableSeed = maphash.MakeSeed()

// Comparable returns the runtime's own hash of a comparable value, with a
// process-wide seed. Values that compare == hash identically. Panics if the
// value's dynamic type is not comparable, which is only reachable when T is
// an interface type.
func Comparable[T comparable](value T) uint64 {
	return maphash.Comparable(comparableSeed, value)
}

// Combine folds the given hashes into a single hash. The combination is
// order-sensitive: Combine(a, b) and Combine(b, a) differ in general, as do
// results for different hash counts.
func Combine(hashes ...uint64) uint64 {
	digest := xxhash.New()
	var buf [8]byte
	for _, h := range hashes {
		binary.BigEndian.PutUint64(buf[:], h)
		_, _ = digest.Write(buf[:])
	}
	return digest.Sum64()
}
