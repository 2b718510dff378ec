// Package slicez implements generic helpers over slices.
package slicez

// Map iterates over a slice and creates a new slice with each element
// transformed.
func Map[T any, R any](xs []T, fn func(T) R) []R {
	ys := make([]R, len(xs))
	for i, x := range xs {
		ys[i] = fn(x)
	}
	return ys
}

// Unique returns a duplicate-free version of a slice, in which only the first
// occurrence of each element is kept.
//
// The order of result values is determined by the order they occur.
func Unique[T comparable, Slice ~[]T](xs Slice) Slice {
	return UniqueBy(xs, func(x T) T { return x })
}

// UniqueBy returns a duplicate-free version of a slice, in which only the
// first element mapping to each distinct key is kept.
//
// The order of result values is determined by the order they occur.
func UniqueBy[T any, K comparable, Slice ~[]T](xs Slice, key func(T) K) Slice {
	ys := make(Slice, 0, len(xs))
	seen := make(map[K]struct{}, len(xs))
	for _, x := range xs {
		k := key(x)
		if _, ok := seen[k]; ok {
			continue
		}

		seen[k] = struct{}{}
		ys = append(ys, x)
	}
	return ys
}
