// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sets

import "iter"

var (
	_ Collection[int]          = (Slice[int])(nil)
	_ Sized                    = (Slice[int])(nil)
	_ Collection[int]          = (Seq[int])(nil)
	_ FastChecker[string]      = (Keys[string, int])(nil)
	_ Collection[string]       = (Keys[string, int])(nil)
)

// Slice adapts a slice as a Collection. It keeps the slice's encounter
// order and multiplicity and reports its length; it deliberately has no
// membership method, so operations against it go through the scan-or-
// materialize heuristic.
type Slice[E any] []E

// FromSlice adapts [s] without copying it.
func FromSlice[E any](s []E) Slice[E] {
	return s
}

// All implements the Collection interface.
func (s Slice[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s {
			if !yield(e) {
				return
			}
		}
	}
}

// Len implements the Sized interface.
func (s Slice[E]) Len() int {
	return len(s)
}

// Seq adapts a bare iterator as a Collection: no length, no membership.
// Useful for feeding streamed values straight into the algebra.
type Seq[E any] iter.Seq[E]

// FromSeq adapts [seq]. The sequence must be re-iterable if the operation
// it is passed to consumes it more than once; single-use sequences are fine
// for every operation in this package.
func FromSeq[E any](seq iter.Seq[E]) Seq[E] {
	return Seq[E](seq)
}

// All implements the Collection interface.
func (s Seq[E]) All() iter.Seq[E] {
	return iter.Seq[E](s)
}

// Keys adapts a map's key view as a Collection. Mapping keys are unique and
// hash-addressed, so the view reports fast membership.
type Keys[K comparable, V any] map[K]V

// MapKeys adapts the keys of [m] without copying it. Mutating the map while
// an operation iterates the view follows Go map iteration semantics.
func MapKeys[K comparable, V any](m map[K]V) Keys[K, V] {
	return m
}

// All implements the Collection interface.
func (k Keys[K, V]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range k {
			if !yield(key) {
				return
			}
		}
	}
}

// Len implements the Sized interface.
func (k Keys[K, V]) Len() int {
	return len(k)
}

// Contains implements the Checker interface.
func (k Keys[K, V]) Contains(key K) bool {
	_, ok := k[key]
	return ok
}

// FastContains implements the FastChecker interface.
func (Keys[K, V]) FastContains() bool {
	return true
}
