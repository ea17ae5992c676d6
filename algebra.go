// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sets

import (
	"reflect"
	"sort"
)

// auxSetThreshold is the element count at which a collection without fast
// membership becomes worth materializing into an auxiliary set before
// repeated membership tests. Below it a linear scan per query avoids the
// allocation. The choice only affects speed, never results.
const auxSetThreshold = 70

// emptyLike returns a new empty set of the same kind as c when c can build
// one, and an insertion-ordered Set otherwise. sizeHint is advisory.
func emptyLike[E comparable](c Collection[E], sizeHint int) SetLike[E] {
	if e, ok := c.(Emptier[E]); ok {
		return e.Empty(sizeHint)
	}
	return New[E](sizeHint)
}

// materialize copies c's distinct elements into a fresh ordered Set,
// giving a slow collection a fast membership surface.
func materialize[E comparable](c Collection[E]) *Set[E] {
	hint, _ := knownLen(c)
	s := New[E](hint)
	for e := range c.All() {
		s.Add(e)
	}
	return s
}

// asSetLike returns c itself when it is already set-like, and a
// materialized copy otherwise.
func asSetLike[E comparable](c Collection[E]) SetLike[E] {
	if s, ok := c.(SetLike[E]); ok {
		return s
	}
	return materialize(c)
}

// memberTest returns the best membership predicate for repeated queries
// against c: the collection's own Contains when that is fast, a linear
// scan when c is known to be small, and a one-time materialized auxiliary
// set otherwise.
func memberTest[E comparable](c Collection[E]) func(E) bool {
	if HasFastContains(c) {
		return In(c)
	}
	if n, ok := knownLen(c); ok && n < auxSetThreshold {
		return In(c)
	}
	return materialize(c).Contains
}

// clone copies s into a fresh destination of s's kind.
func clone[E comparable](s Collection[E]) SetLike[E] {
	hint, _ := knownLen(s)
	return UnionInto(emptyLike(s, hint), s)
}

// grow forwards an advisory capacity reservation when dst supports one.
func grow[E any](dst SetLike[E], n int) {
	if g, ok := dst.(Grower); ok {
		g.Grow(n)
	}
}

// identical reports whether a and b are the same collection instance.
// Mutating operators use it to detect destination aliasing. Interface
// equality would panic on non-comparable dynamic types, so identity is
// established through reference pointers instead; collections held by
// value are never considered identical.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() != rb.Kind() {
		return false
	}
	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Slice, reflect.Func:
		return ra.Pointer() == rb.Pointer()
	default:
		return false
	}
}

// orderForIntersect returns the extra intersect arguments reordered so the
// shortest known length is processed first, shrinking the accumulator
// fastest. Collections of unknown length keep their relative order after
// the known ones; equal lengths tie-break by position.
func orderForIntersect[E comparable](others []Collection[E]) []Collection[E] {
	ordered := make([]Collection[E], len(others))
	copy(ordered, others)
	sort.SliceStable(ordered, func(i, j int) bool {
		ni, iKnown := knownLen(ordered[i])
		nj, jKnown := knownLen(ordered[j])
		if iKnown != jKnown {
			return iKnown
		}
		return iKnown && ni < nj
	})
	return ordered
}
