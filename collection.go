// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package sets implements generic set algebra over abstract collections.
//
// The algebra operates on capability interfaces rather than concrete
// containers. Any type that can enumerate its elements is a Collection;
// optional capabilities (a known length, a membership test, a same-kind
// empty constructor) are declared by implementing the corresponding
// interface and are probed by upgrade, the same way io.WriterTo is.
//
// The construction operators (Union, Intersect, Difference,
// SymmetricDifference) and the comparison predicates (IsSubset, IsSetEqual,
// IsDisjoint, ...) are free functions generic over the element type. Each
// construction operator has an immutable form returning a fresh container
// and an Into form overwriting a caller-supplied destination.
package sets

import "iter"

// Collection is anything that can enumerate its elements.
//
// All must produce each element exactly once for set-like collections; for
// sequence adapters it follows the sequence's own multiplicity and encounter
// order. Unless documented otherwise by the implementation, All must
// tolerate removal of the element currently being yielded.
type Collection[E any] interface {
	All() iter.Seq[E]
}

// Sized is implemented by collections whose element count is knowable in
// O(1) or by a cheap total count.
type Sized interface {
	Len() int
}

// Checker wraps a membership test. Implementing Checker alone makes no
// promise about cost; a linear scan is a valid implementation.
type Checker[E any] interface {
	// Contains reports whether the collection holds the element.
	Contains(E) bool
}

// FastChecker is implemented by collections whose Contains is expected to
// run in constant or logarithmic time: hash sets, search trees, mapping
// keys, and arithmetic ranges. A collection may implement FastChecker and
// return false to opt back out of fast-membership dispatch.
type FastChecker[E any] interface {
	Checker[E]

	// FastContains reports whether Contains is sub-linear.
	FastContains() bool
}

// Adder wraps idempotent insertion.
type Adder[E any] interface {
	// Add inserts the element and reports whether it was absent before.
	Add(E) bool
}

// Remover wraps delete-if-present.
type Remover[E any] interface {
	// Remove deletes the element and reports whether it was present.
	Remove(E) bool
}

// SetLike is a collection guaranteeing unique elements with membership,
// insertion, and deletion as primitive operations. Every SetLike in this
// module additionally keeps All safe while the current element is removed
// mid-iteration.
type SetLike[E any] interface {
	Collection[E]
	Checker[E]
	Sized
	Adder[E]
	Remover[E]

	// Clear removes all elements.
	Clear()
}

// Emptier is the empty-constructor capability: it produces a new, empty,
// mutable collection of the same kind as the receiver. The construction
// operators consult the first argument's Emptier to decide the output
// container kind; collections without it get an insertion-ordered Set.
type Emptier[E any] interface {
	// Empty returns a new empty set of the receiver's kind. [sizeHint] is
	// advisory capacity, never required for correctness.
	Empty(sizeHint int) SetLike[E]
}

// Grower is the advisory size-hint capability.
type Grower interface {
	// Grow hints that the collection is about to hold at least [n]
	// elements. Implementations may ignore it.
	Grow(n int)
}

// HasFastContains reports whether membership tests against [c] are expected
// to be sub-linear. This drives dispatch only; it never changes the logical
// result of an operation.
func HasFastContains[E any](c Collection[E]) bool {
	f, ok := c.(FastChecker[E])
	return ok && f.FastContains()
}

// In returns the membership predicate of [c], suitable for Filter. The
// predicate scans linearly when [c] has no Contains of its own.
func In[E comparable](c Collection[E]) func(E) bool {
	if chk, ok := c.(Checker[E]); ok {
		return chk.Contains
	}
	return func(x E) bool {
		for y := range c.All() {
			if y == x {
				return true
			}
		}
		return false
	}
}

// knownLen reports the element count of [c] if it is knowable.
func knownLen[E any](c Collection[E]) (int, bool) {
	if s, ok := c.(Sized); ok {
		return s.Len(), true
	}
	return 0, false
}
