// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package hashset provides the unordered hash set. It is the cheapest
// set-like collection in this module; use it whenever iteration order
// does not matter.
package hashset

import (
	"iter"

	"golang.org/x/exp/maps"

	"github.com/luxfi/sets"
)

var (
	_ sets.SetLike[int]     = (Set[int])(nil)
	_ sets.FastChecker[int] = (Set[int])(nil)
	_ sets.Emptier[int]     = (Set[int])(nil)
)

// Set is a generic unordered set backed by a map
type Set[E comparable] map[E]struct{}

// New creates a new set with an initial capacity
func New[E comparable](capacity int) Set[E] {
	return make(Set[E], capacity)
}

// Of creates a new set holding the given elements
func Of[E comparable](elems ...E) Set[E] {
	s := New[E](len(elems))
	for _, e := range elems {
		s[e] = struct{}{}
	}
	return s
}

// Add implements the sets.SetLike interface. It returns whether the
// element was absent.
func (s Set[E]) Add(elt E) bool {
	if _, ok := s[elt]; ok {
		return false
	}
	s[elt] = struct{}{}
	return true
}

// Remove implements the sets.SetLike interface. It returns whether the
// element was present.
func (s Set[E]) Remove(elt E) bool {
	if _, ok := s[elt]; !ok {
		return false
	}
	delete(s, elt)
	return true
}

// Contains returns true if the element is in the set
func (s Set[E]) Contains(elt E) bool {
	_, ok := s[elt]
	return ok
}

// FastContains implements the sets.FastChecker interface
func (Set[E]) FastContains() bool { return true }

// Len returns the number of elements in the set
func (s Set[E]) Len() int {
	return len(s)
}

// Clear removes all elements from the set
func (s Set[E]) Clear() {
	clear(s)
}

// All implements the sets.Collection interface. Removing the element
// currently yielded is safe under Go map iteration semantics.
func (s Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := range s {
			if !yield(e) {
				return
			}
		}
	}
}

// Empty implements the sets.Emptier interface, so algebra results over a
// hash set come back as a hash set.
func (Set[E]) Empty(sizeHint int) sets.SetLike[E] {
	return New[E](sizeHint)
}

// Slice returns the elements in an unspecified order
func (s Set[E]) Slice() []E {
	return maps.Keys(s)
}
