// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package treeset provides a sorted set backed by a B-tree. Iteration is
// always in ascending order of the set's ordering function, regardless of
// insertion order.
package treeset

import (
	"iter"

	"github.com/google/btree"
	"golang.org/x/exp/constraints"

	"github.com/luxfi/sets"
)

const degree = 32

var (
	_ sets.SetLike[int]     = (*Set[int])(nil)
	_ sets.FastChecker[int] = (*Set[int])(nil)
	_ sets.Emptier[int]     = (*Set[int])(nil)
)

// Set is a generic sorted set
type Set[E comparable] struct {
	less func(a, b E) bool
	tree *btree.BTreeG[E]
}

// New creates a new set ordered by less
func New[E comparable](less func(a, b E) bool) *Set[E] {
	return &Set[E]{
		less: less,
		tree: btree.NewG(degree, btree.LessFunc[E](less)),
	}
}

// NewOrdered creates a new ascending set of an ordered element type
func NewOrdered[E constraints.Ordered]() *Set[E] {
	return New(func(a, b E) bool { return a < b })
}

// Of creates a new ascending set holding the given elements
func Of[E constraints.Ordered](elems ...E) *Set[E] {
	s := NewOrdered[E]()
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add implements the sets.SetLike interface. It returns whether the
// element was absent.
func (s *Set[E]) Add(elt E) bool {
	_, replaced := s.tree.ReplaceOrInsert(elt)
	return !replaced
}

// Remove implements the sets.SetLike interface. It returns whether the
// element was present.
func (s *Set[E]) Remove(elt E) bool {
	_, removed := s.tree.Delete(elt)
	return removed
}

// Contains returns true if the element is in the set
func (s *Set[E]) Contains(elt E) bool {
	return s.tree.Has(elt)
}

// FastContains implements the sets.FastChecker interface. Lookups are
// O(log n).
func (*Set[E]) FastContains() bool { return true }

// Len returns the number of elements in the set
func (s *Set[E]) Len() int {
	return s.tree.Len()
}

// Clear removes all elements from the set
func (s *Set[E]) Clear() {
	s.tree.Clear(false)
}

// Min returns the smallest element and whether the set is non-empty
func (s *Set[E]) Min() (E, bool) {
	return s.tree.Min()
}

// Max returns the largest element and whether the set is non-empty
func (s *Set[E]) Max() (E, bool) {
	return s.tree.Max()
}

// All implements the sets.Collection interface, yielding elements in
// ascending order. The walk is over a snapshot because the tree must not
// be mutated mid-descent, so removing elements while iterating is safe.
func (s *Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s.Slice() {
			if !yield(e) {
				return
			}
		}
	}
}

// Empty implements the sets.Emptier interface. The new set shares the
// receiver's ordering function.
func (s *Set[E]) Empty(sizeHint int) sets.SetLike[E] {
	return New(s.less)
}

// Slice returns the elements in ascending order
func (s *Set[E]) Slice() []E {
	elems := make([]E, 0, s.tree.Len())
	s.tree.Ascend(func(e E) bool {
		elems = append(elems, e)
		return true
	})
	return elems
}
