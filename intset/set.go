// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package intset provides a set of ints backed by a sparse bit vector,
// compact and fast for clustered integers such as identifiers and
// offsets. Iteration is always in ascending order.
package intset

import (
	"iter"

	"golang.org/x/tools/container/intsets"

	"github.com/luxfi/sets"
)

var (
	_ sets.SetLike[int]     = (*Set)(nil)
	_ sets.FastChecker[int] = (*Set)(nil)
	_ sets.Emptier[int]     = (*Set)(nil)
)

// Set is a sparse bit-vector set of ints. The zero value is an empty set
// ready to use. A Set must be copied with UnionWith on an empty set, not
// by assignment.
type Set struct {
	sparse intsets.Sparse
}

// New creates a new empty set
func New() *Set {
	return &Set{}
}

// Of creates a new set holding the given elements
func Of(elems ...int) *Set {
	s := New()
	for _, e := range elems {
		s.sparse.Insert(e)
	}
	return s
}

// Add implements the sets.SetLike interface. It returns whether the
// element was absent.
func (s *Set) Add(elt int) bool {
	return s.sparse.Insert(elt)
}

// Remove implements the sets.SetLike interface. It returns whether the
// element was present.
func (s *Set) Remove(elt int) bool {
	return s.sparse.Remove(elt)
}

// Contains returns true if the element is in the set
func (s *Set) Contains(elt int) bool {
	return s.sparse.Has(elt)
}

// FastContains implements the sets.FastChecker interface
func (*Set) FastContains() bool { return true }

// Len returns the number of elements in the set
func (s *Set) Len() int {
	return s.sparse.Len()
}

// IsEmpty returns whether the set contains no elements
func (s *Set) IsEmpty() bool {
	return s.sparse.IsEmpty()
}

// Clear removes all elements from the set
func (s *Set) Clear() {
	s.sparse.Clear()
}

// All implements the sets.Collection interface, yielding elements in
// ascending order. The walk is over a snapshot, so removing elements
// while iterating is safe.
func (s *Set) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, e := range s.Slice() {
			if !yield(e) {
				return
			}
		}
	}
}

// Empty implements the sets.Emptier interface
func (*Set) Empty(sizeHint int) sets.SetLike[int] {
	return New()
}

// Slice returns the elements in ascending order
func (s *Set) Slice() []int {
	return s.sparse.AppendTo(nil)
}

// String returns the set in {1 2 3} form
func (s *Set) String() string {
	return s.sparse.String()
}

// UnionWith adds every element of other to s word by word, reporting
// whether s grew. Unioning s with itself reports no growth.
func (s *Set) UnionWith(other *Set) bool {
	if s == other {
		return false
	}
	return s.sparse.UnionWith(&other.sparse)
}

// IntersectionWith retains only the elements of s also present in other.
// Intersecting s with itself leaves it unchanged.
func (s *Set) IntersectionWith(other *Set) {
	if s == other {
		return
	}
	s.sparse.IntersectionWith(&other.sparse)
}

// DifferenceWith removes every element of other from s. Differencing s
// with itself clears it.
func (s *Set) DifferenceWith(other *Set) {
	if s == other {
		s.Clear()
		return
	}
	s.sparse.DifferenceWith(&other.sparse)
}

// SymmetricDifferenceWith leaves s holding the elements present in
// exactly one of s and other. Applying s to itself clears it.
func (s *Set) SymmetricDifferenceWith(other *Set) {
	if s == other {
		s.Clear()
		return
	}
	s.sparse.SymmetricDifferenceWith(&other.sparse)
}

// Equals reports whether s and other hold the same elements
func (s *Set) Equals(other *Set) bool {
	return s.sparse.Equals(&other.sparse)
}

// SubsetOf reports whether every element of s is in other
func (s *Set) SubsetOf(other *Set) bool {
	return s.sparse.SubsetOf(&other.sparse)
}
