// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sets

import "iter"

var (
	_ SetLike[int]     = (*Set[int])(nil)
	_ Emptier[int]     = (*Set[int])(nil)
	_ FastChecker[int] = (*Set[int])(nil)
	_ Grower           = (*Set[int])(nil)
)

// node is an entry in the insertion-order list. Links are maintained on
// insert and unlinked on remove; a node never moves once linked.
type node[E any] struct {
	elem E
	prev *node[E]
	next *node[E]
}

// Set is a mutable set that iterates in insertion order. It is the default
// output container of the construction operators, which is what makes
// first-occurrence order observable in their results.
//
// Membership is a hash lookup; order is kept in a doubly-linked list
// threaded through the map values. Removing the element currently being
// yielded by All is safe.
//
// Set is not safe for concurrent use; wrap it in a syncset.Set if needed.
type Set[E comparable] struct {
	nodes map[E]*node[E]
	head  *node[E]
	tail  *node[E]
}

// New returns an empty Set with room for [capacity] elements.
func New[E comparable](capacity int) *Set[E] {
	return &Set[E]{
		nodes: make(map[E]*node[E], capacity),
	}
}

// Of returns a Set of the given elements, keeping first occurrences.
func Of[E comparable](elems ...E) *Set[E] {
	s := New[E](len(elems))
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add implements the Adder interface.
func (s *Set[E]) Add(e E) bool {
	if s.nodes == nil {
		s.nodes = make(map[E]*node[E])
	}
	if _, ok := s.nodes[e]; ok {
		return false
	}
	n := &node[E]{elem: e, prev: s.tail}
	if s.tail != nil {
		s.tail.next = n
	} else {
		s.head = n
	}
	s.tail = n
	s.nodes[e] = n
	return true
}

// Remove implements the Remover interface.
func (s *Set[E]) Remove(e E) bool {
	n, ok := s.nodes[e]
	if !ok {
		return false
	}
	delete(s.nodes, e)
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		s.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		s.tail = n.prev
	}
	return true
}

// Contains implements the Checker interface.
func (s *Set[E]) Contains(e E) bool {
	_, ok := s.nodes[e]
	return ok
}

// FastContains implements the FastChecker interface.
func (*Set[E]) FastContains() bool {
	return true
}

// Len implements the Sized interface.
func (s *Set[E]) Len() int {
	return len(s.nodes)
}

// Clear implements the SetLike interface.
func (s *Set[E]) Clear() {
	clear(s.nodes)
	s.head = nil
	s.tail = nil
}

// All yields the elements in insertion order. The successor is resolved
// before each element is yielded, so the body may remove the element it is
// currently visiting.
func (s *Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for n := s.head; n != nil; {
			next := n.next
			if !yield(n.elem) {
				return
			}
			n = next
		}
	}
}

// Empty implements the Emptier interface.
func (*Set[E]) Empty(sizeHint int) SetLike[E] {
	return New[E](sizeHint)
}

// Grow implements the Grower interface. The hint is only usable before the
// first insertion; afterwards it is ignored.
func (s *Set[E]) Grow(n int) {
	if len(s.nodes) == 0 && n > 0 {
		s.nodes = make(map[E]*node[E], n)
	}
}

// Slice returns the elements in insertion order.
func (s *Set[E]) Slice() []E {
	out := make([]E, 0, len(s.nodes))
	for n := s.head; n != nil; n = n.next {
		out = append(out, n.elem)
	}
	return out
}
