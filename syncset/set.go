// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package syncset makes any set-like collection safe for concurrent use
// by guarding it with a reader/writer lock.
package syncset

import (
	"iter"
	"sync"

	"github.com/luxfi/sets"
)

var (
	_ sets.SetLike[int]     = (*Set[int])(nil)
	_ sets.FastChecker[int] = (*Set[int])(nil)
	_ sets.Emptier[int]     = (*Set[int])(nil)
	_ sets.Grower           = (*Set[int])(nil)
)

// Set guards an inner set with a sync.RWMutex
type Set[E comparable] struct {
	lock  sync.RWMutex
	inner sets.SetLike[E]
}

// Wrap returns a set guarding inner. The caller must not use inner
// directly afterwards. Panics if inner is nil.
func Wrap[E comparable](inner sets.SetLike[E]) *Set[E] {
	if inner == nil {
		panic("syncset: nil inner set")
	}
	return &Set[E]{inner: inner}
}

// New returns a concurrency-safe insertion-ordered set
func New[E comparable](capacity int) *Set[E] {
	return Wrap[E](sets.New[E](capacity))
}

// Add implements the sets.SetLike interface
func (s *Set[E]) Add(elt E) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.inner.Add(elt)
}

// Remove implements the sets.SetLike interface
func (s *Set[E]) Remove(elt E) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.inner.Remove(elt)
}

// Clear removes all elements from the set
func (s *Set[E]) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.inner.Clear()
}

// Contains returns true if the element is in the set
func (s *Set[E]) Contains(elt E) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.inner.Contains(elt)
}

// FastContains implements the sets.FastChecker interface by reporting the
// inner set's answer.
func (s *Set[E]) FastContains() bool {
	return sets.HasFastContains[E](s.inner)
}

// Len returns the number of elements in the set
func (s *Set[E]) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.inner.Len()
}

// All implements the sets.Collection interface. It yields a snapshot
// taken under the read lock, so the set may be mutated freely, from any
// goroutine, while iterating.
func (s *Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, e := range s.Slice() {
			if !yield(e) {
				return
			}
		}
	}
}

// Empty implements the sets.Emptier interface. The result wraps an empty
// set of the inner kind behind its own lock.
func (s *Set[E]) Empty(sizeHint int) sets.SetLike[E] {
	s.lock.RLock()
	defer s.lock.RUnlock()

	var inner sets.SetLike[E]
	if e, ok := s.inner.(sets.Emptier[E]); ok {
		inner = e.Empty(sizeHint)
	} else {
		inner = sets.New[E](sizeHint)
	}
	return Wrap[E](inner)
}

// Grow implements the sets.Grower interface, forwarding to the inner set
// when it can reserve.
func (s *Set[E]) Grow(n int) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if g, ok := s.inner.(sets.Grower); ok {
		g.Grow(n)
	}
}

// Slice returns a snapshot of the elements in the inner set's order
func (s *Set[E]) Slice() []E {
	s.lock.RLock()
	defer s.lock.RUnlock()

	elems := make([]E, 0, s.inner.Len())
	for e := range s.inner.All() {
		elems = append(elems, e)
	}
	return elems
}
