// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sets

// Filter returns a new collection of s's kind holding the elements that
// satisfy keep, in encounter order.
func Filter[E comparable](s Collection[E], keep func(E) bool) SetLike[E] {
	hint, _ := knownLen(s)
	dst := emptyLike(s, hint)
	for e := range s.All() {
		if keep(e) {
			dst.Add(e)
		}
	}
	return dst
}

// FilterInPlace removes from s every element failing keep and returns s.
// Elements are removed while s is being iterated, which every SetLike in
// this module supports: removing the element currently visited never
// corrupts the rest of the iteration.
func FilterInPlace[E comparable](s SetLike[E], keep func(E) bool) SetLike[E] {
	for e := range s.All() {
		if !keep(e) {
			s.Remove(e)
		}
	}
	return s
}
