// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sets

// Difference returns a new set holding the elements of s found in none of
// the extra collections. The output kind follows s. With no extras it
// returns a copy of s.
func Difference[E comparable](s Collection[E], more ...Collection[E]) SetLike[E] {
	return DifferenceInto(clone(s), more...)
}

// DifferenceInto removes from dst every element of every other, one
// collection at a time by direct per-element deletion, and returns dst.
// An other that is dst itself clears dst.
func DifferenceInto[E comparable](dst SetLike[E], others ...Collection[E]) SetLike[E] {
	for _, other := range others {
		if identical(dst, other) {
			dst.Clear()
			continue
		}
		if dst.Len() == 0 {
			break
		}
		for e := range other.All() {
			dst.Remove(e)
		}
	}
	return dst
}

// SymmetricDifference returns a new set holding the elements contained in
// an odd number of s and the extra collections, counting each collection's
// distinct elements once. The output kind follows s. With no extras it
// returns a copy of s's distinct elements.
func SymmetricDifference[E comparable](s Collection[E], more ...Collection[E]) SetLike[E] {
	hint, _ := knownLen(s)
	dst := SymmetricDifferenceInto(emptyLike(s, hint), s)
	return SymmetricDifferenceInto(dst, more...)
}

// SymmetricDifferenceInto toggles dst's membership of every distinct
// element of every other and returns dst: present elements are removed,
// absent ones inserted. A non-set-like other is coerced to a set first so
// a duplicated element still toggles exactly once. An other that is dst
// itself clears dst.
func SymmetricDifferenceInto[E comparable](dst SetLike[E], others ...Collection[E]) SetLike[E] {
	for _, other := range others {
		if identical(dst, other) {
			dst.Clear()
			continue
		}
		for e := range asSetLike(other).All() {
			if !dst.Add(e) {
				dst.Remove(e)
			}
		}
	}
	return dst
}
