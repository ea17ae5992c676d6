// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sets

// IsSubset reports whether every element of a is found in b. When b's
// length is known, a set-like a longer than b fails immediately, and a b
// without fast membership beyond the auxiliary-set threshold is
// materialized once before the scan. Otherwise each element of a is
// tested against b directly, stopping at the first miss.
func IsSubset[E comparable](a, b Collection[E]) bool {
	if nb, ok := knownLen(b); ok {
		if as, aIsSet := a.(SetLike[E]); aIsSet && as.Len() > nb {
			return false
		}
		if !HasFastContains(b) && nb > auxSetThreshold {
			return IsSubset[E](a, materialize(b))
		}
	}
	in := In(b)
	for e := range a.All() {
		if !in(e) {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every element of b is found in a.
func IsSuperset[E comparable](a, b Collection[E]) bool {
	return IsSubset[E](b, a)
}

// IsStrictSubset reports whether a is a proper subset of b: a subset
// holding strictly fewer distinct elements. Non-set-like operands are
// coerced to sets first so multiplicity never skews the length
// comparison.
func IsStrictSubset[E comparable](a, b Collection[E]) bool {
	as, bs := asSetLike(a), asSetLike(b)
	return as.Len() < bs.Len() && IsSubset[E](as, bs)
}

// IsStrictSuperset reports whether b is a proper subset of a.
func IsStrictSuperset[E comparable](a, b Collection[E]) bool {
	return IsStrictSubset[E](b, a)
}

// SubsetOf returns a predicate reporting whether its argument is a subset
// of b, for use with Filter and friends.
func SubsetOf[E comparable](b Collection[E]) func(Collection[E]) bool {
	return func(a Collection[E]) bool { return IsSubset[E](a, b) }
}

// SupersetOf returns a predicate reporting whether its argument is a
// superset of b.
func SupersetOf[E comparable](b Collection[E]) func(Collection[E]) bool {
	return func(a Collection[E]) bool { return IsSuperset[E](a, b) }
}

// StrictSubsetOf returns a predicate reporting whether its argument is a
// proper subset of b.
func StrictSubsetOf[E comparable](b Collection[E]) func(Collection[E]) bool {
	return func(a Collection[E]) bool { return IsStrictSubset[E](a, b) }
}

// StrictSupersetOf returns a predicate reporting whether its argument is
// a proper superset of b.
func StrictSupersetOf[E comparable](b Collection[E]) func(Collection[E]) bool {
	return func(a Collection[E]) bool { return IsStrictSuperset[E](a, b) }
}

// NotSubsetOf returns a predicate reporting whether its argument is not a
// subset of b.
func NotSubsetOf[E comparable](b Collection[E]) func(Collection[E]) bool {
	return func(a Collection[E]) bool { return !IsSubset[E](a, b) }
}

// NotSupersetOf returns a predicate reporting whether its argument is not
// a superset of b.
func NotSupersetOf[E comparable](b Collection[E]) func(Collection[E]) bool {
	return func(a Collection[E]) bool { return !IsSuperset[E](a, b) }
}

// Equal reports whether two set-like collections hold exactly the same
// elements: equal lengths and a contained in b. Equal, IsStrictSubset, and
// IsSubset order sets the way ==, <, and <= order numbers, except the
// order is partial: two unequal sets may each fail to contain the other.
func Equal[E comparable](a, b SetLike[E]) bool {
	return a.Len() == b.Len() && IsSubset[E](a, b)
}

// IsSetEqual reports whether a and b contain exactly the same distinct
// elements, regardless of order or multiplicity. A known sequence length
// smaller than a set-like side's length fails without a scan, since
// distinct elements never outnumber total elements.
func IsSetEqual[E comparable](a, b Collection[E]) bool {
	as, aIsSet := a.(SetLike[E])
	bs, bIsSet := b.(SetLike[E])
	switch {
	case aIsSet && bIsSet:
		return Equal[E](as, bs)
	case aIsSet:
		return setEqualsCollection(as, b)
	case bIsSet:
		return setEqualsCollection(bs, a)
	default:
		if _, ok := knownLen(a); ok {
			return setEqualsCollection(materialize(a), b)
		}
		return setEqualsCollection(materialize(b), a)
	}
}

// setEqualsCollection compares a set against an arbitrary collection,
// materializing the collection only after the length short-circuit.
func setEqualsCollection[E comparable](s SetLike[E], c Collection[E]) bool {
	if n, ok := knownLen(c); ok && n < s.Len() {
		return false
	}
	return Equal[E](s, materialize(c))
}

// IsDisjoint reports whether a and b share no element. Two ranges of the
// same element type resolve in O(1) through their interval bounds and
// stride congruence. Otherwise the smaller knowable side is iterated and
// each element is tested against the best membership surface of the
// other: its own fast Contains, a linear scan below the auxiliary-set
// threshold, or a one-time materialized set.
func IsDisjoint[E comparable](a, b Collection[E]) bool {
	if rd, ok := a.(rangeDisjoint); ok {
		if disjoint, decided := rd.disjointRange(b); decided {
			return disjoint
		}
	}
	if rd, ok := b.(rangeDisjoint); ok {
		if disjoint, decided := rd.disjointRange(a); decided {
			return disjoint
		}
	}
	na, aKnown := knownLen(a)
	nb, bKnown := knownLen(b)
	if aKnown && bKnown && nb < na {
		a, b = b, a
	}
	return !sharesElement(a, b)
}

// sharesElement reports whether some element of a tests into b, choosing
// the membership direction by capability before falling back to the
// threshold rules.
func sharesElement[E comparable](a, b Collection[E]) bool {
	var in func(E) bool
	switch {
	case HasFastContains(b):
		in = In(b)
	case HasFastContains(a):
		a, b = b, a
		in = In(b)
	default:
		if n, ok := knownLen(b); ok && n < auxSetThreshold {
			in = In(b)
		} else {
			in = materialize(b).Contains
		}
	}
	for e := range a.All() {
		if in(e) {
			return true
		}
	}
	return false
}
