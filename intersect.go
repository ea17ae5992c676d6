// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sets

// Intersect returns a new set holding the elements common to s and every
// extra collection. The output kind follows s. With one extra collection
// the strictly smaller side (by known length) is iterated and membership
// is tested against the other; ties iterate s, preserving its encounter
// order. With several, the extras are processed shortest known length
// first and folded pairwise, stopping as soon as the accumulator is
// empty. With no extras it returns a copy of s.
func Intersect[E comparable](s Collection[E], more ...Collection[E]) SetLike[E] {
	switch len(more) {
	case 0:
		return clone(s)
	case 1:
		return intersectPair(s, more[0])
	default:
		ordered := orderForIntersect(more)
		dst := intersectPair(s, ordered[0])
		return IntersectInto(dst, ordered[1:]...)
	}
}

// IntersectInto retains in dst only the elements also present in every
// other and returns dst. A set-like or fast-membership other filters dst
// directly; anything else is materialized into an auxiliary set first. An
// other that is dst itself leaves dst unchanged.
func IntersectInto[E comparable](dst SetLike[E], others ...Collection[E]) SetLike[E] {
	for _, other := range others {
		if identical(dst, other) {
			continue
		}
		if dst.Len() == 0 {
			break
		}
		var in func(E) bool
		if HasFastContains(other) {
			in = In(other)
		} else {
			in = materialize(other).Contains
		}
		FilterInPlace(dst, in)
	}
	return dst
}

// intersectPair builds the intersection of s and other into a fresh
// destination of s's kind.
func intersectPair[E comparable](s, other Collection[E]) SetLike[E] {
	outer, inner := s, other
	ns, sKnown := knownLen(s)
	no, oKnown := knownLen(other)
	hint := 0
	switch {
	case sKnown && oKnown:
		hint = min(ns, no)
		if no < ns {
			outer, inner = other, s
		}
	case sKnown:
		hint = ns
	case oKnown:
		hint = no
	}
	dst := emptyLike(s, hint)
	in := memberTest(inner)
	for e := range outer.All() {
		if in(e) {
			dst.Add(e)
		}
	}
	return dst
}
