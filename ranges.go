// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sets

import (
	"iter"
	"math"

	"golang.org/x/exp/constraints"
)

var (
	_ Collection[int]  = (*Range[int])(nil)
	_ Sized            = (*Range[int])(nil)
	_ FastChecker[int] = (*Range[int])(nil)
	_ rangeDisjoint    = (*Range[int])(nil)
)

// Range is an immutable arithmetic progression: first, first+step, ... up
// to a normalized last element. Membership and length are O(1), so every
// algebra operation treats a Range as a fast-membership operand without
// ever materializing it.
type Range[E constraints.Integer] struct {
	first E
	last  E
	step  E
	n     uint64
}

// NewRange returns the progression starting at [first] advancing by [step]
// and stopping at the largest element not beyond [last]. The range is
// empty when no element lies between first and last in step's direction.
// Panics if step is zero.
func NewRange[E constraints.Integer](first, last, step E) *Range[E] {
	if step == 0 {
		panic("sets: zero range step")
	}
	r := &Range[E]{first: first, last: first, step: step}
	mag := unsignedMag(step)
	switch {
	case step > 0 && last >= first:
		q := unsignedDelta(last, first) / mag
		r.n = saturatingAdd(q, 1)
		r.last = E(uint64(first) + q*mag)
	case step < 0 && last <= first:
		q := unsignedDelta(first, last) / mag
		r.n = saturatingAdd(q, 1)
		r.last = E(uint64(first) - q*mag)
	}
	return r
}

// First returns the first element. Meaningless when the range is empty.
func (r *Range[E]) First() E { return r.first }

// Last returns the final element actually contained, which may be short of
// the limit NewRange was given. Meaningless when the range is empty.
func (r *Range[E]) Last() E { return r.last }

// Step returns the stride between consecutive elements.
func (r *Range[E]) Step() E { return r.step }

// IsEmpty returns whether the range contains no elements.
func (r *Range[E]) IsEmpty() bool { return r.n == 0 }

// Len implements the Sized interface.
func (r *Range[E]) Len() int {
	if r.n > math.MaxInt {
		return math.MaxInt
	}
	return int(r.n)
}

// Contains implements the Checker interface. It is a bounds check plus a
// congruence check, independent of the range length.
func (r *Range[E]) Contains(x E) bool {
	if r.n == 0 {
		return false
	}
	lo, hi := r.bounds()
	if x < lo || hi < x {
		return false
	}
	mag := unsignedMag(r.step)
	return residue(x, mag) == residue(r.first, mag)
}

// FastContains implements the FastChecker interface.
func (*Range[E]) FastContains() bool { return true }

// All implements the Collection interface, yielding elements from first to
// last.
func (r *Range[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		cur := r.first
		for i := uint64(0); i < r.n; i++ {
			if !yield(cur) {
				return
			}
			cur += r.step
		}
	}
}

// bounds returns the smallest and largest element. Only valid on a
// non-empty range.
func (r *Range[E]) bounds() (lo, hi E) {
	if r.step > 0 {
		return r.first, r.last
	}
	return r.last, r.first
}

// rangeDisjoint is probed by IsDisjoint so that two ranges of the same
// element type can resolve disjointness in O(1). ok reports whether the
// receiver could decide; when false the caller falls back to the generic
// membership walk.
type rangeDisjoint interface {
	disjointRange(other any) (disjoint, ok bool)
}

// disjointRange decides disjointness against another *Range[E]. Two ranges
// are disjoint when their bounding intervals do not overlap, and otherwise,
// for equal step magnitudes, exactly when their elements occupy different
// residue classes modulo that magnitude. Overlapping ranges with differing
// magnitudes are left to the generic path.
func (r *Range[E]) disjointRange(other any) (bool, bool) {
	o, sameType := other.(*Range[E])
	if !sameType {
		return false, false
	}
	if r.n == 0 || o.n == 0 {
		return true, true
	}
	rlo, rhi := r.bounds()
	olo, ohi := o.bounds()
	if rhi < olo || ohi < rlo {
		return true, true
	}
	mag := unsignedMag(r.step)
	if mag != unsignedMag(o.step) {
		return false, false
	}
	return residue(r.first, mag) != residue(o.first, mag), true
}

// unsignedDelta returns hi-lo as a uint64. Two's-complement conversion
// makes the subtraction exact for every integer type whenever hi >= lo.
func unsignedDelta[E constraints.Integer](hi, lo E) uint64 {
	return uint64(hi) - uint64(lo)
}

// unsignedMag returns |x| as a uint64.
func unsignedMag[E constraints.Integer](x E) uint64 {
	if x < 0 {
		return -uint64(x)
	}
	return uint64(x)
}

// residue returns the mathematical value of x modulo m, in [0, m).
func residue[E constraints.Integer](x E, m uint64) uint64 {
	if x >= 0 {
		return uint64(x) % m
	}
	if m > math.MaxInt64 {
		// The only magnitude above MaxInt64 a signed step can produce is
		// 1<<63, and reduction modulo 1<<63 is exact on the
		// two's-complement image.
		return uint64(x) % m
	}
	v := int64(x) % int64(m)
	if v < 0 {
		v += int64(m)
	}
	return uint64(v)
}
