// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sets

import (
	"math"
	"math/bits"
)

// Unbounded is the distinct-value bound reported for element types whose
// value space is not usefully enumerable. It is the saturation point of
// bound arithmetic: sums clamp here rather than wrapping, so an overflowed
// bound can never re-enable the terminate-early path by accident.
const Unbounded uint64 = math.MaxUint64

// Bounded is implemented by element types that can enumerate at most a
// fixed number of distinct values. UnionInto stops inserting into a
// destination once it holds that many elements; the bound is a pure
// optimization and reporting one that is too large only costs speed.
type Bounded interface {
	// DistinctBound returns the maximum number of distinct values of the
	// implementing type.
	DistinctBound() uint64
}

// MaxDistinct returns an upper bound on the number of distinct values the
// element type E can take: 2 for bool, 2^width for the byte- and
// 16-bit-wide integers, 1 for struct{}, whatever the type itself reports
// via Bounded, and Unbounded otherwise.
func MaxDistinct[E comparable]() uint64 {
	var zero E
	if b, ok := any(zero).(Bounded); ok {
		return b.DistinctBound()
	}
	switch any(zero).(type) {
	case bool:
		return 2
	case int8, uint8:
		return 1 << 8
	case int16, uint16:
		return 1 << 16
	case struct{}:
		return 1
	default:
		return Unbounded
	}
}

// saturatingAdd returns a+b, clamped to Unbounded on carry. The result is
// never smaller than either operand.
func saturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return Unbounded
	}
	return sum
}

var _ Bounded = Either[bool, bool]{}

// Either is a closed two-branch tagged union. It is comparable whenever
// both branches are, values with different tags never compare equal, and
// its distinct-value bound is the saturating sum of the branch bounds,
// which makes it the element type to use when a set must hold values drawn
// from two bounded domains.
type Either[A, B comparable] struct {
	isRight bool
	a       A
	b       B
}

// Left returns an Either holding an A.
func Left[A, B comparable](a A) Either[A, B] {
	return Either[A, B]{a: a}
}

// Right returns an Either holding a B.
func Right[A, B comparable](b B) Either[A, B] {
	return Either[A, B]{isRight: true, b: b}
}

// Left returns the A branch and whether the value holds one.
func (e Either[A, B]) Left() (A, bool) {
	return e.a, !e.isRight
}

// Right returns the B branch and whether the value holds one.
func (e Either[A, B]) Right() (B, bool) {
	return e.b, e.isRight
}

// DistinctBound implements the Bounded interface.
func (Either[A, B]) DistinctBound() uint64 {
	return saturatingAdd(MaxDistinct[A](), MaxDistinct[B]())
}
