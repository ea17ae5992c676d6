// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sets_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sets"
)

// weekday overrides the 8-bit default with its true cardinality.
type weekday uint8

func (weekday) DistinctBound() uint64 { return 7 }

func TestMaxDistinct(t *testing.T) {
	require := require.New(t)

	require.Equal(uint64(2), sets.MaxDistinct[bool]())
	require.Equal(uint64(256), sets.MaxDistinct[int8]())
	require.Equal(uint64(256), sets.MaxDistinct[uint8]())
	require.Equal(uint64(65536), sets.MaxDistinct[int16]())
	require.Equal(uint64(65536), sets.MaxDistinct[uint16]())
	require.Equal(uint64(1), sets.MaxDistinct[struct{}]())
	require.Equal(sets.Unbounded, sets.MaxDistinct[int]())
	require.Equal(sets.Unbounded, sets.MaxDistinct[string]())
}

func TestMaxDistinctOverride(t *testing.T) {
	require.Equal(t, uint64(7), sets.MaxDistinct[weekday]())
}

func TestEitherAccessors(t *testing.T) {
	require := require.New(t)

	l := sets.Left[bool, uint8](true)
	r := sets.Right[bool, uint8](7)

	b, ok := l.Left()
	require.True(ok)
	require.True(b)
	_, ok = l.Right()
	require.False(ok)

	v, ok := r.Right()
	require.True(ok)
	require.Equal(uint8(7), v)
	_, ok = r.Left()
	require.False(ok)
}

func TestEitherComparable(t *testing.T) {
	require := require.New(t)

	require.Equal(sets.Left[bool, bool](true), sets.Left[bool, bool](true))
	require.NotEqual(sets.Left[bool, bool](true), sets.Right[bool, bool](true))

	s := sets.Of(
		sets.Left[bool, uint8](true),
		sets.Right[bool, uint8](1),
		sets.Left[bool, uint8](true),
	)
	require.Equal(2, s.Len())
}

func TestEitherBound(t *testing.T) {
	require := require.New(t)

	require.Equal(uint64(258), sets.MaxDistinct[sets.Either[bool, uint8]]())
	require.Equal(uint64(4), sets.MaxDistinct[sets.Either[bool, bool]]())

	// nested unions recurse
	require.Equal(uint64(6), sets.MaxDistinct[sets.Either[sets.Either[bool, bool], bool]]())

	// an unbounded branch saturates the sum
	require.Equal(sets.Unbounded, sets.MaxDistinct[sets.Either[bool, int]]())
	require.Equal(
		sets.Unbounded,
		sets.MaxDistinct[sets.Either[sets.Either[bool, int], bool]](),
	)
}
