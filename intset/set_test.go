// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package intset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sets"
	"github.com/luxfi/sets/intset"
	"github.com/luxfi/sets/settest"
)

func TestConformance(t *testing.T) {
	settest.TestSuite(t, func() sets.SetLike[int] {
		return intset.New()
	})
}

func TestAscendingWithNegatives(t *testing.T) {
	require := require.New(t)

	s := intset.Of(9, -2, 5, 0, 5)
	require.Equal(4, s.Len())
	require.Equal([]int{-2, 0, 5, 9}, s.Slice())
	require.True(s.Contains(-2))
	require.False(s.IsEmpty())
}

func TestZeroValueUsable(t *testing.T) {
	require := require.New(t)

	var s intset.Set
	require.True(s.IsEmpty())
	require.True(s.Add(3))
	require.Equal("{3}", s.String())
}

func TestBulkOperations(t *testing.T) {
	require := require.New(t)

	s := intset.Of(1, 2, 3)
	require.True(s.UnionWith(intset.Of(3, 4)))
	require.Equal([]int{1, 2, 3, 4}, s.Slice())
	require.False(s.UnionWith(intset.Of(2)))

	s.IntersectionWith(intset.Of(2, 3, 4, 9))
	require.Equal([]int{2, 3, 4}, s.Slice())

	s.DifferenceWith(intset.Of(3))
	require.Equal([]int{2, 4}, s.Slice())

	s.SymmetricDifferenceWith(intset.Of(4, 5))
	require.Equal([]int{2, 5}, s.Slice())

	require.True(s.Equals(intset.Of(2, 5)))
	require.False(s.Equals(intset.Of(2)))
	require.True(s.SubsetOf(intset.Of(1, 2, 5)))
	require.False(s.SubsetOf(intset.Of(2)))
}

func TestBulkSelfAliasing(t *testing.T) {
	require := require.New(t)

	s := intset.Of(1, 2)
	require.False(s.UnionWith(s))
	require.Equal(2, s.Len())

	s.IntersectionWith(s)
	require.Equal(2, s.Len())

	d := intset.Of(1, 2)
	d.DifferenceWith(d)
	require.True(d.IsEmpty())

	x := intset.Of(1, 2)
	x.SymmetricDifferenceWith(x)
	require.True(x.IsEmpty())
}

func TestAlgebraKeepsIntSetKind(t *testing.T) {
	require := require.New(t)

	out := sets.Difference[int](intset.Of(5, 1, 9), sets.Of(5))
	is, ok := out.(*intset.Set)
	require.True(ok)
	require.Equal([]int{1, 9}, is.Slice())
}
