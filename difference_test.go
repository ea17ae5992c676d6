// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sets_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sets"
)

func TestDifferenceRemovesPerElement(t *testing.T) {
	require := require.New(t)

	out := sets.Difference[int](
		sets.FromSlice([]int{1, 3, 4, 5}),
		sets.FromSlice([]int{1, 2, 4, 6}),
	)
	require.Equal([]int{3, 5}, out.(*sets.Set[int]).Slice())
}

func TestDifferenceZeroArgsCopies(t *testing.T) {
	require := require.New(t)

	s := sets.Of(1, 2)
	out := sets.Difference[int](s)
	require.True(sets.Equal[int](s, out))

	out.Add(3)
	require.Equal(2, s.Len())
}

func TestDifferenceWithSelfIsEmpty(t *testing.T) {
	require := require.New(t)

	a := sets.Of(1, 2, 3)
	require.Zero(sets.Difference[int](a, a).Len())
	require.Equal(3, a.Len())
}

func TestDifferenceIntoAliasedClears(t *testing.T) {
	require := require.New(t)

	s := sets.Of(1, 2, 3)
	out := sets.DifferenceInto[int](s, s)
	require.Same(s, out)
	require.Zero(s.Len())
}

func TestDifferenceManyArguments(t *testing.T) {
	require := require.New(t)

	out := sets.Difference[int](
		sets.FromSlice([]int{0, 1, 2, 3, 4, 5}),
		sets.Of(1),
		sets.NewRange(4, 5, 1),
	)
	require.Equal([]int{0, 2, 3}, out.(*sets.Set[int]).Slice())
}

func TestSymmetricDifferenceFoldsOneArgumentAtATime(t *testing.T) {
	require := require.New(t)

	out := sets.SymmetricDifference[int](
		sets.FromSlice([]int{1, 2, 3}),
		sets.FromSlice([]int{3, 4, 5}),
		sets.FromSlice([]int{4, 5, 6}),
	)
	require.Equal([]int{1, 2, 6}, out.(*sets.Set[int]).Slice())
}

func TestSymmetricDifferenceDuplicatesToggleOnce(t *testing.T) {
	require := require.New(t)

	out := sets.SymmetricDifference[int](sets.Of(1), sets.FromSlice([]int{2, 2}))
	require.Equal([]int{1, 2}, out.(*sets.Set[int]).Slice())

	out = sets.SymmetricDifference[int](sets.Of(1, 2), sets.FromSlice([]int{2, 2}))
	require.Equal([]int{1}, out.(*sets.Set[int]).Slice())
}

func TestSymmetricDifferenceWithSelfIsEmpty(t *testing.T) {
	require := require.New(t)

	a := sets.Of(1, 2, 3)
	require.Zero(sets.SymmetricDifference[int](a, a).Len())
	require.Equal(3, a.Len())
}

func TestSymmetricDifferenceIntoAliasedClears(t *testing.T) {
	require := require.New(t)

	s := sets.Of(1, 2, 3)
	out := sets.SymmetricDifferenceInto[int](s, s)
	require.Same(s, out)
	require.Zero(s.Len())
}

func TestSymmetricDifferenceZeroArgsCopies(t *testing.T) {
	require := require.New(t)

	out := sets.SymmetricDifference[int](sets.FromSlice([]int{2, 1, 2}))
	require.Equal([]int{2, 1}, out.(*sets.Set[int]).Slice())
}
