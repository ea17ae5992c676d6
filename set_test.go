// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sets_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sets"
	"github.com/luxfi/sets/settest"
)

func TestSetConformance(t *testing.T) {
	settest.TestSuite(t, func() sets.SetLike[int] {
		return sets.New[int](0)
	})
}

func TestSetInsertionOrder(t *testing.T) {
	require := require.New(t)

	s := sets.Of(3, 1, 2)
	require.True(s.Add(4))
	require.False(s.Add(1))
	require.Equal([]int{3, 1, 2, 4}, s.Slice())

	require.True(s.Remove(1))
	require.Equal([]int{3, 2, 4}, s.Slice())

	// a removed element re-enters at the tail
	require.True(s.Add(1))
	require.Equal([]int{3, 2, 4, 1}, s.Slice())
}

func TestSetIterationOrder(t *testing.T) {
	require := require.New(t)

	s := sets.Of("c", "a", "b")

	var got []string
	for e := range s.All() {
		got = append(got, e)
	}
	require.Equal([]string{"c", "a", "b"}, got)
}

func TestSetEmptyKeepsKind(t *testing.T) {
	require := require.New(t)

	s := sets.Of("a", "b")
	fresh := s.Empty(4)
	require.Zero(fresh.Len())
	require.IsType(&sets.Set[string]{}, fresh)

	require.True(fresh.Add("c"))
	require.False(s.Contains("c"))
}

func TestSetClearThenReuse(t *testing.T) {
	require := require.New(t)

	s := sets.Of(1, 2, 3)
	s.Clear()
	require.Zero(s.Len())

	require.True(s.Add(2))
	require.True(s.Add(1))
	require.Equal([]int{2, 1}, s.Slice())
}
