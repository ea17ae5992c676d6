// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package settest provides a conformance suite run against every set-like
// collection implementation.
package settest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/sets"
)

// TestSuite runs a comprehensive test suite against any SetLike
// implementation. This allows all implementations to be tested
// consistently, including the contract that removing the element
// currently being visited never corrupts iteration.
func TestSuite(t *testing.T, newSet func() sets.SetLike[int]) {
	t.Run("AddReportsNew", func(t *testing.T) {
		testAddReportsNew(t, newSet())
	})
	t.Run("RemoveReportsPresent", func(t *testing.T) {
		testRemoveReportsPresent(t, newSet())
	})
	t.Run("Contains", func(t *testing.T) {
		testContains(t, newSet())
	})
	t.Run("Len", func(t *testing.T) {
		testLen(t, newSet())
	})
	t.Run("Clear", func(t *testing.T) {
		testClear(t, newSet())
	})
	t.Run("IterateAll", func(t *testing.T) {
		testIterateAll(t, newSet())
	})
	t.Run("IterateEarlyStop", func(t *testing.T) {
		testIterateEarlyStop(t, newSet())
	})
	t.Run("RemoveDuringIteration", func(t *testing.T) {
		testRemoveDuringIteration(t, newSet())
	})
	t.Run("EmptyConstructor", func(t *testing.T) {
		testEmptyConstructor(t, newSet())
	})
	t.Run("Grow", func(t *testing.T) {
		testGrow(t, newSet())
	})
}

// testAddReportsNew tests that Add reports insertion exactly once
func testAddReportsNew(t *testing.T, s sets.SetLike[int]) {
	require := require.New(t)

	require.True(s.Add(1))
	require.False(s.Add(1))
	require.True(s.Add(2))
	require.Equal(2, s.Len())
}

// testRemoveReportsPresent tests Remove on present and absent elements
func testRemoveReportsPresent(t *testing.T, s sets.SetLike[int]) {
	require := require.New(t)

	require.False(s.Remove(7))

	require.True(s.Add(7))
	require.True(s.Remove(7))
	require.False(s.Remove(7))
	require.Zero(s.Len())
}

// testContains tests membership before and after mutation
func testContains(t *testing.T, s sets.SetLike[int]) {
	require := require.New(t)

	require.False(s.Contains(3))

	require.True(s.Add(3))
	require.True(s.Contains(3))
	require.False(s.Contains(4))

	require.True(s.Remove(3))
	require.False(s.Contains(3))
}

// testLen tests that Len tracks growth and shrinkage
func testLen(t *testing.T, s sets.SetLike[int]) {
	require := require.New(t)

	require.Zero(s.Len())
	for i := 0; i < 5; i++ {
		require.True(s.Add(i))
		require.Equal(i+1, s.Len())
	}
	for i := 4; i >= 0; i-- {
		require.True(s.Remove(i))
		require.Equal(i, s.Len())
	}
}

// testClear tests that Clear empties the set and leaves it usable
func testClear(t *testing.T, s sets.SetLike[int]) {
	require := require.New(t)

	for i := 0; i < 5; i++ {
		require.True(s.Add(i))
	}

	s.Clear()
	require.Zero(s.Len())
	require.False(s.Contains(0))

	require.True(s.Add(10))
	require.True(s.Contains(10))
	require.Equal(1, s.Len())
}

// testIterateAll tests that All yields each element exactly once
func testIterateAll(t *testing.T, s sets.SetLike[int]) {
	require := require.New(t)

	elems := []int{5, 7, 9, 11}
	for _, e := range elems {
		require.True(s.Add(e))
	}

	var got []int
	for e := range s.All() {
		got = append(got, e)
	}
	require.ElementsMatch(elems, got)
}

// testIterateEarlyStop tests that breaking out of iteration stops it
func testIterateEarlyStop(t *testing.T, s sets.SetLike[int]) {
	require := require.New(t)

	for i := 0; i < 10; i++ {
		require.True(s.Add(i))
	}

	count := 0
	for range s.All() {
		count++
		break
	}
	require.Equal(1, count)
}

// testRemoveDuringIteration tests that removing the element currently
// being visited neither corrupts nor truncates the iteration
func testRemoveDuringIteration(t *testing.T, s sets.SetLike[int]) {
	require := require.New(t)

	const n = 10
	for i := 0; i < n; i++ {
		require.True(s.Add(i))
	}

	seen := make(map[int]bool, n)
	for e := range s.All() {
		require.False(seen[e])
		seen[e] = true
		require.True(s.Remove(e))
	}

	require.Len(seen, n)
	require.Zero(s.Len())
}

// testEmptyConstructor tests that Empty builds an independent empty set
func testEmptyConstructor(t *testing.T, s sets.SetLike[int]) {
	require := require.New(t)

	e, ok := s.(sets.Emptier[int])
	if !ok {
		t.Skip("set does not construct empties")
	}

	require.True(s.Add(1))

	fresh := e.Empty(8)
	require.Zero(fresh.Len())

	require.True(fresh.Add(2))
	require.True(fresh.Contains(2))
	require.False(fresh.Contains(1))
	require.False(s.Contains(2))
	require.Equal(1, s.Len())
}

// testGrow tests that reserving capacity never changes contents
func testGrow(t *testing.T, s sets.SetLike[int]) {
	require := require.New(t)

	g, ok := s.(sets.Grower)
	if !ok {
		t.Skip("set does not reserve capacity")
	}

	require.True(s.Add(1))
	g.Grow(64)
	require.True(s.Contains(1))
	require.True(s.Add(2))
	require.Equal(2, s.Len())
}
