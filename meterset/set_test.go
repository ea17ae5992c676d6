// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package meterset_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/luxfi/sets"
	"github.com/luxfi/sets/hashset"
	"github.com/luxfi/sets/meterset"
	"github.com/luxfi/sets/settest"
)

func TestConformance(t *testing.T) {
	settest.TestSuite(t, func() sets.SetLike[int] {
		s, err := meterset.New[int]("test", sets.New[int](0), prometheus.NewRegistry())
		require.NoError(t, err)
		return s
	})
}

func TestCountsAndSize(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	s, err := meterset.New[int]("luxset", sets.New[int](0), reg)
	require.NoError(err)

	require.True(s.Add(1))
	require.True(s.Add(2))
	require.False(s.Add(2))
	require.True(s.Remove(2))
	require.True(s.Contains(1))
	require.Equal(1, s.Len())

	expected := strings.NewReader(`
# HELP luxset_calls number of calls to the set
# TYPE luxset_calls counter
luxset_calls{method="add"} 3
luxset_calls{method="contains"} 1
luxset_calls{method="len"} 1
luxset_calls{method="remove"} 1
# HELP luxset_size number of elements currently in the set
# TYPE luxset_size gauge
luxset_size 1
`)
	require.NoError(testutil.GatherAndCompare(reg, expected))
}

func TestSizeSeededFromInner(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	_, err := meterset.New[int]("seeded", sets.Of(1, 2, 3), reg)
	require.NoError(err)

	expected := strings.NewReader(`
# HELP seeded_size number of elements currently in the set
# TYPE seeded_size gauge
seeded_size 3
`)
	require.NoError(testutil.GatherAndCompare(reg, expected, "seeded_size"))
}

func TestIterateCountsPerWalk(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	s, err := meterset.New[int]("m", sets.Of(1, 2, 3), reg)
	require.NoError(err)

	for range s.All() {
	}
	for range s.All() {
		break
	}

	expected := strings.NewReader(`
# HELP m_calls number of calls to the set
# TYPE m_calls counter
m_calls{method="iterate"} 2
`)
	require.NoError(testutil.GatherAndCompare(reg, expected, "m_calls"))
}

func TestClearResetsSize(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	s, err := meterset.New[int]("c", sets.Of(1, 2, 3), reg)
	require.NoError(err)

	s.Clear()

	expected := strings.NewReader(`
# HELP c_size number of elements currently in the set
# TYPE c_size gauge
c_size 0
`)
	require.NoError(testutil.GatherAndCompare(reg, expected, "c_size"))
}

func TestRegisterTwiceFails(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	_, err := meterset.New[int]("dup", sets.New[int](0), reg)
	require.NoError(err)

	_, err = meterset.New[int]("dup", sets.New[int](0), reg)
	require.Error(err)
}

func TestEmptyIsUnmetered(t *testing.T) {
	require := require.New(t)

	s, err := meterset.New[int]("e", hashset.New[int](0), prometheus.NewRegistry())
	require.NoError(err)

	fresh := s.Empty(4)
	require.IsType(hashset.Set[int]{}, fresh)
}

func TestAlgebraOverMeteredSet(t *testing.T) {
	require := require.New(t)

	reg := prometheus.NewRegistry()
	s, err := meterset.New[int]("a", sets.Of(1, 2), reg)
	require.NoError(err)

	out := sets.Union[int](s, sets.Of(3))
	res, ok := out.(*sets.Set[int])
	require.True(ok)
	require.Equal([]int{1, 2, 3}, res.Slice())
}
