// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package meterset wraps a set-like collection and records how often each
// operation is called and how many elements the set currently holds.
package meterset

import (
	"iter"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/luxfi/sets"
)

const methodLabel = "method"

var (
	_ sets.SetLike[int]     = (*Set[int])(nil)
	_ sets.FastChecker[int] = (*Set[int])(nil)
	_ sets.Emptier[int]     = (*Set[int])(nil)
	_ sets.Grower           = (*Set[int])(nil)

	methodLabels = []string{methodLabel}
	addLabel     = prometheus.Labels{
		methodLabel: "add",
	}
	removeLabel = prometheus.Labels{
		methodLabel: "remove",
	}
	containsLabel = prometheus.Labels{
		methodLabel: "contains",
	}
	lenLabel = prometheus.Labels{
		methodLabel: "len",
	}
	clearLabel = prometheus.Labels{
		methodLabel: "clear",
	}
	iterateLabel = prometheus.Labels{
		methodLabel: "iterate",
	}
	emptyLabel = prometheus.Labels{
		methodLabel: "empty",
	}
	growLabel = prometheus.Labels{
		methodLabel: "grow",
	}
)

// Set tracks how many times each operation runs against the inner set and
// keeps a gauge of its current size.
type Set[E comparable] struct {
	inner sets.SetLike[E]

	calls *prometheus.CounterVec
	size  prometheus.Gauge
}

// New returns a new set with added metrics, registered under namespace
func New[E comparable](
	namespace string,
	inner sets.SetLike[E],
	reg prometheus.Registerer,
) (*Set[E], error) {
	meterSet := &Set[E]{
		inner: inner,
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calls",
				Help:      "number of calls to the set",
			},
			methodLabels,
		),
		size: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "size",
				Help:      "number of elements currently in the set",
			},
		),
	}
	if err := reg.Register(meterSet.calls); err != nil {
		return nil, err
	}
	if err := reg.Register(meterSet.size); err != nil {
		return nil, err
	}
	meterSet.size.Set(float64(inner.Len()))
	return meterSet, nil
}

// Add implements the sets.SetLike interface
func (s *Set[E]) Add(elt E) bool {
	added := s.inner.Add(elt)

	s.calls.With(addLabel).Inc()
	if added {
		s.size.Inc()
	}
	return added
}

// Remove implements the sets.SetLike interface
func (s *Set[E]) Remove(elt E) bool {
	removed := s.inner.Remove(elt)

	s.calls.With(removeLabel).Inc()
	if removed {
		s.size.Dec()
	}
	return removed
}

// Contains returns true if the element is in the set
func (s *Set[E]) Contains(elt E) bool {
	has := s.inner.Contains(elt)

	s.calls.With(containsLabel).Inc()
	return has
}

// FastContains implements the sets.FastChecker interface by reporting the
// inner set's answer.
func (s *Set[E]) FastContains() bool {
	return sets.HasFastContains[E](s.inner)
}

// Len returns the number of elements in the set
func (s *Set[E]) Len() int {
	n := s.inner.Len()

	s.calls.With(lenLabel).Inc()
	return n
}

// Clear removes all elements from the set
func (s *Set[E]) Clear() {
	s.inner.Clear()

	s.calls.With(clearLabel).Inc()
	s.size.Set(0)
}

// All implements the sets.Collection interface. One iterate call is
// counted per walk, not per element.
func (s *Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		s.calls.With(iterateLabel).Inc()
		for e := range s.inner.All() {
			if !yield(e) {
				return
			}
		}
	}
}

// Empty implements the sets.Emptier interface. The result is an empty set
// of the inner kind without metrics; metering stays attached to the set
// it was constructed for.
func (s *Set[E]) Empty(sizeHint int) sets.SetLike[E] {
	s.calls.With(emptyLabel).Inc()
	if e, ok := s.inner.(sets.Emptier[E]); ok {
		return e.Empty(sizeHint)
	}
	return sets.New[E](sizeHint)
}

// Grow implements the sets.Grower interface, forwarding to the inner set
// when it can reserve.
func (s *Set[E]) Grow(n int) {
	s.calls.With(growLabel).Inc()
	if g, ok := s.inner.(sets.Grower); ok {
		g.Grow(n)
	}
}
