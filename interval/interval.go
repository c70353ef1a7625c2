// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package interval provides an ordered set of intervals which supports
// efficient enumeration of the members overlapping a query interval.
//
// Intervals are half-open: [key, end). An interval for which hasEnd returns
// false is the single point key.
package interval

import "github.com/ajwerner/avltree/internal/abstract"

// Cmp is a comparison function: negative if a < b, zero if equal, positive
// if a > b.
type Cmp[K any] func(a, b K) int

// Set is an ordered set of intervals. Intervals are ordered by key, then by
// icmp.
type Set[I, K any] struct {
	t abstract.Map[I, struct{}, aug[I, K], *aug[I, K]]
}

// MakeSet constructs a new Set. key and end extract the bounds of an
// interval and cmp orders them. icmp breaks ties between intervals with
// equal keys; intervals it reports as equal are the same member of the Set.
// hasEnd may be nil, in which case every interval has an end.
func MakeSet[I, K any](
	cmp func(K, K) int,
	icmp func(I, I) int,
	key, end func(I) K,
	hasEnd func(I) bool,
) *Set[I, K] {
	u := &updater[I, K]{
		key:    key,
		end:    end,
		cmp:    cmp,
		hasEnd: hasEnd,
	}
	order := func(a, b I) int {
		if c := cmp(key(a), key(b)); c != 0 {
			return c
		}
		return icmp(a, b)
	}
	return &Set[I, K]{
		t: abstract.MakeMapWithAux[I, struct{}, aug[I, K]](order, abstract.AVL, u),
	}
}

// Upsert adds the interval to the set, replacing an equal one if present.
func (s *Set[I, K]) Upsert(item I) (replaced I, ok bool) {
	replaced, _, ok = s.t.Upsert(item, struct{}{})
	return replaced, ok
}

// Delete removes the interval equal to item, if present.
func (s *Set[I, K]) Delete(item I) (removed I, ok bool) {
	removed, _, ok = s.t.Delete(item)
	return removed, ok
}

// Len returns the number of intervals in the set.
func (s *Set[I, K]) Len() int { return s.t.Len() }

// Iterator returns a new, unpositioned Iterator over the set. It must not
// be used after the set is modified.
func (s *Set[I, K]) Iterator() Iterator[I, K] {
	return Iterator[I, K]{it: s.t.MakeIter()}
}
