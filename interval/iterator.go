// Copyright 2018 The Cockroach Authors.
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

package interval

import "github.com/ajwerner/avltree/internal/abstract"

// Iterator traverses a Set in key order, either over every interval or
// over only those overlapping a query interval.
type Iterator[I, K any] struct {
	it abstract.Iterator[I, struct{}, aug[I, K], *aug[I, K]]

	// bounds is the query of the current overlap scan, if set.
	bounds I
	set    bool
}

// An overlap scan visits the intervals overlapping the query in order of
// their keys. It relies on two properties of the tree:
//  1. intervals are sorted by key, so once an interval's key lies beyond
//     the query's upper bound, no later interval can overlap.
//  2. every node holds the largest upper bound in its subtree, so a
//     subtree whose bound does not reach past the query's key holds no
//     overlapping interval and is skipped.
//
// Descending into a subtree only when its bound reaches past the query's
// key guarantees the descent ends either on an overlapping interval or on
// an interval whose key lies beyond the query, so each step of the scan
// costs O(log n).

func (i *Iterator[I, K]) lowLevel() *abstract.LowLevelIterator[I, struct{}, aug[I, K], *aug[I, K]] {
	return abstract.LowLevel(&i.it)
}

// Reset leaves the iterator unpositioned and clears any overlap scan.
func (i *Iterator[I, K]) Reset() {
	var zero I
	i.bounds, i.set = zero, false
	i.it.Reset()
}

// First positions the iterator at the first interval.
func (i *Iterator[I, K]) First() {
	i.Reset()
	i.it.First()
}

// Next positions the iterator at the following interval.
func (i *Iterator[I, K]) Next() { i.it.Next() }

// Valid returns whether the iterator is positioned at an interval.
func (i *Iterator[I, K]) Valid() bool { return i.it.Valid() }

// Cur returns the interval at the current position. It is illegal to call
// Cur if the iterator is not valid.
func (i *Iterator[I, K]) Cur() I { return i.it.Key() }

// FirstOverlap positions the iterator at the first interval overlapping
// bounds.
func (i *Iterator[I, K]) FirstOverlap(bounds I) {
	i.Reset()
	ll := i.lowLevel()
	ll.Root()
	if !i.it.Valid() {
		return
	}
	i.bounds, i.set = bounds, true
	u := updaterOf[I, K](ll.Config())
	if !ll.Aug().contains(u.cmp, u.key(bounds)) {
		i.Reset()
		return
	}
	i.descend(u)
}

// NextOverlap positions the iterator at the interval following the
// current one which overlaps the bounds passed to FirstOverlap.
func (i *Iterator[I, K]) NextOverlap() {
	if !i.Valid() {
		return
	}
	if !i.set {
		// Invalid. Mixed overlap scan with non-overlap scan.
		i.Reset()
		return
	}
	ll := i.lowLevel()
	u := updaterOf[I, K](ll.Config())
	k := u.key(i.bounds)
	if ll.HasRight() && ll.Right().contains(u.cmp, k) {
		ll.DescendRight()
		i.descend(u)
		return
	}
	for {
		// Climb to the nearest ancestor whose left subtree holds the current
		// position.
		for !ll.IsLeftChild() {
			ll.Ascend()
			if !i.it.Valid() {
				i.Reset()
				return
			}
		}
		ll.Ascend()
		if done, found := i.check(u); done || found {
			return
		}
		if ll.HasRight() && ll.Right().contains(u.cmp, k) {
			ll.DescendRight()
			i.descend(u)
			return
		}
	}
}

// descend finds the first overlapping interval in the subtree rooted at the
// current position. The subtree's bound must contain the query's key.
func (i *Iterator[I, K]) descend(u *updater[I, K]) {
	ll := i.lowLevel()
	k := u.key(i.bounds)
	for {
		if ll.HasLeft() && ll.Left().contains(u.cmp, k) {
			ll.DescendLeft()
			continue
		}
		if done, found := i.check(u); done || found {
			return
		}
		if !ll.HasRight() {
			i.Reset()
			return
		}
		ll.DescendRight()
	}
}

// check examines the interval at the current position. done is true if the
// scan is past every possible overlap, in which case the iterator has been
// reset.
func (i *Iterator[I, K]) check(u *updater[I, K]) (done, found bool) {
	cur := i.Cur()
	if !u.upperBound(i.bounds).contains(u.cmp, u.key(cur)) {
		i.Reset()
		return true, false
	}
	return false, u.upperBound(cur).contains(u.cmp, u.key(i.bounds))
}
