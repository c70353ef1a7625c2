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

// Package avltree provides ordered sets and maps backed by a height-balanced
// (AVL) binary search tree. Add, Remove, Find, Min and Max run in O(log n).
//
// The collections are not safe for concurrent use. Callers sharing one
// across goroutines must guard every call with a lock.
package avltree

import (
	"github.com/ajwerner/avltree/internal/abstract"
)

// Set is an ordered set of unique elements.
type Set[T any] struct {
	t abstract.Map[T, struct{}, abstract.NoopAug[T], *abstract.NoopAug[T]]
}

// NewSet returns an empty Set ordered by cmp.
func NewSet[T any](cmp func(T, T) int, opts ...Option) *Set[T] {
	o := makeOptions(opts)
	return &Set[T]{
		t: abstract.MakeMap[T, struct{}, abstract.NoopAug[T]](cmp, o.policy),
	}
}

// Len returns the number of elements in the set.
func (s *Set[T]) Len() int { return s.t.Len() }

// IsEmpty returns true if the set holds no elements.
func (s *Set[T]) IsEmpty() bool { return s.t.Len() == 0 }

// Height returns the height of the underlying tree, -1 when empty.
func (s *Set[T]) Height() int { return s.t.Height() }

// Add inserts v. It returns false, leaving the set unchanged, if an equal
// element is already present.
func (s *Set[T]) Add(v T) (added bool) {
	return s.t.Insert(v, struct{}{})
}

// Remove removes the element equal to v and returns it.
func (s *Set[T]) Remove(v T) (removed T, ok bool) {
	removed, _, ok = s.t.Delete(v)
	return removed, ok
}

// Find returns the smallest element greater than or equal to v.
func (s *Set[T]) Find(v T) (T, bool) {
	k, _, ok := s.t.SeekGE(v)
	return k, ok
}

// Contains returns true if an element equal to v is in the set.
func (s *Set[T]) Contains(v T) bool {
	_, _, ok := s.t.Get(v)
	return ok
}

// Min returns the smallest element.
func (s *Set[T]) Min() (T, bool) {
	k, _, ok := s.t.Min()
	return k, ok
}

// Max returns the largest element.
func (s *Set[T]) Max() (T, bool) {
	k, _, ok := s.t.Max()
	return k, ok
}

// Clone returns an independent copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{t: s.t.Clone()}
}

// Reset removes all elements.
func (s *Set[T]) Reset() { s.t.Reset() }

// String lists the elements in order, e.g. "[1, 2, 3]".
func (s *Set[T]) String() string { return s.t.String() }

// SetIterator iterates over a Set in order.
type SetIterator[T any] struct {
	it abstract.Iterator[T, struct{}, abstract.NoopAug[T], *abstract.NoopAug[T]]
}

// Iterator returns a new, unpositioned iterator. It must not be used after
// the set is modified.
func (s *Set[T]) Iterator() SetIterator[T] {
	return SetIterator[T]{s.t.MakeIter()}
}

func (it *SetIterator[T]) First()      { it.it.First() }
func (it *SetIterator[T]) Last()       { it.it.Last() }
func (it *SetIterator[T]) Next()       { it.it.Next() }
func (it *SetIterator[T]) Prev()       { it.it.Prev() }
func (it *SetIterator[T]) SeekGE(v T)  { it.it.SeekGE(v) }
func (it *SetIterator[T]) SeekLT(v T)  { it.it.SeekLT(v) }
func (it *SetIterator[T]) Valid() bool { return it.it.Valid() }
func (it *SetIterator[T]) Cur() T      { return it.it.Key() }
