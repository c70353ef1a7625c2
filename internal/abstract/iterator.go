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

package abstract

// Iterator is responsible for search and traversal within a Map.
type Iterator[K, V, A any, AP Aug[K, A]] struct {
	r *Map[K, V, A, AP]
	h handle
}

func (i *Iterator[K, V, A, AP]) lowLevel() *LowLevelIterator[K, V, A, AP] {
	return (*LowLevelIterator[K, V, A, AP])(i)
}

// Reset leaves the iterator unpositioned.
func (i *Iterator[K, V, A, AP]) Reset() {
	i.h = 0
}

// SeekGE seeks to the first key greater-than or equal to the provided
// key.
func (i *Iterator[K, V, A, AP]) SeekGE(key K) {
	i.h = i.r.seekGE(key)
}

// SeekLT seeks to the first key less-than the provided key.
func (i *Iterator[K, V, A, AP]) SeekLT(key K) {
	h, c := i.r.locate(key)
	if h != 0 && c <= 0 {
		h = i.r.predecessor(h)
	}
	i.h = h
}

// First seeks to the first key in the Map.
func (i *Iterator[K, V, A, AP]) First() {
	i.Reset()
	if i.r.root != 0 {
		i.h = i.r.leftmost(i.r.root)
	}
}

// Last seeks to the last key in the Map.
func (i *Iterator[K, V, A, AP]) Last() {
	i.Reset()
	if i.r.root != 0 {
		i.h = i.r.rightmost(i.r.root)
	}
}

// Next positions the Iterator to the key immediately following
// its current position.
func (i *Iterator[K, V, A, AP]) Next() {
	if i.h == 0 {
		return
	}
	i.h = i.r.successor(i.h)
}

// Prev positions the Iterator to the key immediately preceding
// its current position.
func (i *Iterator[K, V, A, AP]) Prev() {
	if i.h == 0 {
		return
	}
	i.h = i.r.predecessor(i.h)
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[K, V, A, AP]) Valid() bool {
	return i.h != 0
}

// Key returns the key at the Iterator's current position. It is illegal
// to call Key if the Iterator is not valid.
func (i *Iterator[K, V, A, AP]) Key() K {
	return i.r.n(i.h).key
}

// Value returns the value at the Iterator's current position. It is illegal
// to call Value if the Iterator is not valid.
func (i *Iterator[K, V, A, AP]) Value() V {
	return i.r.n(i.h).value
}
