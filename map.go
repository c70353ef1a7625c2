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

package avltree

import "github.com/ajwerner/avltree/internal/abstract"

// Map is an ordered map from K to V.
type Map[K, V any] struct {
	t abstract.Map[K, V, abstract.NoopAug[K], *abstract.NoopAug[K]]
}

// MakeMap returns an empty Map ordered by cmp.
func MakeMap[K, V any](cmp func(K, K) int, opts ...Option) *Map[K, V] {
	o := makeOptions(opts)
	return &Map[K, V]{
		t: abstract.MakeMap[K, V, abstract.NoopAug[K]](cmp, o.policy),
	}
}

// Upsert associates v with k, returning the previous value if k was
// present.
func (m *Map[K, V]) Upsert(k K, v V) (replaced V, ok bool) {
	_, replaced, ok = m.t.Upsert(k, v)
	return replaced, ok
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	_, v, ok := m.t.Get(k)
	return v, ok
}

// Delete removes k, returning its value.
func (m *Map[K, V]) Delete(k K) (V, bool) {
	_, v, ok := m.t.Delete(k)
	return v, ok
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.t.Len() }

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() (K, V, bool) { return m.t.Min() }

// Max returns the entry with the largest key.
func (m *Map[K, V]) Max() (K, V, bool) { return m.t.Max() }

// Height returns the height of the underlying tree, -1 when empty.
func (m *Map[K, V]) Height() int { return m.t.Height() }

// String lists the keys in order.
func (m *Map[K, V]) String() string { return m.t.String() }

// MapIterator iterates over a Map in key order.
type MapIterator[K, V any] struct {
	it abstract.Iterator[K, V, abstract.NoopAug[K], *abstract.NoopAug[K]]
}

// Iterator returns a new, unpositioned iterator. It must not be used after
// the map is modified.
func (m *Map[K, V]) Iterator() MapIterator[K, V] {
	return MapIterator[K, V]{m.t.MakeIter()}
}

func (it *MapIterator[K, V]) First()      { it.it.First() }
func (it *MapIterator[K, V]) Last()       { it.it.Last() }
func (it *MapIterator[K, V]) Next()       { it.it.Next() }
func (it *MapIterator[K, V]) Prev()       { it.it.Prev() }
func (it *MapIterator[K, V]) SeekGE(k K)  { it.it.SeekGE(k) }
func (it *MapIterator[K, V]) SeekLT(k K)  { it.it.SeekLT(k) }
func (it *MapIterator[K, V]) Valid() bool { return it.it.Valid() }
func (it *MapIterator[K, V]) Cur() K      { return it.it.Key() }
func (it *MapIterator[K, V]) Value() V    { return it.it.Value() }
