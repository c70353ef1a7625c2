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

package interval_test

import (
	"cmp"
	"fmt"

	"github.com/ajwerner/avltree/interval"
)

type pair[T cmp.Ordered] [2]T

func (p pair[T]) compare(o pair[T]) int {
	if c := cmp.Compare(p.first(), o.first()); c != 0 {
		return c
	}
	return cmp.Compare(p.second(), o.second())
}

func (p pair[T]) first() T  { return p[0] }
func (p pair[T]) second() T { return p[1] }

func Example() {
	m := interval.MakeSet(
		cmp.Compare[int],
		pair[int].compare,
		pair[int].first,
		pair[int].second,
		nil,
	)
	for _, p := range []pair[int]{
		{1, 2}, {2, 3}, {1, 5}, {0, 6}, {2, 7},
	} {
		m.Upsert(p)
	}
	it := m.Iterator()
	for it.FirstOverlap(pair[int]{4, 5}); it.Valid(); it.NextOverlap() {
		fmt.Println(it.Cur())
	}
	// Output:
	// [0 6]
	// [1 5]
	// [2 7]
}

// Intervals whose end precedes their key are points: they cover only the
// key and overlap any query containing it.
func Example_points() {
	m := interval.MakeSet(
		cmp.Compare[int],
		pair[int].compare,
		pair[int].first,
		pair[int].second,
		func(p pair[int]) bool { return p[1] >= p[0] },
	)
	for _, p := range []pair[int]{
		{5, 0}, {1, 5}, {5, 8}, {6, 0},
	} {
		m.Upsert(p)
	}
	it := m.Iterator()
	for it.FirstOverlap(pair[int]{5, 0}); it.Valid(); it.NextOverlap() {
		fmt.Println(it.Cur())
	}
	fmt.Println("--")
	for it.FirstOverlap(pair[int]{4, 6}); it.Valid(); it.NextOverlap() {
		fmt.Println(it.Cur())
	}
	// Output:
	// [5 0]
	// [5 8]
	// --
	// [1 5]
	// [5 0]
	// [5 8]
}

func Example_delete() {
	m := interval.MakeSet(
		cmp.Compare[int],
		pair[int].compare,
		pair[int].first,
		pair[int].second,
		nil,
	)
	for _, p := range []pair[int]{
		{1, 2}, {2, 3}, {1, 5}, {0, 6}, {2, 7},
	} {
		m.Upsert(p)
	}
	removed, ok := m.Delete(pair[int]{1, 5})
	fmt.Println(removed, ok, m.Len())
	_, ok = m.Delete(pair[int]{1, 5})
	fmt.Println(ok)
	it := m.Iterator()
	for it.FirstOverlap(pair[int]{4, 5}); it.Valid(); it.NextOverlap() {
		fmt.Println(it.Cur())
	}
	// Output:
	// [1 5] true 4
	// false
	// [0 6]
	// [2 7]
}
