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

package pqueue

import (
	"cmp"

	"github.com/ajwerner/avltree"
)

// TreeQueue is a Queue backed by an ordered set of (priority, element)
// pairs ordered by priority alone.
type TreeQueue[E any] struct {
	set *avltree.Set[entry[E]]
}

var _ Queue[int] = (*TreeQueue[int])(nil)

// NewTreeQueue constructs an empty TreeQueue. The options configure the
// underlying set.
func NewTreeQueue[E any](opts ...avltree.Option) *TreeQueue[E] {
	return &TreeQueue[E]{
		set: avltree.NewSet(func(a, b entry[E]) int {
			return cmp.Compare(a.priority, b.priority)
		}, opts...),
	}
}

func (q *TreeQueue[E]) Len() int      { return q.set.Len() }
func (q *TreeQueue[E]) IsEmpty() bool { return q.set.IsEmpty() }

// Height returns the height of the underlying tree.
func (q *TreeQueue[E]) Height() int { return q.set.Height() }

func (q *TreeQueue[E]) Min() (x E, ok bool) {
	e, ok := q.set.Min()
	return e.val, ok
}

func (q *TreeQueue[E]) Insert(priority int64, x E) error {
	if !q.set.Add(entry[E]{priority: priority, val: x}) {
		return duplicate(priority)
	}
	return nil
}

func (q *TreeQueue[E]) RemoveMin() (x E, ok bool) {
	e, ok := q.set.Min()
	if !ok {
		return x, false
	}
	q.set.Remove(e)
	return e.val, true
}
