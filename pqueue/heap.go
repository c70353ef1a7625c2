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

import "container/heap"

// HeapQueue is a Queue backed by an array binary min-heap.
type HeapQueue[E any] struct {
	h       entryHeap[E]
	present map[int64]struct{}
}

var _ Queue[int] = (*HeapQueue[int])(nil)

// NewHeapQueue constructs an empty HeapQueue.
func NewHeapQueue[E any]() *HeapQueue[E] {
	return &HeapQueue[E]{present: make(map[int64]struct{})}
}

func (q *HeapQueue[E]) Len() int      { return len(q.h) }
func (q *HeapQueue[E]) IsEmpty() bool { return len(q.h) == 0 }

func (q *HeapQueue[E]) Min() (x E, ok bool) {
	if len(q.h) == 0 {
		return x, false
	}
	return q.h[0].val, true
}

func (q *HeapQueue[E]) Insert(priority int64, x E) error {
	if _, ok := q.present[priority]; ok {
		return duplicate(priority)
	}
	q.present[priority] = struct{}{}
	heap.Push(&q.h, entry[E]{priority: priority, val: x})
	return nil
}

func (q *HeapQueue[E]) RemoveMin() (x E, ok bool) {
	if len(q.h) == 0 {
		return x, false
	}
	e := heap.Pop(&q.h).(entry[E])
	delete(q.present, e.priority)
	return e.val, true
}

// entryHeap implements heap.Interface.
type entryHeap[E any] []entry[E]

func (h entryHeap[E]) Len() int           { return len(h) }
func (h entryHeap[E]) Less(i, j int) bool { return h[i].priority < h[j].priority }
func (h entryHeap[E]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *entryHeap[E]) Push(x any) { *h = append(*h, x.(entry[E])) }

func (h *entryHeap[E]) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	var zero entry[E]
	old[n-1] = zero
	*h = old[:n-1]
	return e
}
