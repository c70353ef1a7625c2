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

import "slices"

// handle addresses a node in an arena. The zero handle is never allocated
// and stands for an absent node.
type handle uint32

// arena owns every node of a tree. Nodes refer to each other by handle, so
// parent back-references do not form ownership cycles. Released slots are
// recycled through the free list.
//
// Pointers returned by at are invalidated by alloc.
type arena[K, V, A any] struct {
	nodes []node[K, V, A]
	free  []handle
}

func (a *arena[K, V, A]) at(h handle) *node[K, V, A] {
	return &a.nodes[h]
}

func (a *arena[K, V, A]) alloc(k K, v V) handle {
	if len(a.nodes) == 0 {
		// Reserve slot 0 for the absent handle.
		a.nodes = append(a.nodes, node[K, V, A]{})
	}
	var h handle
	if n := len(a.free); n > 0 {
		h = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		h = handle(len(a.nodes))
		a.nodes = append(a.nodes, node[K, V, A]{})
	}
	n := &a.nodes[h]
	n.key = k
	n.value = v
	return h
}

// release clears the node so the arena does not retain its key or value.
func (a *arena[K, V, A]) release(h handle) {
	a.nodes[h] = node[K, V, A]{}
	a.free = append(a.free, h)
}

// live returns the number of allocated nodes.
func (a *arena[K, V, A]) live() int {
	if len(a.nodes) == 0 {
		return 0
	}
	return len(a.nodes) - 1 - len(a.free)
}

func (a *arena[K, V, A]) reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:0]
	a.free = a.free[:0]
}

func (a *arena[K, V, A]) clone() arena[K, V, A] {
	return arena[K, V, A]{
		nodes: slices.Clone(a.nodes),
		free:  slices.Clone(a.free),
	}
}
