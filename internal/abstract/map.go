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

import (
	"fmt"
	"strings"
)

// Map is an implementation of an augmented, height-balanced binary search
// tree. Keys are unique under the comparison function.
//
// Map is not safe for concurrent use. Callers sharing a Map across
// goroutines must hold a lock for the duration of every mutating call.
type Map[K, V, A any, AP Aug[K, A]] struct {
	cfg    config[K, V, A, AP]
	arena  arena[K, V, A]
	root   handle
	length int
}

// MakeMap constructs a new Map with the given comparison function and
// rebalancing policy.
func MakeMap[K, V, A any, AP Aug[K, A]](cmp func(K, K) int, policy Policy) Map[K, V, A, AP] {
	return MakeMapWithAux[K, V, A, AP](cmp, policy, nil)
}

// MakeMapWithAux is like MakeMap but attaches auxiliary data to the Map's
// Config for use by the augmentation.
func MakeMapWithAux[K, V, A any, AP Aug[K, A]](
	cmp func(K, K) int, policy Policy, aux any,
) Map[K, V, A, AP] {
	return Map[K, V, A, AP]{
		cfg: makeConfig[K, V, A, AP](cmp, policy, aux),
	}
}

// Reset removes all items from the Map. The arena's memory is retained
// for reuse.
func (t *Map[K, V, A, AP]) Reset() {
	t.arena.reset()
	t.root = 0
	t.length = 0
}

// Clone returns a deep copy of the Map. The copy shares no state with the
// receiver.
func (t *Map[K, V, A, AP]) Clone() Map[K, V, A, AP] {
	c := *t
	c.arena = t.arena.clone()
	return c
}

// Len returns the number of items currently in the Map.
func (t *Map[K, V, A, AP]) Len() int {
	return t.length
}

// Height returns the height of the tree: -1 when empty, 0 for a single
// item.
func (t *Map[K, V, A, AP]) Height() int {
	return t.heightOf(t.root)
}

// locate searches for k starting at the root. It returns the node holding k
// and 0, or, if k is absent, the last node visited together with the
// comparison of k against that node's key. Returns (0, 0) when the tree is
// empty.
func (t *Map[K, V, A, AP]) locate(k K) (h handle, c int) {
	for cur := t.root; cur != 0; {
		h = cur
		n := t.n(cur)
		c = t.cfg.cmp(k, n.key)
		switch {
		case c == 0:
			return h, 0
		case c < 0:
			cur = n.left
		default:
			cur = n.right
		}
	}
	return h, c
}

// Get returns the item stored under a key equal to k.
func (t *Map[K, V, A, AP]) Get(k K) (key K, v V, found bool) {
	h, c := t.locate(k)
	if h == 0 || c != 0 {
		return key, v, false
	}
	n := t.n(h)
	return n.key, n.value, true
}

// SeekGE returns the item with the smallest key greater than or equal to k.
func (t *Map[K, V, A, AP]) SeekGE(k K) (key K, v V, found bool) {
	h := t.seekGE(k)
	if h == 0 {
		return key, v, false
	}
	n := t.n(h)
	return n.key, n.value, true
}

// SeekLE returns the item with the largest key less than or equal to k.
func (t *Map[K, V, A, AP]) SeekLE(k K) (key K, v V, found bool) {
	h := t.seekLE(k)
	if h == 0 {
		return key, v, false
	}
	n := t.n(h)
	return n.key, n.value, true
}

func (t *Map[K, V, A, AP]) seekGE(k K) handle {
	h, c := t.locate(k)
	if h == 0 || c <= 0 {
		// Either found, or k would become h's left child, which makes h the
		// next larger key.
		return h
	}
	return t.successor(h)
}

func (t *Map[K, V, A, AP]) seekLE(k K) handle {
	h, c := t.locate(k)
	if h == 0 || c >= 0 {
		return h
	}
	return t.predecessor(h)
}

// Min returns the item with the smallest key.
func (t *Map[K, V, A, AP]) Min() (key K, v V, found bool) {
	if t.root == 0 {
		return key, v, false
	}
	n := t.n(t.leftmost(t.root))
	return n.key, n.value, true
}

// Max returns the item with the largest key.
func (t *Map[K, V, A, AP]) Max() (key K, v V, found bool) {
	if t.root == 0 {
		return key, v, false
	}
	n := t.n(t.rightmost(t.root))
	return n.key, n.value, true
}

// Insert adds the given item to the tree unless an item with an equal key is
// already present, in which case the tree is left untouched and false is
// returned.
func (t *Map[K, V, A, AP]) Insert(k K, v V) (inserted bool) {
	_, _, replaced := t.insert(k, v, false /* replace */)
	return !replaced
}

// Upsert adds the given item to the tree. If an item in the tree already
// equals the given one, it is replaced with the new item.
func (t *Map[K, V, A, AP]) Upsert(k K, v V) (replacedK K, replacedV V, replaced bool) {
	return t.insert(k, v, true /* replace */)
}

func (t *Map[K, V, A, AP]) insert(k K, v V, replace bool) (oldK K, oldV V, found bool) {
	if t.root == 0 {
		t.root = t.arena.alloc(k, v)
		t.updateHeight(t.root, false /* recursive */)
		t.length++
		return oldK, oldV, false
	}
	p, c := t.locate(k)
	if c == 0 {
		n := t.n(p)
		oldK, oldV = n.key, n.value
		if replace {
			// The keys compare equal so the ordering holds, but the
			// augmentation may derive from more than the ordering.
			n.key, n.value = k, v
			t.updateHeight(p, true /* recursive */)
		}
		return oldK, oldV, true
	}
	h := t.arena.alloc(k, v)
	t.n(h).parent = p
	if c < 0 {
		t.n(p).left = h
	} else {
		t.n(p).right = h
	}
	t.updateHeight(h, false /* recursive */)
	t.length++
	t.cfg.retrace(t, p)
	return oldK, oldV, false
}

// Delete removes an item equal to the passed in item from the tree.
func (t *Map[K, V, A, AP]) Delete(k K) (removedK K, v V, found bool) {
	h, c := t.locate(k)
	if h == 0 || c != 0 {
		return removedK, v, false
	}
	n := t.n(h)
	removedK, v = n.key, n.value
	if n.left != 0 && n.right != 0 {
		// Move the next item into this node and detach the node which held
		// it instead. The successor has no left child.
		next := t.successor(h)
		nn := t.n(next)
		n.key, n.value = nn.key, nn.value
		h = next
	}
	t.splice(h)
	t.length--
	return removedK, v, true
}

// splice detaches a node with at most one child, linking its parent
// directly to that child, and retraces from the former parent.
func (t *Map[K, V, A, AP]) splice(h handle) {
	n := t.n(h)
	if n.left != 0 && n.right != 0 {
		panic(fmt.Sprintf("attempted to splice node %v with two children", n.key))
	}
	child := n.left
	if child == 0 {
		child = n.right
	}
	p := n.parent
	t.replaceChild(p, h, child)
	t.arena.release(h)
	t.cfg.retrace(t, p)
}

// MakeIter returns a new Iterator object. It is not safe to continue using an
// Iterator after modifications are made to the tree. If modifications are made,
// create a new Iterator.
func (t *Map[K, V, A, AP]) MakeIter() Iterator[K, V, A, AP] {
	it := Iterator[K, V, A, AP]{r: t}
	it.Reset()
	return it
}

// String returns the keys of the tree in order, e.g. "[1, 2, 3]".
func (t *Map[K, V, A, AP]) String() string {
	var b strings.Builder
	b.WriteString("[")
	if t.root != 0 {
		t.writeString(&b, t.root)
	}
	b.WriteString("]")
	return b.String()
}
