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

type node[K, V, A any] struct {
	key    K
	value  V
	parent handle
	left   handle
	right  handle
	// height of the subtree rooted here; an absent child counts as -1.
	height int32
	aug    A
}

// nodeRef is the view of a node handed to augmentations.
type nodeRef[K, V, A any, AP Aug[K, A]] struct {
	m *Map[K, V, A, AP]
	h handle
}

var _ Node[int, *NoopAug[int]] = nodeRef[int, struct{}, NoopAug[int], *NoopAug[int]]{}

func (r nodeRef[K, V, A, AP]) IsLeaf() bool {
	n := r.m.n(r.h)
	return n.left == 0 && n.right == 0
}

func (r nodeRef[K, V, A, AP]) Key() K      { return r.m.n(r.h).key }
func (r nodeRef[K, V, A, AP]) Height() int { return int(r.m.n(r.h).height) }
func (r nodeRef[K, V, A, AP]) Left() *A    { return r.m.augOf(r.m.n(r.h).left) }
func (r nodeRef[K, V, A, AP]) Right() *A   { return r.m.augOf(r.m.n(r.h).right) }

func (r nodeRef[K, V, A, AP]) Config() *Config[K] { return &r.m.cfg.Config }

func (m *Map[K, V, A, AP]) n(h handle) *node[K, V, A] {
	return m.arena.at(h)
}

func (m *Map[K, V, A, AP]) augOf(h handle) *A {
	if h == 0 {
		return nil
	}
	return &m.n(h).aug
}

func (m *Map[K, V, A, AP]) heightOf(h handle) int {
	if h == 0 {
		return -1
	}
	return int(m.n(h).height)
}

func (m *Map[K, V, A, AP]) leftHeight(h handle) int {
	return m.heightOf(m.n(h).left)
}

func (m *Map[K, V, A, AP]) rightHeight(h handle) int {
	return m.heightOf(m.n(h).right)
}

// updateHeight recomputes the height and augmentation of h from its
// children. If recursive, every ancestor of h is refreshed as well.
func (m *Map[K, V, A, AP]) updateHeight(h handle, recursive bool) {
	for h != 0 {
		n := m.n(h)
		n.height = int32(1 + max(m.leftHeight(h), m.rightHeight(h)))
		AP(&n.aug).Update(nodeRef[K, V, A, AP]{m: m, h: h})
		if !recursive {
			return
		}
		h = n.parent
	}
}

// subtreeSize counts the nodes in the subtree rooted at h.
func (m *Map[K, V, A, AP]) subtreeSize(h handle) int {
	if h == 0 {
		return 0
	}
	n := m.n(h)
	return 1 + m.subtreeSize(n.left) + m.subtreeSize(n.right)
}

func (m *Map[K, V, A, AP]) leftmost(h handle) handle {
	for l := m.n(h).left; l != 0; l = m.n(h).left {
		h = l
	}
	return h
}

func (m *Map[K, V, A, AP]) rightmost(h handle) handle {
	for r := m.n(h).right; r != 0; r = m.n(h).right {
		h = r
	}
	return h
}

// successor returns the node following h in an in-order traversal, or 0 if
// h holds the maximum.
func (m *Map[K, V, A, AP]) successor(h handle) handle {
	if r := m.n(h).right; r != 0 {
		return m.leftmost(r)
	}
	p := m.n(h).parent
	for p != 0 && h == m.n(p).right {
		h, p = p, m.n(p).parent
	}
	return p
}

// predecessor returns the node preceding h in an in-order traversal, or 0 if
// h holds the minimum.
func (m *Map[K, V, A, AP]) predecessor(h handle) handle {
	if l := m.n(h).left; l != 0 {
		return m.rightmost(l)
	}
	p := m.n(h).parent
	for p != 0 && h == m.n(p).left {
		h, p = p, m.n(p).parent
	}
	return p
}

// replaceChild points the link that referred to old (a child of p, or the
// root when p is 0) at nw, and sets nw's parent to p.
func (m *Map[K, V, A, AP]) replaceChild(p, old, nw handle) {
	switch {
	case p == 0:
		m.root = nw
	case m.n(p).left == old:
		m.n(p).left = nw
	default:
		m.n(p).right = nw
	}
	if nw != 0 {
		m.n(nw).parent = p
	}
}

// setChildren links l and r below h.
func (m *Map[K, V, A, AP]) setChildren(h, l, r handle) {
	n := m.n(h)
	n.left, n.right = l, r
	if l != 0 {
		m.n(l).parent = h
	}
	if r != 0 {
		m.n(r).parent = h
	}
}

// writeString appends the in-order listing of the subtree rooted at h.
func (m *Map[K, V, A, AP]) writeString(b *strings.Builder, h handle) {
	n := m.n(h)
	if n.left != 0 {
		m.writeString(b, n.left)
		b.WriteString(", ")
	}
	fmt.Fprintf(b, "%v", n.key)
	if n.right != 0 {
		b.WriteString(", ")
		m.writeString(b, n.right)
	}
}
