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

// retraceBalanced walks from h to the root. Each node has its height
// refreshed and, if its children now differ in height by more than one, is
// restructured. The walk resumes at the node's original parent; the
// restructuring already refreshed every node it moved.
func retraceBalanced[K, V, A any, AP Aug[K, A]](t *Map[K, V, A, AP], h handle) {
	for h != 0 {
		p := t.n(h).parent
		t.updateHeight(h, false /* recursive */)
		if t.unbalanced(h) {
			t.restructure(h)
		}
		h = p
	}
}

// retraceUnbalanced only refreshes the heights of h and its ancestors.
func retraceUnbalanced[K, V, A any, AP Aug[K, A]](t *Map[K, V, A, AP], h handle) {
	t.updateHeight(h, true /* recursive */)
}

func (t *Map[K, V, A, AP]) unbalanced(h handle) bool {
	d := t.leftHeight(h) - t.rightHeight(h)
	return d > 1 || d < -1
}

// restructure rebalances the subtree rooted at the unbalanced node z.
//
// y is the taller child of z and x is the taller child of y. When y's
// children have equal heights, x is taken on the same side as y so that the
// single rotation is used; a double rotation in that case would leave the
// lower node unbalanced after a removal.
//
// Naming the three nodes by key order lo < mid < hi and the four subtrees
// hanging off them t0 < t1 < t2 < t3, each of the four shapes is
// rearranged into the same result:
//
//	left-left        left-right       right-left       right-right
//
//	      z              z              z                z
//	     / \            / \            / \              / \
//	    y   t3         y   t3        t0   y           t0   y
//	   / \            / \                / \              / \
//	  x   t2        t0   x              x   t3          t1   x
//	 / \                / \            / \                  / \
//	t0  t1            t1  t2         t1   t2              t2   t3
//
//	After:
//
//	            mid
//	          /     \
//	        lo       hi
//	       /  \     /  \
//	     t0    t1 t2    t3
func (t *Map[K, V, A, AP]) restructure(z handle) {
	zn := t.n(z)
	y := zn.right
	if t.leftHeight(z) >= t.rightHeight(z) {
		y = zn.left
	}
	yn := t.n(y)
	yLeft := y == zn.left
	var x handle
	switch lh, rh := t.leftHeight(y), t.rightHeight(y); {
	case lh > rh:
		x = yn.left
	case lh < rh:
		x = yn.right
	case yLeft:
		x = yn.left
	default:
		x = yn.right
	}
	xn := t.n(x)

	var lo, mid, hi handle
	var t0, t1, t2, t3 handle
	switch xLeft := x == yn.left; {
	case yLeft && xLeft:
		lo, mid, hi = x, y, z
		t0, t1, t2, t3 = xn.left, xn.right, yn.right, zn.right
	case yLeft:
		lo, mid, hi = y, x, z
		t0, t1, t2, t3 = yn.left, xn.left, xn.right, zn.right
	case xLeft:
		lo, mid, hi = z, x, y
		t0, t1, t2, t3 = zn.left, xn.left, xn.right, yn.right
	default:
		lo, mid, hi = z, y, x
		t0, t1, t2, t3 = zn.left, yn.left, xn.left, xn.right
	}

	t.replaceChild(zn.parent, z, mid)
	t.setChildren(lo, t0, t1)
	t.updateHeight(lo, false /* recursive */)
	t.setChildren(hi, t2, t3)
	t.updateHeight(hi, false /* recursive */)
	t.setChildren(mid, lo, hi)
	t.updateHeight(mid, false /* recursive */)
}
