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

import "fmt"

// Verify checks the structural invariants of the tree: strict key
// ordering, parent links mirroring child links, cached heights, the
// height-balance property (under the AVL policy), and the item count.
func (t *Map[K, V, A, AP]) Verify() error {
	if t.root != 0 && t.n(t.root).parent != 0 {
		return fmt.Errorf("root %v has parent", t.n(t.root).key)
	}
	var prev *K
	if err := t.verify(t.root, &prev); err != nil {
		return err
	}
	count := t.subtreeSize(t.root)
	if count != t.length {
		return fmt.Errorf("length %d does not match node count %d", t.length, count)
	}
	if live := t.arena.live(); live != count {
		return fmt.Errorf("arena holds %d nodes, tree reaches %d", live, count)
	}
	return nil
}

// verify walks the subtree in order, so prev always refers to the key
// visited immediately before.
func (t *Map[K, V, A, AP]) verify(h handle, prev **K) error {
	if h == 0 {
		return nil
	}
	n := t.n(h)
	for _, c := range [2]handle{n.left, n.right} {
		if c != 0 && t.n(c).parent != h {
			return fmt.Errorf("child %v of %v has parent link to %v",
				t.n(c).key, n.key, t.n(t.n(c).parent).key)
		}
	}
	if err := t.verify(n.left, prev); err != nil {
		return err
	}
	if *prev != nil && t.cfg.cmp(**prev, n.key) >= 0 {
		return fmt.Errorf("keys out of order: %v before %v", **prev, n.key)
	}
	*prev = &n.key
	if err := t.verify(n.right, prev); err != nil {
		return err
	}
	lh, rh := t.leftHeight(h), t.rightHeight(h)
	if exp := 1 + max(lh, rh); int(n.height) != exp {
		return fmt.Errorf("node %v has cached height %d, expected %d", n.key, n.height, exp)
	}
	if t.cfg.Policy == AVL && t.unbalanced(h) {
		return fmt.Errorf("node %v is unbalanced: left height %d, right height %d", n.key, lh, rh)
	}
	return nil
}
