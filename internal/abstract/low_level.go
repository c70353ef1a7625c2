package abstract

// LowLevelIterator is exposed to developers within this module for use
// implemented augmented search functionality.
type LowLevelIterator[K, V, A any, AP Aug[K, A]] Iterator[K, V, A, AP]

// LowLevel converts an iterator to a LowLevelIterator. Given this package
// is internal, callers outside of this module cannot construct a
// LowLevelIterator.
func LowLevel[K, V, A any, AP Aug[K, A]](
	it *Iterator[K, V, A, AP],
) *LowLevelIterator[K, V, A, AP] {
	return it.lowLevel()
}

// Config returns the Map's config.
func (i *LowLevelIterator[K, V, A, AP]) Config() *Config[K] {
	return &i.r.cfg.Config
}

// Root positions the iterator at the root. The iterator is invalid
// afterwards if the tree is empty.
func (i *LowLevelIterator[K, V, A, AP]) Root() {
	i.h = i.r.root
}

// IsLeaf returns true if the current node has no children.
func (i *LowLevelIterator[K, V, A, AP]) IsLeaf() bool {
	n := i.r.n(i.h)
	return n.left == 0 && n.right == 0
}

// Node returns the current node.
func (i *LowLevelIterator[K, V, A, AP]) Node() Node[K, *A] {
	return nodeRef[K, V, A, AP]{m: i.r, h: i.h}
}

// HasLeft returns true if the current node has a left child.
func (i *LowLevelIterator[K, V, A, AP]) HasLeft() bool { return i.r.n(i.h).left != 0 }

// HasRight returns true if the current node has a right child.
func (i *LowLevelIterator[K, V, A, AP]) HasRight() bool { return i.r.n(i.h).right != 0 }

// Aug returns the augmentation of the current node.
func (i *LowLevelIterator[K, V, A, AP]) Aug() AP { return AP(&i.r.n(i.h).aug) }

// Left returns the augmentation of the left child, or nil.
func (i *LowLevelIterator[K, V, A, AP]) Left() AP { return AP(i.r.augOf(i.r.n(i.h).left)) }

// Right returns the augmentation of the right child, or nil.
func (i *LowLevelIterator[K, V, A, AP]) Right() AP { return AP(i.r.augOf(i.r.n(i.h).right)) }

// Depth returns the number of nodes above the current node.
// It is illegal to call Ascend if this function returns 0.
func (i *LowLevelIterator[K, V, A, AP]) Depth() int {
	d := 0
	for p := i.r.n(i.h).parent; p != 0; p = i.r.n(p).parent {
		d++
	}
	return d
}

// IsLeftChild returns true if the current node is the left child of its
// parent.
func (i *LowLevelIterator[K, V, A, AP]) IsLeftChild() bool {
	p := i.r.n(i.h).parent
	return p != 0 && i.r.n(p).left == i.h
}

// DescendLeft moves to the left child. It is illegal to call if there is
// no such child.
func (i *LowLevelIterator[K, V, A, AP]) DescendLeft() {
	i.h = i.r.n(i.h).left
}

// DescendRight moves to the right child. It is illegal to call if there is
// no such child.
func (i *LowLevelIterator[K, V, A, AP]) DescendRight() {
	i.h = i.r.n(i.h).right
}

// Ascend ascends up to the current node's parent.
func (i *LowLevelIterator[K, V, A, AP]) Ascend() {
	i.h = i.r.n(i.h).parent
}
