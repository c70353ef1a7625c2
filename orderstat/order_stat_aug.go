package orderstat

import "github.com/ajwerner/avltree/internal/abstract"

type aug[K any] struct {
	// children is the number of items rooted at the current subtree.
	children int
}

// Update will update the count for the current node.
func (a *aug[T]) Update(n abstract.Node[T, *aug[T]]) (updated bool) {
	orig := a.children
	children := 1
	if l := n.Left(); l != nil {
		children += l.children
	}
	if r := n.Right(); r != nil {
		children += r.children
	}
	a.children = children
	return a.children != orig
}

func count[T any](a *aug[T]) int {
	if a == nil {
		return 0
	}
	return a.children
}
