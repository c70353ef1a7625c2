// Package orderstat provides an ordered set supporting access by rank.
package orderstat

import "github.com/ajwerner/avltree/internal/abstract"

// OrderStatTree is an ordered set which can find the i-th element, and the
// rank of an element, in O(log n).
type OrderStatTree[T any] struct {
	t abstract.Map[T, struct{}, aug[T], *aug[T]]
}

func MakeOrderStatTree[T any](cmp func(T, T) int) *OrderStatTree[T] {
	return &OrderStatTree[T]{
		t: abstract.MakeMap[T, struct{}, aug[T]](cmp, abstract.AVL),
	}
}

func (t *OrderStatTree[T]) Add(v T) (added bool) {
	return t.t.Insert(v, struct{}{})
}

func (t *OrderStatTree[T]) Remove(v T) (removed bool) {
	_, _, removed = t.t.Delete(v)
	return removed
}

func (t *OrderStatTree[T]) Len() int { return t.t.Len() }

// Nth returns the i-th smallest element, counting from 0.
func (t *OrderStatTree[T]) Nth(i int) (v T, ok bool) {
	it := t.MakeIter()
	it.Nth(i)
	if !it.Valid() {
		return v, false
	}
	return it.Cur(), true
}

// Rank returns the number of elements strictly less than v.
func (t *OrderStatTree[T]) Rank(v T) int {
	it := t.t.MakeIter()
	ll := abstract.LowLevel(&it)
	cfg := ll.Config()
	ll.Root()
	rank := 0
	for it.Valid() {
		c := cfg.Compare(v, it.Key())
		if c <= 0 {
			if c == 0 {
				return rank + count(ll.Left())
			}
			if !ll.HasLeft() {
				break
			}
			ll.DescendLeft()
			continue
		}
		rank += count(ll.Left()) + 1
		if !ll.HasRight() {
			break
		}
		ll.DescendRight()
	}
	return rank
}

type OrderStatIterator[T any] struct {
	it abstract.Iterator[T, struct{}, aug[T], *aug[T]]
}

func (t *OrderStatTree[T]) MakeIter() OrderStatIterator[T] {
	return OrderStatIterator[T]{
		it: t.t.MakeIter(),
	}
}

// Nth positions the iterator at the i-th smallest element. The iterator is
// invalid if i is out of range.
func (it *OrderStatIterator[T]) Nth(i int) {
	ll := abstract.LowLevel(&it.it)
	ll.Root()
	if i < 0 {
		it.it.Reset()
		return
	}
	for it.it.Valid() {
		left := count(ll.Left())
		switch {
		case i < left:
			ll.DescendLeft()
		case i == left:
			return
		default:
			i -= left + 1
			if !ll.HasRight() {
				it.it.Reset()
				return
			}
			ll.DescendRight()
		}
	}
}

func (it *OrderStatIterator[T]) First()      { it.it.First() }
func (it *OrderStatIterator[T]) Last()       { it.it.Last() }
func (it *OrderStatIterator[T]) Next()       { it.it.Next() }
func (it *OrderStatIterator[T]) Prev()       { it.it.Prev() }
func (it *OrderStatIterator[T]) Valid() bool { return it.it.Valid() }
func (it *OrderStatIterator[T]) Cur() T      { return it.it.Key() }
