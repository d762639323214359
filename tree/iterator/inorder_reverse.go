package iterator

import (
	"go.lepak.sg/trees/tree"
)

var _ Iterator[int] = (*InOrderReverse[int, any])(nil)

// InOrderReverse is an iterator object over a binary tree.
// Iteration starts from the *largest* element and runs to
// the *smallest* element.
// The usage should be pretty familiar:
//	i := someBinaryTree.InOrderReverseIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrderReverse[K any, X any] struct {
	root, at *tree.Node[K, X]
	done     bool
}

// NewInOrderReverse returns a new InOrderReverse iterator over the tree
// rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrderReverse[K any, X any](
	root *tree.Node[K, X]) *InOrderReverse[K, X] {
	return &InOrderReverse[K, X]{
		root: root,
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
func (i *InOrderReverse[K, X]) Next() bool {
	// Basically InOrder.Next but left and right are flipped.
	if i == nil || i.done {
		return false
	}

	if i.at == nil {
		i.at = tree.Max(i.root)
		i.done = i.at == nil
		return !i.done
	}

	if i.at.Left != nil {
		i.at = tree.Max(i.at.Left)
		return true
	}

	var child *tree.Node[K, X]
	for i.at != nil {
		i.at, child = i.at.Parent, i.at
		if i.at != nil && i.at.Right == child {
			return true
		}
	}

	i.done = true
	return false
}

// Item returns the current key of the iterator.
func (i *InOrderReverse[K, _]) Item() K {
	return i.at.Key
}

// Reset starts the iteration over from the largest key.
func (i *InOrderReverse[_, _]) Reset() {
	i.at, i.done = nil, false
}
