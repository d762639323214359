package iterator

import (
	"go.lepak.sg/trees/tree"
)

var _ Iterator[int] = (*InOrder[int, any])(nil)

// InOrder is an iterator object over a binary tree.
// It walks the Parent pointers, so it needs no memory beyond
// the current position.
// The usage should be pretty familiar:
//	i := someBinaryTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k ...
//	}
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[K any, X any] struct {
	root, at *tree.Node[K, X]
	done     bool
}

// NewInOrder returns a new InOrder iterator over the tree rooted at root.
// Note: This is meant to be called by other tree implementations.
func NewInOrder[K any, X any](root *tree.Node[K, X]) *InOrder[K, X] {
	return &InOrder[K, X]{
		root: root,
	}
}

// Next returns true if there is a next node to yield with Item.
// Next must always be called before Item.
// Once Next returns false it keeps returning false until Reset.
func (i *InOrder[K, X]) Next() bool {
	// https://www.cs.odu.edu/~zeil/cs361/latest/Public/treetraversal/index.html
	if i == nil || i.done {
		return false
	}

	if i.at == nil {
		i.at = tree.Min(i.root)
		i.done = i.at == nil
		return !i.done
	}

	if i.at.Right != nil {
		i.at = tree.Min(i.at.Right)
		return true
	}

	var child *tree.Node[K, X]
	for i.at != nil {
		i.at, child = i.at.Parent, i.at
		if i.at != nil && i.at.Left == child {
			return true
		}
	}

	i.done = true
	return false
}

// Item returns the current key of the iterator.
func (i *InOrder[K, _]) Item() K {
	return i.at.Key
}

// Reset starts the iteration over from the smallest key.
func (i *InOrder[_, _]) Reset() {
	i.at, i.done = nil, false
}
