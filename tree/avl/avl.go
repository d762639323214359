// Package avl implements a self-balancing binary search tree.
//
// Every node stores its balance factor, the height of its right
// subtree minus the height of its left subtree, which is kept in
// {-1, 0, 1} by rotating after each insertion and removal. The
// height of a tree with n keys is therefore at most about
// 1.44*log2(n+2).
package avl

import (
	"go.lepak.sg/trees/chops"
	"go.lepak.sg/trees/tree"
	"go.lepak.sg/trees/tree/iterator"
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree of keys ordered by a CompareFunc.
// Duplicate keys are allowed; a key equal to keys already in the
// tree is ordered after them.
//
// Tree is not safe for concurrent use. Readers must not run
// concurrently with Insert, Remove or Clear, see Locked.
//
// The zero Tree has no ordering and cannot be used, create one
// with New or NewOrdered.
type Tree[K any] struct {
	root  *tree.Node[K, int8]
	cmp   tree.CompareFunc[K]
	count int
}

// New returns an empty tree ordered by cmp.
func New[K any](cmp tree.CompareFunc[K]) *Tree[K] {
	if cmp == nil {
		panic("avl: nil CompareFunc")
	}

	return &Tree[K]{
		cmp: cmp,
	}
}

// NewOrdered returns a tree ordered by the natural order of K,
// with keys inserted in the order given.
func NewOrdered[K constraints.Ordered](keys ...K) *Tree[K] {
	t := New[K](tree.Compare[K])
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.count
}

// Height returns the height of the tree: -1 if it is empty,
// 0 if it only has a root.
func (t *Tree[K]) Height() int {
	// The taller side of every node is known from its balance
	// factor, so one descent is enough.
	h := -1
	for n := t.root; n != nil; h++ {
		if n.Extra < 0 {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return h
}

// Clear removes every key from the tree.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.count = 0
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[K]) Contains(k K) bool {
	return t.find(k) != nil
}

// find returns the first node with a key equal to k on the way
// down from the root, or nil.
func (t *Tree[K]) find(k K) *tree.Node[K, int8] {
	n := t.root

	for n != nil {
		switch t.cmp(k, n.Key) {
		case tree.Less:
			n = n.Left
		case tree.Greater:
			n = n.Right
		case tree.Equal:
			return n
		default:
			panic("unreachable")
		}
	}

	return nil
}

// Min returns the smallest key in the tree.
// If the tree is empty, k is the zero K and ok is false.
func (t *Tree[K]) Min() (k K, ok bool) {
	if n := tree.Min(t.root); n != nil {
		return n.Key, true
	}
	return
}

// Max returns the largest key in the tree.
// If the tree is empty, k is the zero K and ok is false.
func (t *Tree[K]) Max() (k K, ok bool) {
	if n := tree.Max(t.root); n != nil {
		return n.Key, true
	}
	return
}

// Keys returns all keys in the tree in ascending order.
// The slice is never nil, and belongs to the caller.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.count)
	t.InOrder(func(k K) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

// InOrder applies f to each key in the tree in ascending order.
// If f returns false, the iteration is stopped early.
// f must not modify the tree.
func (t *Tree[K]) InOrder(f func(k K) bool) {
	i := t.InOrderIterator()
	for i.Next() {
		if !f(i.Item()) {
			return
		}
	}
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in ascending order.
func (t *Tree[K]) InOrderIterator() *iterator.InOrder[K, int8] {
	return iterator.NewInOrder(t.root)
}

// InOrderReverseIterator returns an iterator object that yields
// keys from the tree in descending order.
func (t *Tree[K]) InOrderReverseIterator() *iterator.InOrderReverse[K, int8] {
	return iterator.NewInOrderReverse(t.root)
}

// InOrderStackIterator is like InOrderIterator, but it keeps its
// own stack instead of following parent links.
func (t *Tree[K]) InOrderStackIterator() *iterator.InOrderStack[K, int8] {
	return iterator.NewInOrderStack(t.root, t.Height())
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished. The tree must not
// be modified until then.
func (t *Tree[K]) InOrderCoroutine() chops.CoIterator[K] {
	return chops.CoIterate[K](t.InOrderIterator())
}
