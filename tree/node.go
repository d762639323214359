// Package tree holds the node type and the structural primitives
// shared by the tree implementations in this module.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a binary tree node. Left and Right are owned by the node,
// Parent is a back-reference to whichever node owns this one
// (nil for the root).
//
// X is extra per-node bookkeeping for the tree implementation that
// owns the node, for example the AVL balance factor.
type Node[K any, X any] struct {
	Key                 K
	Extra               X
	Left, Right, Parent *Node[K, X]
}

func NodeOf[K any, X any](k K, x X) *Node[K, X] {
	return &Node[K, X]{
		Key:   k,
		Extra: x,
	}
}

// BasicNodeOf is NodeOf for trees that don't keep extra data.
func BasicNodeOf[K any](k K) *Node[K, struct{}] {
	return &Node[K, struct{}]{
		Key: k,
	}
}

// Height returns the height of the subtree rooted at n.
// An absent subtree has height -1 and a leaf has height 0.
// The recursion depth is the height of the tree, so this should only
// be used on trees that are known to be balanced.
func Height[K any, X any](n *Node[K, X]) int {
	if n == nil {
		return -1
	}

	l, r := Height(n.Left), Height(n.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Min returns the leftmost node of the subtree rooted at n.
func Min[K any, X any](n *Node[K, X]) *Node[K, X] {
	if n == nil {
		return nil
	}
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// Max returns the rightmost node of the subtree rooted at n.
func Max[K any, X any](n *Node[K, X]) *Node[K, X] {
	if n == nil {
		return nil
	}
	for n.Right != nil {
		n = n.Right
	}
	return n
}

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

// CompareFunc is a total order over K. It must be consistent for the
// lifetime of any tree it is used with: if the relative order of two
// keys changes while they are in a tree, the tree invariants break.
type CompareFunc[K any] func(l, r K) Order

func Compare[K constraints.Ordered](l, r K) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// Comparable is implemented by keys that know how to order themselves.
type Comparable[K any] interface {
	CompareTo(K) Order
}

// CompareComparable adapts Comparable keys into a CompareFunc.
//
// This allows K to mutate, for example if we defined:
//	type IntPtr *int
// and then implemented CompareTo by dereferencing, client code could
// mutate *IntPtr at any time, ruining our tree invariants.
// Prefer value types for K.
func CompareComparable[K Comparable[K]](l, r K) Order {
	return l.CompareTo(r)
}
