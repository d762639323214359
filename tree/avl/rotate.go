package avl

import (
	"go.lepak.sg/trees/tree"
)

// The balance factors after a rotation follow from the balance
// factors before it, without measuring any subtree heights.
// With b = h(right) - h(left), rotating x left around its right
// child z gives
//	x' = x - 1 - max(z, 0)
//	z' = z - 1 + min(x', 0)
// and rotating x right around its left child z gives
//	x' = x + 1 - min(z, 0)
//	z' = z + 1 + max(x', 0)
// After an insertion these reduce to resetting both to 0. After a
// removal the heavy child may be balanced, and then they don't.

// rotateLeft rotates x left and returns the node now in its place.
func (t *Tree[K]) rotateLeft(x *tree.Node[K, int8]) *tree.Node[K, int8] {
	z := x.Right
	top := x.RotateLeft()
	if top.Parent == nil {
		t.root = top
	}

	x.Extra = x.Extra - 1 - max(z.Extra, 0)
	z.Extra = z.Extra - 1 + min(x.Extra, 0)

	return top
}

// rotateRight rotates x right and returns the node now in its place.
func (t *Tree[K]) rotateRight(x *tree.Node[K, int8]) *tree.Node[K, int8] {
	z := x.Left
	top := x.RotateRight()
	if top.Parent == nil {
		t.root = top
	}

	x.Extra = x.Extra + 1 - min(z.Extra, 0)
	z.Extra = z.Extra + 1 + max(x.Extra, 0)

	return top
}

// rebalance restores the balance of n, which must have a balance
// factor of -2 or 2, and returns the node now in its place.
func (t *Tree[K]) rebalance(n *tree.Node[K, int8]) *tree.Node[K, int8] {
	switch n.Extra {
	case 2:
		if n.Right.Extra < 0 {
			// right-left: double left rotation
			t.rotateRight(n.Right)
		}
		return t.rotateLeft(n)
	case -2:
		if n.Left.Extra > 0 {
			// left-right: double right rotation
			t.rotateLeft(n.Left)
		}
		return t.rotateRight(n)
	default:
		panic("impossible: rebalance on a balanced node")
	}
}
