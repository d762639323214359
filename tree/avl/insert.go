package avl

import (
	"go.lepak.sg/trees/tree"
)

// Insert inserts k into the tree. If keys equal to k are already
// in the tree, k is placed after them.
func (t *Tree[K]) Insert(k K) {
	newnode := tree.NodeOf[K, int8](k, 0)
	t.count++

	if t.root == nil {
		t.root = newnode
		return
	}

	n, p := t.root, (*tree.Node[K, int8])(nil)
	var cmp tree.Order

	for n != nil {
		cmp = t.cmp(k, n.Key)
		p = n
		if cmp == tree.Less {
			n = n.Left
		} else {
			n = n.Right
		}
	}

	newnode.Parent = p
	if cmp == tree.Less {
		p.Left = newnode
	} else {
		p.Right = newnode
	}

	t.retraceInsert(newnode)
}

// retraceInsert walks up from a new leaf n, updating the balance
// factor of each ancestor whose subtree grew taller.
func (t *Tree[K]) retraceInsert(n *tree.Node[K, int8]) {
	for p := n.Parent; p != nil; n, p = p, p.Parent {
		if n == p.Left {
			p.Extra--
		} else {
			p.Extra++
		}

		switch p.Extra {
		case 0:
			// the shorter side caught up, p's height is unchanged
			return
		case -1, 1:
			// p grew taller
		case -2, 2:
			// the rotated subtree has p's old height
			t.rebalance(p)
			return
		default:
			panic("unreachable")
		}
	}
}
