package avl

import (
	"go.lepak.sg/trees/tree"
)

// Remove removes one key equal to k from the tree.
// It returns false if there was no such key.
func (t *Tree[K]) Remove(k K) bool {
	n := t.find(k)
	if n == nil {
		return false
	}

	if n.Left != nil && n.Right != nil {
		// Take the key of the in-order successor and unlink the
		// successor instead. It has no left child.
		succ := tree.Min(n.Right)
		n.Key = succ.Key
		n = succ
	}

	child := n.Left
	if child == nil {
		child = n.Right
	}

	parent := n.Parent
	fromLeft := parent != nil && parent.Left == n

	tree.ReplaceChild(parent, n, child)
	if parent == nil {
		t.root = child
	}
	t.count--

	t.retraceRemove(parent, fromLeft)
	return true
}

// retraceRemove walks up from p, whose left (or right) subtree just
// got shorter, rebalancing every ancestor that needs it. Unlike
// insertion, a rotation may leave its subtree shorter than before,
// so the walk can continue past it up to the root.
func (t *Tree[K]) retraceRemove(p *tree.Node[K, int8], fromLeft bool) {
	for p != nil {
		if fromLeft {
			p.Extra++
		} else {
			p.Extra--
		}

		switch p.Extra {
		case -1, 1:
			// was 0, the other side still holds p's height
			return
		case 0:
			// p got shorter
		case -2, 2:
			p = t.rebalance(p)
			if p.Extra != 0 {
				// heavy child was balanced, height unchanged
				return
			}
		default:
			panic("unreachable")
		}

		parent := p.Parent
		if parent == nil {
			return
		}
		fromLeft = parent.Left == p
		p = parent
	}
}
