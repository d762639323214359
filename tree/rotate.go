package tree

// RotateLeft rotates a Node to the left and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateLeft:
//	  -> n            p
//      / \          / \
//	   m   p   ->   n   q
//	      / \      / \
//	     o   q    m   o
// The right child p is returned from n.RotateLeft.
// The ordering invariant m < n < o < p < q is always preserved.
//
// n's old parent is relinked to p. If n was the root, p.Parent is nil
// afterwards and the caller must make p its new root.
// o may be nil.
func (n *Node[K, X]) RotateLeft() *Node[K, X] {
	if n == nil {
		panic("cannot RotateLeft on nil")
	}

	if n.Right == nil {
		panic("cannot RotateLeft with nil right")
	}

	p, o := n.Right, n.Right.Left
	ReplaceChild(n.Parent, n, p)

	n.Right = o
	if o != nil {
		o.Parent = n
	}

	p.Left = n
	n.Parent = p

	return p
}

// RotateRight rotates a Node to the right and returns
// the Node that now occupies its old position.
// For example, this is the result of calling n.RotateRight:
//	  -> n            l
//      / \          / \
//	   l   o   ->   k   n
//	  / \              / \
//	 k   m            m   o
// The left child l is returned from n.RotateRight.
// The ordering invariant k < l < m < n < o is always preserved.
//
// n's old parent is relinked to l. If n was the root, l.Parent is nil
// afterwards and the caller must make l its new root.
// m may be nil.
func (n *Node[K, X]) RotateRight() *Node[K, X] {
	if n == nil {
		panic("cannot RotateRight on nil")
	}

	if n.Left == nil {
		panic("cannot RotateRight with nil left")
	}

	l, m := n.Left, n.Left.Right
	ReplaceChild(n.Parent, n, l)

	n.Left = m
	if m != nil {
		m.Parent = n
	}

	l.Right = n
	n.Parent = l

	return l
}

// ReplaceChild puts repl into whichever child slot of parent old
// occupies, and points repl back at parent. old's own Parent is
// left alone.
// A nil parent means old was a root: only repl.Parent is cleared.
// repl may be nil, which empties the slot.
func ReplaceChild[K any, X any](parent, old, repl *Node[K, X]) {
	if repl != nil {
		repl.Parent = parent
	}

	if parent == nil {
		return
	}

	switch old {
	case parent.Left:
		parent.Left = repl
	case parent.Right:
		parent.Right = repl
	default:
		panic("impossible: node is not a child of its parent")
	}
}
