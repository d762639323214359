package avl

import (
	"errors"
	"fmt"

	"go.lepak.sg/trees/tree"
	"golang.org/x/exp/slices"
)

var (
	ErrOrder         = errors.New("keys out of order")
	ErrBalance       = errors.New("subtree heights differ by more than one")
	ErrBalanceFactor = errors.New("balance factor does not match subtree heights")
	ErrParent        = errors.New("parent link does not match child link")
	ErrSize          = errors.New("size does not match node count")
)

// Validate checks the structure of the tree and returns an error
// wrapping one of the Err* values above for the first problem found.
// It takes time linear in the size of the tree.
//
// A correct tree always validates; this is for tests and tooling.
func (t *Tree[K]) Validate() error {
	if t.root != nil && t.root.Parent != nil {
		return fmt.Errorf("root %v has a parent: %w", t.root.Key, ErrParent)
	}

	count, _, err := t.validate(t.root)
	if err != nil {
		return err
	}

	if count != t.count {
		return fmt.Errorf("counted %d nodes, expected %d: %w", count, t.count, ErrSize)
	}

	// Children are checked against their parent above; a key can
	// still be on the wrong side of a grandparent.
	keys := t.Keys()
	if !slices.IsSortedFunc(keys, func(a, b K) int { return int(t.cmp(a, b)) }) {
		return fmt.Errorf("in-order traversal is not sorted: %w", ErrOrder)
	}

	return nil
}

// validate returns the node count and height of the subtree at n.
func (t *Tree[K]) validate(n *tree.Node[K, int8]) (count, height int, err error) {
	if n == nil {
		return 0, -1, nil
	}

	if n.Left != nil {
		if n.Left.Parent != n {
			return 0, 0, fmt.Errorf("left child of %v: %w", n.Key, ErrParent)
		}
		if t.cmp(n.Left.Key, n.Key) == tree.Greater {
			return 0, 0, fmt.Errorf("left child %v of %v: %w", n.Left.Key, n.Key, ErrOrder)
		}
	}

	if n.Right != nil {
		if n.Right.Parent != n {
			return 0, 0, fmt.Errorf("right child of %v: %w", n.Key, ErrParent)
		}
		if t.cmp(n.Right.Key, n.Key) == tree.Less {
			return 0, 0, fmt.Errorf("right child %v of %v: %w", n.Right.Key, n.Key, ErrOrder)
		}
	}

	lc, lh, err := t.validate(n.Left)
	if err != nil {
		return 0, 0, err
	}

	rc, rh, err := t.validate(n.Right)
	if err != nil {
		return 0, 0, err
	}

	b := rh - lh
	if b < -1 || b > 1 {
		return 0, 0, fmt.Errorf("node %v has balance %d: %w", n.Key, b, ErrBalance)
	}
	if int(n.Extra) != b {
		return 0, 0, fmt.Errorf("node %v stores %d, actual %d: %w", n.Key, n.Extra, b, ErrBalanceFactor)
	}

	return lc + rc + 1, max(lh, rh) + 1, nil
}
