package avl

import (
	"fmt"
	"strings"

	"go.lepak.sg/trees/tree"
)

// String returns a string representation of the tree, with each
// node's balance factor in parentheses.
// The tree built by inserting 1 through 7 in order looks like this:
//	4 (0)
//	├─L─2 (0)
//	│   ├─L─1 (0)
//	│   └─R─3 (0)
//	└─R─6 (0)
//	    ├─L─5 (0)
//	    └─R─7 (0)
func (t *Tree[K]) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[K any](
	sb *strings.Builder, n *tree.Node[K, int8], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	fmt.Fprintf(sb, "%v (%d)\n", n.Key, n.Extra)

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
