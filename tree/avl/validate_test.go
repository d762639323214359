package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/trees/tree"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(tr *Tree[int])
		wantErr error
	}{
		{
			name:    "ok",
			corrupt: func(tr *Tree[int]) {},
		},
		{
			name: "stale balance factor",
			corrupt: func(tr *Tree[int]) {
				tr.root.Left.Extra = 1
			},
			wantErr: ErrBalanceFactor,
		},
		{
			name: "size",
			corrupt: func(tr *Tree[int]) {
				tr.count++
			},
			wantErr: ErrSize,
		},
		{
			name: "child parent link",
			corrupt: func(tr *Tree[int]) {
				tr.root.Right.Left.Parent = tr.root
			},
			wantErr: ErrParent,
		},
		{
			name: "root with parent",
			corrupt: func(tr *Tree[int]) {
				tr.root.Parent = tr.root.Left
			},
			wantErr: ErrParent,
		},
		{
			name: "child out of order",
			corrupt: func(tr *Tree[int]) {
				tr.root.Left.Left.Key, tr.root.Right.Right.Key =
					tr.root.Right.Right.Key, tr.root.Left.Left.Key
			},
			wantErr: ErrOrder,
		},
		{
			name: "grandchild out of order",
			corrupt: func(tr *Tree[int]) {
				tr.root.Left.Right.Key = 5
			},
			wantErr: ErrOrder,
		},
		{
			name: "unbalanced",
			corrupt: func(tr *Tree[int]) {
				// 1 -> 2 -> 3 with honest balance factors
				a, b, c := tree.NodeOf[int, int8](1, 2), tree.NodeOf[int, int8](2, 1), tree.NodeOf[int, int8](3, 0)
				a.Right, b.Parent = b, a
				b.Right, c.Parent = c, b
				tr.root, tr.count = a, 3
			},
			wantErr: ErrBalance,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewOrdered(1, 2, 3, 4, 5, 6, 7)
			tt.corrupt(tr)

			err := tr.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
