package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"
	"go.lepak.sg/trees/tree/avl"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// printLimit is the largest tree that still gets drawn.
const printLimit = 64

func randomCmd() *cobra.Command {
	var (
		seed  int64
		num   int
		trees int
		check bool
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "insert a random permutation of [0, n) and report the height",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if num < 0 || trees < 1 {
				return fmt.Errorf("need n >= 0 and trees >= 1, got n=%d trees=%d", num, trees)
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			built := make([]*avl.Tree[int], trees)
			g, ctx := errgroup.WithContext(cmd.Context())
			for i := range built {
				g.Go(func() error {
					return buildOne(ctx, built, i, num, seed+int64(i), check)
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if trees == 1 && num <= printLimit {
				fmt.Fprintln(out, "inorder:", built[0].Keys())
				fmt.Fprintln(out, "tree:")
				fmt.Fprint(out, built[0].String())
			}

			worst := -1
			for _, tr := range built {
				worst = max(worst, tr.Height())
			}

			fmt.Fprintln(out, "seed:", seed)
			fmt.Fprintln(out, "height:", worst, "ideal:", idealHeight(num), "bound:", heightBound(num))
			return nil
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "seed (default current unix time in ns)")
	cmd.Flags().IntVarP(&num, "num", "n", 10, "number of keys in the tree")
	cmd.Flags().IntVar(&trees, "trees", 1, "number of trees to build in parallel, with consecutive seeds")
	cmd.Flags().BoolVar(&check, "check", false, "validate every tree once built")

	return cmd
}

func buildOne(ctx context.Context, built []*avl.Tree[int], i, num int, seed int64, check bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tr := avl.BuildRandom(num, seed)
	log.Info("built tree",
		zap.Int64("seed", seed),
		zap.Int("size", tr.Len()),
		zap.Int("height", tr.Height()))

	if check {
		if err := tr.Validate(); err != nil {
			log.Error("invalid tree", zap.Int64("seed", seed), zap.Error(err))
			return err
		}
	}

	built[i] = tr
	return nil
}

// idealHeight is the height of a complete tree with num keys.
func idealHeight(num int) int {
	return int(math.Ceil(math.Log2(float64(num+1)))) - 1
}

// heightBound is the largest height an AVL tree with num keys can have.
func heightBound(num int) int {
	return int(math.Floor(1.4405*math.Log2(float64(num+2)) - 0.3277))
}
