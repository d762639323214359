package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.lepak.sg/trees/tree/avl"
	"go.uber.org/zap"
)

func buildCmd() *cobra.Command {
	var (
		removes []int
		check   bool
	)

	cmd := &cobra.Command{
		Use:   "build keys...",
		Short: "insert integer keys in the given order, then remove some",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := parseKeys(args)
			if err != nil {
				return err
			}

			tr := avl.NewOrdered[int]()
			for _, k := range keys {
				tr.Insert(k)
				log.Debug("inserted", zap.Int("key", k), zap.Int("height", tr.Height()))
				if err := validate(tr, check); err != nil {
					return err
				}
			}

			for _, k := range removes {
				ok := tr.Remove(k)
				log.Debug("removed", zap.Int("key", k), zap.Bool("found", ok), zap.Int("height", tr.Height()))
				if !ok {
					log.Warn("key not in tree", zap.Int("key", k))
				}
				if err := validate(tr, check); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "tree:")
			fmt.Fprint(out, tr.String())
			fmt.Fprintln(out, "inorder:", tr.Keys())
			fmt.Fprintln(out, "size:", tr.Len(), "height:", tr.Height())
			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&removes, "remove", "r", nil, "keys to remove after inserting")
	cmd.Flags().BoolVar(&check, "check", false, "validate the tree after every operation")

	return cmd
}

func parseKeys(args []string) ([]int, error) {
	out := make([]int, len(args))

	for i, raw := range args {
		num, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", raw, err)
		}
		out[i] = num
	}

	return out, nil
}

func validate(tr *avl.Tree[int], check bool) error {
	if !check {
		return nil
	}
	if err := tr.Validate(); err != nil {
		log.Error("invalid tree", zap.Error(err))
		return err
	}
	return nil
}
